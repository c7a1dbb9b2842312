package handlers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Sami21234/lostfound-backend/api"
	"github.com/Sami21234/lostfound-backend/config"
	"github.com/Sami21234/lostfound-backend/databases"
	"github.com/Sami21234/lostfound-backend/models"
)

// Items exported for testing purposes
type Items struct {
	LDB databases.LostReportDatabase
	FDB databases.FoundReportDatabase
}

// ItemsHandler returns the combined listing of lost and found reports, each
// entry tagged with its kind.
func (i Items) ItemsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	lostReports, err := i.LDB.Find(ctx, bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get lost reports", http.StatusInternalServerError, w, err)
		return
	}
	foundReports, err := i.FDB.Find(ctx, bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get found reports", http.StatusInternalServerError, w, err)
		return
	}

	items := make([]models.Item, 0, len(lostReports)+len(foundReports))
	for _, lr := range lostReports {
		items = append(items, models.Item{
			Type:         "lost",
			ID:           lr.ID,
			ItemName:     lr.ItemName,
			Description:  lr.Description,
			Location:     lr.Location,
			ContactName:  lr.ContactName,
			ContactPhone: lr.ContactPhone,
			ContactEmail: lr.ContactEmail,
			EventDate:    lr.DateLost,
			ImageURL:     lr.ImageURL,
			CreatedAt:    lr.CreatedAt,
		})
	}
	for _, fr := range foundReports {
		items = append(items, models.Item{
			Type:         "found",
			ID:           fr.ID,
			ItemName:     fr.ItemName,
			Description:  fr.Description,
			Location:     fr.Location,
			ContactName:  fr.ContactName,
			ContactPhone: fr.ContactPhone,
			ContactEmail: fr.ContactEmail,
			EventDate:    fr.DateFound,
			ImageURL:     fr.ImageURL,
			CreatedAt:    fr.CreatedAt,
		})
	}

	b, err := json.Marshal(items)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
