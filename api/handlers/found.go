package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Sami21234/lostfound-backend/api"
	"github.com/Sami21234/lostfound-backend/config"
	"github.com/Sami21234/lostfound-backend/databases"
	"github.com/Sami21234/lostfound-backend/matching"
	"github.com/Sami21234/lostfound-backend/models"
	"github.com/Sami21234/lostfound-backend/uploads"
)

// Found exported for testing purposes
type Found struct {
	DB       databases.FoundReportDatabase
	LDB      databases.LostReportDatabase
	Photos   uploads.PhotoStore
	Resolver *matching.Resolver
}

// CreateFoundReportHandler saves a found report, scores it against every
// outstanding lost report and runs the resolution pass on the matches.
func (f Found) CreateFoundReportHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	in, err := parseReportInput(ctx, r, f.Photos)
	if err != nil {
		config.ErrorStatus("failed to read found report", http.StatusBadRequest, w, err)
		return
	}
	if err := in.validate(); err != nil {
		config.ErrorStatus("invalid found report", http.StatusBadRequest, w, err)
		return
	}

	report := models.FoundReport{
		ID:           primitive.NewObjectID(),
		ItemName:     in.ItemName,
		Description:  in.Description,
		Location:     in.Location,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,
		DateFound:    in.DateFound,
		ImageURL:     in.imageURL,
		CreatedAt:    primitive.NewDateTimeFromTime(time.Now()),
	}

	if _, err := f.DB.InsertOne(ctx, report); err != nil {
		config.ErrorStatus("failed to save found report", http.StatusInternalServerError, w, err)
		return
	}
	zap.S().Infow("found report saved", "id", report.ID.Hex(), "itemName", report.ItemName)

	lostReports, err := f.LDB.Find(ctx, bson.D{})
	if err != nil {
		config.ErrorStatus("failed to scan lost reports for matching", http.StatusInternalServerError, w, err)
		return
	}

	summary := f.Resolver.Resolve(ctx, report, lostReports)
	zap.S().Infow("matching pass complete",
		"foundReportId", report.ID.Hex(),
		"matches", len(summary.Matches),
		"autoRemoved", summary.AutoRemovedCount,
	)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.FoundReportResponse{
		Success:           true,
		Message:           "Found item reported successfully",
		Item:              report,
		Matches:           summary.Matches,
		AutoRemovedCount:  summary.AutoRemovedCount,
		NotificationsSent: summary.NotificationsSent,
		Warnings:          summary.Warnings,
	})
}

// FoundReportsHandler returns all found reports
func (f Found) FoundReportsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := f.DB.Find(ctx, bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get found reports", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.FoundReport{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteFoundReportHandler deletes a found report once the requester proves
// ownership by matching the stored contact phone or email.
func (f Found) DeleteFoundReportHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["id"]

	rID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var body contactVerification
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	report, err := f.DB.FindOne(ctx, bson.M{"_id": rID})
	if err != nil {
		config.ErrorStatus("item not found", http.StatusNotFound, w, err)
		return
	}

	if !body.matches(report.ContactPhone, report.ContactEmail) {
		config.ErrorStatus("unauthorized, contact information does not match", http.StatusForbidden,
			w, fmt.Errorf("contact verification failed"))
		return
	}

	if _, err := f.DB.DeleteOne(ctx, bson.M{"_id": rID}); err != nil {
		config.ErrorStatus("failed to delete found report", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.DeleteResponse{
		Success: true,
		Message: "Found item deleted successfully",
	})
}

// contactVerification is the proof-of-ownership body on delete requests
type contactVerification struct {
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
}

// matches requires at least one supplied contact field to equal the stored one
func (c contactVerification) matches(storedPhone, storedEmail string) bool {
	phoneMatch := c.ContactPhone != "" && storedPhone == c.ContactPhone
	emailMatch := c.ContactEmail != "" && storedEmail == c.ContactEmail
	return phoneMatch || emailMatch
}
