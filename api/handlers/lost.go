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
	"github.com/Sami21234/lostfound-backend/models"
	"github.com/Sami21234/lostfound-backend/uploads"
)

// Lost exported for testing purposes
type Lost struct {
	DB     databases.LostReportDatabase
	Photos uploads.PhotoStore
}

// CreateLostReportHandler saves a lost report. No matching runs here, the
// scoring pass only fires when a found report arrives.
func (l Lost) CreateLostReportHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	in, err := parseReportInput(ctx, r, l.Photos)
	if err != nil {
		config.ErrorStatus("failed to read lost report", http.StatusBadRequest, w, err)
		return
	}
	if err := in.validate(); err != nil {
		config.ErrorStatus("invalid lost report", http.StatusBadRequest, w, err)
		return
	}

	report := models.LostReport{
		ID:           primitive.NewObjectID(),
		ItemName:     in.ItemName,
		Description:  in.Description,
		Location:     in.Location,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,
		DateLost:     in.DateLost,
		ImageURL:     in.imageURL,
		CreatedAt:    primitive.NewDateTimeFromTime(time.Now()),
	}

	if _, err := l.DB.InsertOne(ctx, report); err != nil {
		config.ErrorStatus("failed to save lost report", http.StatusInternalServerError, w, err)
		return
	}
	zap.S().Infow("lost report saved", "id", report.ID.Hex(), "itemName", report.ItemName)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.LostReportResponse{
		Success: true,
		Message: "Lost item reported successfully",
		Item:    report,
	})
}

// LostReportsHandler returns all lost reports
func (l Lost) LostReportsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := l.DB.Find(ctx, bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get lost reports", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.LostReport{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteLostReportHandler deletes a lost report once the requester proves
// ownership by matching the stored contact phone or email.
func (l Lost) DeleteLostReportHandler(w http.ResponseWriter, r *http.Request) {
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

	report, err := l.DB.FindOne(ctx, bson.M{"_id": rID})
	if err != nil {
		config.ErrorStatus("item not found", http.StatusNotFound, w, err)
		return
	}

	if !body.matches(report.ContactPhone, report.ContactEmail) {
		config.ErrorStatus("unauthorized, contact information does not match", http.StatusForbidden,
			w, fmt.Errorf("contact verification failed"))
		return
	}

	if _, err := l.DB.DeleteOne(ctx, bson.M{"_id": rID}); err != nil {
		config.ErrorStatus("failed to delete lost report", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.DeleteResponse{
		Success: true,
		Message: "Lost item deleted successfully",
	})
}

// MarkAsFoundHandler resolves a lost report manually without running the
// scoring engine. A repeated resolve of the same id reports the benign
// not-found outcome instead of failing.
func (l Lost) MarkAsFoundHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["lostId"]

	rID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	deleted, err := l.DB.DeleteOne(ctx, bson.M{"_id": rID})
	if err != nil {
		config.ErrorStatus("failed to mark lost report as found", http.StatusInternalServerError, w, err)
		return
	}
	if deleted == 0 {
		config.ErrorStatus("lost item not found", http.StatusNotFound, w, fmt.Errorf("no report with id %s", reportID))
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.DeleteResponse{
		Success: true,
		Message: "Lost item marked as found and removed from dashboard",
	})
}
