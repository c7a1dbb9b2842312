package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sami21234/lostfound-backend/api/handlers"
	dbmocks "github.com/Sami21234/lostfound-backend/databases/mocks"
	mailmocks "github.com/Sami21234/lostfound-backend/mailer/mocks"
	"github.com/Sami21234/lostfound-backend/matching"
	"github.com/Sami21234/lostfound-backend/models"
)

// newLostWalletFixture scores well above 80 against the found-wallet request
// body used
// in the create tests: the names contain each other, share a token, and the
// locations contain each other.
func newLostWalletFixture() models.LostReport {
	return models.LostReport{
		ID:           primitive.NewObjectID(),
		ItemName:     "wallet",
		Description:  "black leather wallet",
		Location:     "central park",
		ContactName:  "Owner Olive",
		ContactPhone: "555-0111",
		ContactEmail: "olive@example.com",
		DateLost:     "2024-05-08",
	}
}

func TestFound_CreateFoundReportHandlerStrongMatch(t *testing.T) {
	lost := newLostWalletFixture()

	foundDB := &dbmocks.FoundReportDatabase{}
	foundDB.On("InsertOne", mock.Anything, mock.AnythingOfType("models.FoundReport")).Return(nil, nil)

	lostDB := &dbmocks.LostReportDatabase{}
	lostDB.On("Find", mock.Anything, mock.Anything).Return([]models.LostReport{lost}, nil)
	lostDB.On("DeleteOne", mock.Anything, mock.Anything).Return(int64(1), nil)

	sender := &mailmocks.Sender{}
	sender.On("SendMatchNotification", mock.Anything, mock.Anything, mock.AnythingOfType("int")).Return(nil)
	sender.On("SendHighConfidenceMatch", mock.Anything, mock.Anything, mock.AnythingOfType("int")).Return(nil)

	f := handlers.Found{
		DB:       foundDB,
		LDB:      lostDB,
		Resolver: matching.NewResolver(lostDB, sender, matching.DefaultConfig()),
	}

	body := `{"itemName":"Black Wallet","description":"found a wallet on a bench","location":"central park","contactEmail":"fred@example.com","dateFound":"2024-05-10"}`
	req, _ := http.NewRequest("POST", "/api/v1/report-found", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	http.HandlerFunc(f.CreateFoundReportHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp models.FoundReportResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Matches, 1)
	assert.True(t, resp.Matches[0].AutoRemoved)
	assert.Equal(t, 1, resp.AutoRemovedCount)
	assert.Len(t, resp.NotificationsSent, 1)
	assert.True(t, resp.NotificationsSent[0].Sent)
	assert.Equal(t, lost.ID, resp.NotificationsSent[0].ItemID)

	lostDB.AssertCalled(t, "DeleteOne", mock.Anything, mock.Anything)
	sender.AssertCalled(t, "SendHighConfidenceMatch", mock.Anything, mock.Anything, mock.AnythingOfType("int"))
}

func TestFound_CreateFoundReportHandlerNoMatches(t *testing.T) {
	foundDB := &dbmocks.FoundReportDatabase{}
	foundDB.On("InsertOne", mock.Anything, mock.AnythingOfType("models.FoundReport")).Return(nil, nil)

	lostDB := &dbmocks.LostReportDatabase{}
	lostDB.On("Find", mock.Anything, mock.Anything).Return([]models.LostReport{}, nil)

	sender := &mailmocks.Sender{}

	f := handlers.Found{
		DB:       foundDB,
		LDB:      lostDB,
		Resolver: matching.NewResolver(lostDB, sender, matching.DefaultConfig()),
	}

	body := `{"itemName":"umbrella","description":"plain black umbrella","location":"bus stop"}`
	req, _ := http.NewRequest("POST", "/api/v1/report-found", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	http.HandlerFunc(f.CreateFoundReportHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp models.FoundReportResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Matches)
	assert.Zero(t, resp.AutoRemovedCount)
	sender.AssertNotCalled(t, "SendMatchNotification", mock.Anything, mock.Anything, mock.Anything)
}

func TestFound_CreateFoundReportHandlerMissingFields(t *testing.T) {
	f := handlers.Found{DB: &dbmocks.FoundReportDatabase{}}

	body := `{"description":"found something"}`
	req, _ := http.NewRequest("POST", "/api/v1/report-found", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	http.HandlerFunc(f.CreateFoundReportHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid found report")
}

func TestFound_FoundReportsHandlerEmpty(t *testing.T) {
	foundDB := &dbmocks.FoundReportDatabase{}
	foundDB.On("Find", mock.Anything, mock.Anything).Return([]models.FoundReport{}, nil)

	f := handlers.Found{DB: foundDB}

	req, _ := http.NewRequest("GET", "/api/v1/found", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(f.FoundReportsHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestFound_DeleteFoundReportHandlerContactMismatch(t *testing.T) {
	stored := models.FoundReport{
		ID:           primitive.NewObjectID(),
		ItemName:     "Black Wallet",
		Description:  "leather wallet with cards",
		Location:     "central park",
		ContactPhone: "555-0100",
		ContactEmail: "fred@example.com",
	}

	foundDB := &dbmocks.FoundReportDatabase{}
	foundDB.On("FindOne", mock.Anything, mock.Anything).Return(&stored, nil)

	f := handlers.Found{DB: foundDB}

	body := `{"contactEmail":"intruder@example.com"}`
	req, _ := http.NewRequest("DELETE", "/api/v1/found/"+stored.ID.Hex(), strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": stored.ID.Hex()})

	rr := httptest.NewRecorder()
	http.HandlerFunc(f.DeleteFoundReportHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	foundDB.AssertNotCalled(t, "DeleteOne", mock.Anything, mock.Anything)
}

func TestFound_DeleteFoundReportHandlerPhoneMatch(t *testing.T) {
	stored := models.FoundReport{
		ID:           primitive.NewObjectID(),
		ItemName:     "Black Wallet",
		Description:  "leather wallet with cards",
		Location:     "central park",
		ContactPhone: "555-0100",
	}

	foundDB := &dbmocks.FoundReportDatabase{}
	foundDB.On("FindOne", mock.Anything, mock.Anything).Return(&stored, nil)
	foundDB.On("DeleteOne", mock.Anything, mock.Anything).Return(int64(1), nil)

	f := handlers.Found{DB: foundDB}

	body := `{"contactPhone":"555-0100"}`
	req, _ := http.NewRequest("DELETE", "/api/v1/found/"+stored.ID.Hex(), strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": stored.ID.Hex()})

	rr := httptest.NewRecorder()
	http.HandlerFunc(f.DeleteFoundReportHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Found item deleted successfully")
}
