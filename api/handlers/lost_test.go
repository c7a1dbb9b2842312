package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Sami21234/lostfound-backend/api/handlers"
	dbmocks "github.com/Sami21234/lostfound-backend/databases/mocks"
	"github.com/Sami21234/lostfound-backend/models"
	uploadmocks "github.com/Sami21234/lostfound-backend/uploads/mocks"
)

func TestLost_CreateLostReportHandler(t *testing.T) {
	lostDB := &dbmocks.LostReportDatabase{}
	lostDB.On("InsertOne", mock.Anything, mock.AnythingOfType("models.LostReport")).Return(nil, nil)

	l := handlers.Lost{DB: lostDB}

	body := `{"itemName":"wallet","description":"black leather wallet","location":"central park","contactEmail":"olive@example.com","dateLost":"2024-05-08"}`
	req, _ := http.NewRequest("POST", "/api/v1/report-lost", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	http.HandlerFunc(l.CreateLostReportHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":true`)
	assert.Contains(t, rr.Body.String(), "wallet")
	lostDB.AssertCalled(t, "InsertOne", mock.Anything, mock.AnythingOfType("models.LostReport"))
}

func TestLost_CreateLostReportHandlerMultipartWithImage(t *testing.T) {
	lostDB := &dbmocks.LostReportDatabase{}
	lostDB.On("InsertOne", mock.Anything, mock.AnythingOfType("models.LostReport")).Return(nil, nil)

	photos := &uploadmocks.PhotoStore{}
	photos.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return("https://res.cloudinary.com/demo/image/upload/wallet.jpg", nil)

	l := handlers.Lost{DB: lostDB, Photos: photos}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("itemName", "wallet")
	_ = mw.WriteField("description", "black leather wallet")
	_ = mw.WriteField("location", "central park")
	part, _ := mw.CreateFormFile("image", "wallet.jpg")
	_, _ = part.Write([]byte("not-a-real-jpeg"))
	mw.Close()

	req, _ := http.NewRequest("POST", "/api/v1/report-lost", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rr := httptest.NewRecorder()
	http.HandlerFunc(l.CreateLostReportHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "wallet.jpg")
	photos.AssertCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestLost_CreateLostReportHandlerMissingFields(t *testing.T) {
	lostDB := &dbmocks.LostReportDatabase{}
	l := handlers.Lost{DB: lostDB}

	body := `{"itemName":"wallet"}`
	req, _ := http.NewRequest("POST", "/api/v1/report-lost", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	http.HandlerFunc(l.CreateLostReportHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid lost report")
	lostDB.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestLost_LostReportsHandlerEmpty(t *testing.T) {
	lostDB := &dbmocks.LostReportDatabase{}
	lostDB.On("Find", mock.Anything, mock.Anything).Return([]models.LostReport{}, nil)

	l := handlers.Lost{DB: lostDB}

	req, _ := http.NewRequest("GET", "/api/v1/lost", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(l.LostReportsHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestLost_DeleteLostReportHandlerInvalidID(t *testing.T) {
	l := handlers.Lost{DB: &dbmocks.LostReportDatabase{}}

	req, _ := http.NewRequest("DELETE", "/api/v1/lost/1234", strings.NewReader(`{}`))
	req = mux.SetURLVars(req, map[string]string{"id": "1234"})

	rr := httptest.NewRecorder()
	http.HandlerFunc(l.DeleteLostReportHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to get objectID from Hex")
}

func TestLost_DeleteLostReportHandlerContactMismatch(t *testing.T) {
	stored := newLostWalletFixture()

	lostDB := &dbmocks.LostReportDatabase{}
	lostDB.On("FindOne", mock.Anything, mock.Anything).Return(&stored, nil)

	l := handlers.Lost{DB: lostDB}

	body := `{"contactEmail":"intruder@example.com","contactPhone":"555-9999"}`
	req, _ := http.NewRequest("DELETE", "/api/v1/lost/"+stored.ID.Hex(), strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": stored.ID.Hex()})

	rr := httptest.NewRecorder()
	http.HandlerFunc(l.DeleteLostReportHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "contact information does not match")
	lostDB.AssertNotCalled(t, "DeleteOne", mock.Anything, mock.Anything)
}

func TestLost_DeleteLostReportHandlerEmailMatch(t *testing.T) {
	stored := newLostWalletFixture()

	lostDB := &dbmocks.LostReportDatabase{}
	lostDB.On("FindOne", mock.Anything, mock.Anything).Return(&stored, nil)
	lostDB.On("DeleteOne", mock.Anything, mock.Anything).Return(int64(1), nil)

	l := handlers.Lost{DB: lostDB}

	body := `{"contactEmail":"olive@example.com"}`
	req, _ := http.NewRequest("DELETE", "/api/v1/lost/"+stored.ID.Hex(), strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": stored.ID.Hex()})

	rr := httptest.NewRecorder()
	http.HandlerFunc(l.DeleteLostReportHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Lost item deleted successfully")
}

func TestLost_MarkAsFoundHandler(t *testing.T) {
	stored := newLostWalletFixture()

	lostDB := &dbmocks.LostReportDatabase{}
	lostDB.On("DeleteOne", mock.Anything, mock.Anything).Return(int64(1), nil)

	l := handlers.Lost{DB: lostDB}

	req, _ := http.NewRequest("POST", "/api/v1/mark-as-found/"+stored.ID.Hex(), nil)
	req = mux.SetURLVars(req, map[string]string{"lostId": stored.ID.Hex()})

	rr := httptest.NewRecorder()
	http.HandlerFunc(l.MarkAsFoundHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "marked as found")
}

func TestLost_MarkAsFoundHandlerAlreadyResolved(t *testing.T) {
	stored := newLostWalletFixture()

	lostDB := &dbmocks.LostReportDatabase{}
	lostDB.On("DeleteOne", mock.Anything, mock.Anything).Return(int64(0), nil)

	l := handlers.Lost{DB: lostDB}

	req, _ := http.NewRequest("POST", "/api/v1/mark-as-found/"+stored.ID.Hex(), nil)
	req = mux.SetURLVars(req, map[string]string{"lostId": stored.ID.Hex()})

	rr := httptest.NewRecorder()
	http.HandlerFunc(l.MarkAsFoundHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "lost item not found")
}
