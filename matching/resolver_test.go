package matching_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	dbmocks "github.com/Sami21234/lostfound-backend/databases/mocks"
	mailmocks "github.com/Sami21234/lostfound-backend/mailer/mocks"
	"github.com/Sami21234/lostfound-backend/matching"
	"github.com/Sami21234/lostfound-backend/models"
)

func newFoundWallet() models.FoundReport {
	return models.FoundReport{
		ID:           primitive.NewObjectID(),
		ItemName:     "Black Wallet",
		Description:  "leather wallet with cards",
		Location:     "Central Park",
		ContactName:  "Finder Fred",
		ContactPhone: "555-0100",
		ContactEmail: "fred@example.com",
		DateFound:    "2024-05-10",
	}
}

func newLostWallet() models.LostReport {
	return models.LostReport{
		ID:           primitive.NewObjectID(),
		ItemName:     "wallet",
		Description:  "black leather wallet",
		Location:     "central park east",
		ContactName:  "Owner Olive",
		ContactEmail: "olive@example.com",
		DateLost:     "2024-05-08",
	}
}

func TestResolveStrongMatchNotifiesAndRemoves(t *testing.T) {
	lostDB := &dbmocks.LostReportDatabase{}
	sender := &mailmocks.Sender{}
	r := matching.NewResolver(lostDB, sender, matching.DefaultConfig())

	found := newFoundWallet()
	lost := newLostWallet()

	sender.On("SendMatchNotification", lost, found, mock.AnythingOfType("int")).Return(nil)
	sender.On("SendHighConfidenceMatch", lost, found, mock.AnythingOfType("int")).Return(nil)
	lostDB.On("DeleteOne", mock.Anything, bson.M{"_id": lost.ID}).Return(int64(1), nil)

	summary := r.Resolve(context.Background(), found, []models.LostReport{lost})

	assert.Len(t, summary.Matches, 1)
	assert.True(t, summary.Matches[0].AutoRemoved)
	assert.GreaterOrEqual(t, summary.Matches[0].MatchScore, 80)
	assert.Equal(t, 1, summary.AutoRemovedCount)
	assert.Len(t, summary.NotificationsSent, 1)
	assert.True(t, summary.NotificationsSent[0].Sent)
	assert.Equal(t, lost.ID, summary.NotificationsSent[0].ItemID)
	assert.Empty(t, summary.Warnings)

	sender.AssertExpectations(t)
	lostDB.AssertExpectations(t)
}

func TestResolveWeakMatchNotifiesOnly(t *testing.T) {
	lostDB := &dbmocks.LostReportDatabase{}
	sender := &mailmocks.Sender{}
	r := matching.NewResolver(lostDB, sender, matching.DefaultConfig())

	found := models.FoundReport{ID: primitive.NewObjectID(), ItemName: "black wallet"}
	lost := models.LostReport{
		ID:           primitive.NewObjectID(),
		ItemName:     "wallet", // containment +50, token +10 = exactly 60
		ContactEmail: "olive@example.com",
	}

	sender.On("SendMatchNotification", lost, found, 60).Return(nil)

	summary := r.Resolve(context.Background(), found, []models.LostReport{lost})

	assert.Len(t, summary.Matches, 1)
	assert.False(t, summary.Matches[0].AutoRemoved)
	assert.Equal(t, 0, summary.AutoRemovedCount)

	sender.AssertExpectations(t)
	lostDB.AssertNotCalled(t, "DeleteOne", mock.Anything, mock.Anything)
}

func TestResolveNoMatchesDoesNothing(t *testing.T) {
	lostDB := &dbmocks.LostReportDatabase{}
	sender := &mailmocks.Sender{}
	r := matching.NewResolver(lostDB, sender, matching.DefaultConfig())

	found := models.FoundReport{ID: primitive.NewObjectID(), ItemName: "red scarf"}
	lost := models.LostReport{ID: primitive.NewObjectID(), ItemName: "blue hat", ContactEmail: "olive@example.com"}

	summary := r.Resolve(context.Background(), found, []models.LostReport{lost})

	assert.Empty(t, summary.Matches)
	assert.Empty(t, summary.NotificationsSent)
	sender.AssertNotCalled(t, "SendMatchNotification", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveNotificationFailureDoesNotBlockRemoval(t *testing.T) {
	lostDB := &dbmocks.LostReportDatabase{}
	sender := &mailmocks.Sender{}
	r := matching.NewResolver(lostDB, sender, matching.DefaultConfig())

	found := newFoundWallet()
	lost := newLostWallet()

	sender.On("SendMatchNotification", lost, found, mock.AnythingOfType("int")).Return(errors.New("smtp down"))
	sender.On("SendHighConfidenceMatch", lost, found, mock.AnythingOfType("int")).Return(errors.New("smtp down"))
	lostDB.On("DeleteOne", mock.Anything, bson.M{"_id": lost.ID}).Return(int64(1), nil)

	summary := r.Resolve(context.Background(), found, []models.LostReport{lost})

	assert.Len(t, summary.NotificationsSent, 1)
	assert.False(t, summary.NotificationsSent[0].Sent)
	assert.Equal(t, 1, summary.AutoRemovedCount)
	lostDB.AssertExpectations(t)
}

func TestResolveStrongMatchWithoutEmailStillRemoves(t *testing.T) {
	lostDB := &dbmocks.LostReportDatabase{}
	sender := &mailmocks.Sender{}
	r := matching.NewResolver(lostDB, sender, matching.DefaultConfig())

	found := newFoundWallet()
	lost := newLostWallet()
	lost.ContactEmail = ""

	lostDB.On("DeleteOne", mock.Anything, bson.M{"_id": lost.ID}).Return(int64(1), nil)

	summary := r.Resolve(context.Background(), found, []models.LostReport{lost})

	assert.Empty(t, summary.NotificationsSent)
	assert.Equal(t, 1, summary.AutoRemovedCount)
	sender.AssertNotCalled(t, "SendMatchNotification", mock.Anything, mock.Anything, mock.Anything)
	sender.AssertNotCalled(t, "SendHighConfidenceMatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveAlreadyDeletedIsBenign(t *testing.T) {
	// Simulates the race where a concurrent pass already removed the report
	lostDB := &dbmocks.LostReportDatabase{}
	sender := &mailmocks.Sender{}
	r := matching.NewResolver(lostDB, sender, matching.DefaultConfig())

	found := newFoundWallet()
	lost := newLostWallet()

	sender.On("SendMatchNotification", lost, found, mock.AnythingOfType("int")).Return(nil)
	sender.On("SendHighConfidenceMatch", lost, found, mock.AnythingOfType("int")).Return(nil)
	lostDB.On("DeleteOne", mock.Anything, bson.M{"_id": lost.ID}).Return(int64(0), nil)

	summary := r.Resolve(context.Background(), found, []models.LostReport{lost})

	assert.Equal(t, 0, summary.AutoRemovedCount)
	assert.Empty(t, summary.Warnings)
	assert.True(t, summary.Matches[0].AutoRemoved)
}

func TestResolveDeleteErrorSurfacesAsWarning(t *testing.T) {
	lostDB := &dbmocks.LostReportDatabase{}
	sender := &mailmocks.Sender{}
	r := matching.NewResolver(lostDB, sender, matching.DefaultConfig())

	found := newFoundWallet()
	lost := newLostWallet()

	sender.On("SendMatchNotification", lost, found, mock.AnythingOfType("int")).Return(nil)
	sender.On("SendHighConfidenceMatch", lost, found, mock.AnythingOfType("int")).Return(nil)
	lostDB.On("DeleteOne", mock.Anything, bson.M{"_id": lost.ID}).Return(int64(0), errors.New("connection reset"))

	summary := r.Resolve(context.Background(), found, []models.LostReport{lost})

	assert.Equal(t, 0, summary.AutoRemovedCount)
	assert.Len(t, summary.Warnings, 1)
	assert.Contains(t, summary.Warnings[0], lost.ID.Hex())
}

func TestResolveProcessesCandidatesInScoreOrder(t *testing.T) {
	lostDB := &dbmocks.LostReportDatabase{}
	sender := &mailmocks.Sender{}
	r := matching.NewResolver(lostDB, sender, matching.DefaultConfig())

	found := models.FoundReport{ID: primitive.NewObjectID(), ItemName: "black wallet", Location: "central park", DateFound: "2024-05-10"}

	weak := models.LostReport{ID: primitive.NewObjectID(), ItemName: "wallet", ContactEmail: "weak@example.com"}
	strong := models.LostReport{ID: primitive.NewObjectID(), ItemName: "black wallet", Location: "central park", DateLost: "2024-05-09", ContactEmail: "strong@example.com"}

	var order []string
	sender.On("SendMatchNotification", mock.Anything, found, mock.AnythingOfType("int")).Return(nil).Run(func(args mock.Arguments) {
		order = append(order, args.Get(0).(models.LostReport).ContactEmail)
	})
	sender.On("SendHighConfidenceMatch", strong, found, mock.AnythingOfType("int")).Return(nil)
	lostDB.On("DeleteOne", mock.Anything, bson.M{"_id": strong.ID}).Return(int64(1), nil)

	summary := r.Resolve(context.Background(), found, []models.LostReport{weak, strong})

	assert.Equal(t, []string{"strong@example.com", "weak@example.com"}, order)
	assert.Len(t, summary.Matches, 2)
	assert.Equal(t, "black wallet", summary.Matches[0].Item.ItemName)
}
