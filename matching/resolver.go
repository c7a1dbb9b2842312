package matching

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/Sami21234/lostfound-backend/databases"
	"github.com/Sami21234/lostfound-backend/mailer"
	"github.com/Sami21234/lostfound-backend/models"
)

// Resolver consumes the engine's classified candidate list and applies the
// threshold policy: every match notifies the owner when an email exists;
// strong matches additionally get the urgent notification and then the lost
// report is deleted. Each side effect is isolated so a single failure cannot
// abort the remainder of the batch.
type Resolver struct {
	Lost   databases.LostReportDatabase
	Mailer mailer.Sender
	Config Config
}

// NewResolver wires the resolver with its store and notification collaborators.
func NewResolver(lost databases.LostReportDatabase, sender mailer.Sender, cfg Config) *Resolver {
	return &Resolver{Lost: lost, Mailer: sender, Config: cfg}
}

// Summary aggregates the outcome of one resolution pass. It is what the HTTP
// boundary serializes back to the caller.
type Summary struct {
	Matches           []models.MatchEntry
	AutoRemovedCount  int
	NotificationsSent []models.NotificationAttempt
	Warnings          []string
}

// Resolve scores the saved found report against the given lost reports and
// executes the notification and deletion side effects in strict score order.
func (r *Resolver) Resolve(ctx context.Context, found models.FoundReport, lostReports []models.LostReport) Summary {
	candidates := make([]Report, len(lostReports))
	for i, lost := range lostReports {
		candidates[i] = LostView(lost)
	}

	matches := FindMatches(FoundView(found), candidates, r.Config)

	summary := Summary{
		Matches:           []models.MatchEntry{},
		NotificationsSent: []models.NotificationAttempt{},
	}

	for _, match := range matches {
		lost := lostReports[match.Index]
		strong := match.Score >= r.Config.StrongThreshold
		notifiable := strings.TrimSpace(lost.ContactEmail) != ""

		if notifiable {
			sent := true
			if err := r.Mailer.SendMatchNotification(lost, found, match.Score); err != nil {
				zap.S().Errorw("failed to send match notification",
					"lostReportId", lost.ID.Hex(),
					"email", lost.ContactEmail,
					"error", err,
				)
				sent = false
			}
			summary.NotificationsSent = append(summary.NotificationsSent, models.NotificationAttempt{
				ItemID: lost.ID,
				Email:  lost.ContactEmail,
				Sent:   sent,
			})
		}

		if strong {
			if notifiable {
				if err := r.Mailer.SendHighConfidenceMatch(lost, found, match.Score); err != nil {
					// Notification failures never block resolution
					zap.S().Errorw("failed to send high confidence notification",
						"lostReportId", lost.ID.Hex(),
						"email", lost.ContactEmail,
						"error", err,
					)
				}
			}

			deleted, err := r.Lost.DeleteOne(ctx, bson.M{"_id": lost.ID})
			if err != nil {
				summary.Warnings = append(summary.Warnings,
					fmt.Sprintf("failed to remove matched lost report %s: %v", lost.ID.Hex(), err))
			} else if deleted == 0 {
				// Already resolved by a concurrent pass, benign
				zap.S().Infow("matched lost report already removed", "lostReportId", lost.ID.Hex())
			} else {
				summary.AutoRemovedCount++
				zap.S().Infow("auto-removed lost report",
					"lostReportId", lost.ID.Hex(),
					"itemName", lost.ItemName,
					"score", match.Score,
				)
			}
		}

		summary.Matches = append(summary.Matches, models.MatchEntry{
			Item:        lost,
			MatchScore:  match.Score,
			AutoRemoved: strong,
		})
	}

	return summary
}
