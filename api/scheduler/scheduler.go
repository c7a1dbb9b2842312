package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Sami21234/lostfound-backend/databases"
	"github.com/Sami21234/lostfound-backend/mailer"
)

// Scheduler handles periodic background jobs for the report registry
type Scheduler struct {
	cron   *cron.Cron
	LDB    databases.LostReportDatabase
	FDB    databases.FoundReportDatabase
	Mailer mailer.Sender

	// TTLDays is how long a report stays listed before the purge job
	// removes it.
	TTLDays int
}

// NewScheduler creates a new scheduler instance
func NewScheduler(ldb databases.LostReportDatabase, fdb databases.FoundReportDatabase, sender mailer.Sender, ttlDays int) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		LDB:     ldb,
		FDB:     fdb,
		Mailer:  sender,
		TTLDays: ttlDays,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Purge expired reports daily at 3 AM UTC
	_, err := s.cron.AddFunc("0 3 * * *", s.PurgeExpiredReports)
	if err != nil {
		zap.S().Errorw("failed to register purge job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("report purge scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("report purge scheduler stopped")
}

// PurgeExpiredReports removes reports older than the retention window,
// emailing each owner who left a contact address. Exported so tests can
// invoke the job directly.
func (s *Scheduler) PurgeExpiredReports() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-time.Duration(s.TTLDays) * 24 * time.Hour)
	filter := bson.M{
		"createdAt": bson.M{"$lt": primitive.NewDateTimeFromTime(cutoff)},
	}

	zap.S().Infow("running report purge job", "cutoff", cutoff, "ttlDays", s.TTLDays)

	lostPurged := s.purgeLost(ctx, filter)
	foundPurged := s.purgeFound(ctx, filter)

	zap.S().Infow("report purge complete",
		"lostPurged", lostPurged,
		"foundPurged", foundPurged,
	)
}

func (s *Scheduler) purgeLost(ctx context.Context, filter bson.M) int64 {
	expired, err := s.LDB.Find(ctx, filter)
	if err != nil {
		zap.S().Errorw("failed to find expired lost reports", "error", err)
		return 0
	}
	for _, report := range expired {
		s.notifyExpiry(report.ContactEmail, report.ContactName, report.ItemName)
	}

	deleted, err := s.LDB.DeleteMany(ctx, filter)
	if err != nil {
		zap.S().Errorw("failed to purge lost reports", "error", err)
		return 0
	}
	return deleted
}

func (s *Scheduler) purgeFound(ctx context.Context, filter bson.M) int64 {
	expired, err := s.FDB.Find(ctx, filter)
	if err != nil {
		zap.S().Errorw("failed to find expired found reports", "error", err)
		return 0
	}
	for _, report := range expired {
		s.notifyExpiry(report.ContactEmail, report.ContactName, report.ItemName)
	}

	deleted, err := s.FDB.DeleteMany(ctx, filter)
	if err != nil {
		zap.S().Errorw("failed to purge found reports", "error", err)
		return 0
	}
	return deleted
}

func (s *Scheduler) notifyExpiry(email, contactName, itemName string) {
	if email == "" {
		return
	}
	if err := s.Mailer.SendExpiryNotice(email, contactName, itemName); err != nil {
		zap.S().Warnw("failed to send expiry notice", "error", err, "email", email, "item", itemName)
	}
}
