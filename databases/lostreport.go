package databases

// go generate: mockery --name LostReportDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sami21234/lostfound-backend/models"
)

const lostReportName = "lostReports"

// LostReportDatabase contains the methods to use with the lost report database
type LostReportDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.LostReport, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.LostReport, error)
	InsertOne(context.Context, models.LostReport, ...*options.InsertOneOptions) (interface{}, error)
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) (int64, error)
	DeleteMany(context.Context, interface{}, ...*options.DeleteOptions) (int64, error)
}

type lostReportDatabase struct {
	db DatabaseHelper
}

// NewLostReportDatabase initializes a new instance of lost report database with the provided db connection
func NewLostReportDatabase(db DatabaseHelper) LostReportDatabase {
	return &lostReportDatabase{
		db: db,
	}
}

func (l *lostReportDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.LostReport, error) {
	report := &models.LostReport{}
	err := l.db.Collection(lostReportName).FindOne(ctx, filter, opts...).Decode(&report)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (l *lostReportDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.LostReport, error) {
	var reports []models.LostReport
	cur, err := l.db.Collection(lostReportName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&reports)
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (l *lostReportDatabase) InsertOne(ctx context.Context, report models.LostReport, opts ...*options.InsertOneOptions) (interface{}, error) {
	return l.db.Collection(lostReportName).InsertOne(ctx, report, opts...)
}

func (l *lostReportDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error) {
	return l.db.Collection(lostReportName).DeleteOne(ctx, filter, opts...)
}

func (l *lostReportDatabase) DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error) {
	return l.db.Collection(lostReportName).DeleteMany(ctx, filter, opts...)
}
