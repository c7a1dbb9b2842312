package databases

// go generate: mockery --name FoundReportDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sami21234/lostfound-backend/models"
)

const foundReportName = "foundReports"

// FoundReportDatabase contains the methods to use with the found report database
type FoundReportDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.FoundReport, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.FoundReport, error)
	InsertOne(context.Context, models.FoundReport, ...*options.InsertOneOptions) (interface{}, error)
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) (int64, error)
	DeleteMany(context.Context, interface{}, ...*options.DeleteOptions) (int64, error)
}

type foundReportDatabase struct {
	db DatabaseHelper
}

// NewFoundReportDatabase initializes a new instance of found report database with the provided db connection
func NewFoundReportDatabase(db DatabaseHelper) FoundReportDatabase {
	return &foundReportDatabase{
		db: db,
	}
}

func (f *foundReportDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.FoundReport, error) {
	report := &models.FoundReport{}
	err := f.db.Collection(foundReportName).FindOne(ctx, filter, opts...).Decode(&report)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (f *foundReportDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.FoundReport, error) {
	var reports []models.FoundReport
	cur, err := f.db.Collection(foundReportName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&reports)
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (f *foundReportDatabase) InsertOne(ctx context.Context, report models.FoundReport, opts ...*options.InsertOneOptions) (interface{}, error) {
	return f.db.Collection(foundReportName).InsertOne(ctx, report, opts...)
}

func (f *foundReportDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error) {
	return f.db.Collection(foundReportName).DeleteOne(ctx, filter, opts...)
}

func (f *foundReportDatabase) DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error) {
	return f.db.Collection(foundReportName).DeleteMany(ctx, filter, opts...)
}
