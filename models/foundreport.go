package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FoundReport holds the structure for the foundReports collection in mongo
type FoundReport struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ItemName     string             `json:"itemName" bson:"itemName"`
	Description  string             `json:"description" bson:"description"`
	Location     string             `json:"location" bson:"location"`
	ContactName  string             `json:"contactName,omitempty" bson:"contactName,omitempty"`
	ContactPhone string             `json:"contactPhone,omitempty" bson:"contactPhone,omitempty"`
	ContactEmail string             `json:"contactEmail,omitempty" bson:"contactEmail,omitempty"`
	DateFound    string             `json:"dateFound,omitempty" bson:"dateFound,omitempty"`
	ImageURL     string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt    primitive.DateTime `json:"createdAt" bson:"createdAt"`
}
