package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// LostReport holds the structure for the lostReports collection in mongo
type LostReport struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ItemName     string             `json:"itemName" bson:"itemName"`
	Description  string             `json:"description" bson:"description"`
	Location     string             `json:"location" bson:"location"`
	ContactName  string             `json:"contactName,omitempty" bson:"contactName,omitempty"`
	ContactPhone string             `json:"contactPhone,omitempty" bson:"contactPhone,omitempty"`
	ContactEmail string             `json:"contactEmail,omitempty" bson:"contactEmail,omitempty"`
	DateLost     string             `json:"dateLost,omitempty" bson:"dateLost,omitempty"`
	ImageURL     string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt    primitive.DateTime `json:"createdAt" bson:"createdAt"`
}
