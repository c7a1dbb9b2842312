package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// HealthCheckResponse returns the health check response, gasp
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// Item wraps a lost or found report for the combined listing endpoint,
// tagging each entry with its kind.
type Item struct {
	Type string `json:"type"` // "lost" or "found"

	ID           primitive.ObjectID `json:"_id"`
	ItemName     string             `json:"itemName"`
	Description  string             `json:"description"`
	Location     string             `json:"location"`
	ContactName  string             `json:"contactName,omitempty"`
	ContactPhone string             `json:"contactPhone,omitempty"`
	ContactEmail string             `json:"contactEmail,omitempty"`
	EventDate    string             `json:"eventDate,omitempty"`
	ImageURL     string             `json:"imageUrl,omitempty"`
	CreatedAt    primitive.DateTime `json:"createdAt"`
}

// LostReportResponse is returned after a lost report submission
type LostReportResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Item    LostReport `json:"item"`
}

// MatchEntry describes one scored candidate in a found-report response
type MatchEntry struct {
	Item        LostReport `json:"item"`
	MatchScore  int        `json:"matchScore"`
	AutoRemoved bool       `json:"autoRemoved"`
}

// NotificationAttempt records the outcome of one match email
type NotificationAttempt struct {
	ItemID primitive.ObjectID `json:"itemId"`
	Email  string             `json:"email"`
	Sent   bool               `json:"sent"`
}

// FoundReportResponse is returned after a found report submission, carrying
// the match summary produced by the resolution pass.
type FoundReportResponse struct {
	Success           bool                  `json:"success"`
	Message           string                `json:"message"`
	Item              FoundReport           `json:"item"`
	Matches           []MatchEntry          `json:"matches"`
	AutoRemovedCount  int                   `json:"autoRemovedCount"`
	NotificationsSent []NotificationAttempt `json:"notificationsSent"`
	Warnings          []string              `json:"warnings,omitempty"`
}

// DeleteResponse is returned by the delete and mark-as-found endpoints
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserResponse is the sanitized user shape returned by register and login
type UserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}
