package models

type Event struct {
	Meta
	Name        string `firestore:"name" json:"name" validate:"required"`
	Date        string `firestore:"date" json:"date" validate:"required"` // ISO-8601, as the SPA submits it
	Time        string `firestore:"time" json:"time,omitempty"`
	Location    string `firestore:"location" json:"location,omitempty"`
	IsOnline    bool   `firestore:"isOnline" json:"isOnline"`
	Description string `firestore:"description" json:"description,omitempty"`
	Branch      string `firestore:"branch" json:"branch,omitempty"`
}
