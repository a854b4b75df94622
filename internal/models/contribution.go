package models

// Contribution lives in the members/{id}/contributions subcollection.
type Contribution struct {
	Meta
	Amount float64 `firestore:"amount" json:"amount" validate:"required"`
	Note   string  `firestore:"note" json:"note,omitempty"`
	Date   string  `firestore:"date" json:"date,omitempty"`
}
