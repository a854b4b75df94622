package models

type BibleStudy struct {
	Meta
	Title   string `firestore:"title" json:"title" validate:"required"`
	Passage string `firestore:"passage" json:"passage,omitempty"`
	Date    string `firestore:"date" json:"date,omitempty"`
	Branch  string `firestore:"branch" json:"branch,omitempty"`
	Notes   string `firestore:"notes" json:"notes,omitempty"`
}
