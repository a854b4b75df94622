package models

type Target struct {
	Meta
	Name        string `firestore:"name" json:"name" validate:"required"`
	Description string `firestore:"description" json:"description,omitempty"`
	DueDate     string `firestore:"dueDate" json:"dueDate,omitempty"`
	Branch      string `firestore:"branch" json:"branch,omitempty"`
	Completed   bool   `firestore:"completed" json:"completed"`
}
