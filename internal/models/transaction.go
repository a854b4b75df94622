package models

const (
	TransactionContribution = "contribution"
	TransactionExpense      = "expense"
)

type Transaction struct {
	Meta
	Amount      float64 `firestore:"amount" json:"amount" validate:"required"`
	Description string  `firestore:"description" json:"description,omitempty"`
	Type        string  `firestore:"type" json:"type" validate:"required,oneof=contribution expense"`
	Category    string  `firestore:"category" json:"category,omitempty"`
	Branch      string  `firestore:"branch" json:"branch,omitempty"`
	Date        string  `firestore:"date" json:"date" validate:"required"`
}
