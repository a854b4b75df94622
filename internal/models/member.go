package models

const (
	StatusActive       = "active"
	StatusInactive     = "inactive"
	StatusDiscontinued = "discontinued"
)

type Member struct {
	Meta
	Name           string `firestore:"name" json:"name" validate:"required"`
	Email          string `firestore:"email" json:"email,omitempty" validate:"omitempty,email"`
	Phone          string `firestore:"phone" json:"phone,omitempty"`
	Address        string `firestore:"address" json:"address,omitempty"`
	DateOfBirth    string `firestore:"dateOfBirth" json:"dateOfBirth,omitempty"`
	Branch         string `firestore:"branch" json:"branch,omitempty"`
	Department     string `firestore:"department" json:"department,omitempty"`
	Position       string `firestore:"position" json:"position,omitempty"`
	MembershipType string `firestore:"membershipType" json:"membershipType,omitempty"`
	Status         string `firestore:"status" json:"status,omitempty" validate:"omitempty,oneof=active inactive discontinued"`
}
