package models

// Attendee is a point-in-time snapshot of a member taken when a roster is
// submitted. Later edits to the member do not propagate here.
type Attendee struct {
	MemberID   string `firestore:"memberId" json:"memberId"`
	Name       string `firestore:"name" json:"name" validate:"required"`
	Department string `firestore:"department" json:"department,omitempty"`
	Position   string `firestore:"position" json:"position,omitempty"`
	Branch     string `firestore:"branch" json:"branch,omitempty"`
}

type AttendanceRecord struct {
	Meta
	Date      string     `firestore:"date" json:"date" validate:"required"`
	Branch    string     `firestore:"branch" json:"branch,omitempty"`
	Attendees []Attendee `firestore:"attendees" json:"attendees" validate:"dive"`
}
