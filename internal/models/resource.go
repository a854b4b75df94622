package models

type Resource struct {
	Meta
	Title   string `firestore:"title" json:"title" validate:"required"`
	Type    string `firestore:"type" json:"type" validate:"required,oneof=pdf audio"`
	FileURL string `firestore:"fileUrl" json:"fileUrl" validate:"required,url"`
	Size    int64  `firestore:"size" json:"size,omitempty"`
}
