package models

import (
	"time"
)

// Meta carries the fields shared by every stored record: the Firestore
// document id (never persisted inside the document itself) and the
// creation timestamp.
type Meta struct {
	ID        string    `firestore:"-" json:"id"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

func (m *Meta) SetID(id string) { m.ID = id }

func (m *Meta) CreatedTime() time.Time { return m.CreatedAt }

func (m *Meta) SetCreatedTime(t time.Time) { m.CreatedAt = t }
