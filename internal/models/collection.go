package models

import "time"

// Collection is the persistence row for one named record collection: the
// whole collection is stored as a single JSON array payload, replaced on
// every mutation. Version guards against incompatible payload layouts;
// readers fall back to an empty collection on mismatch.
type Collection struct {
	Name      string    `gorm:"primaryKey"`
	Version   int       `gorm:"not null"`
	Payload   string    `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
