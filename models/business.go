package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Business struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessOwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"business_owner_id"`
	BusinessName      string    `gorm:"not null" json:"business_name"`
	BusinessCategory  string    `gorm:"not null" json:"business_category"`
	NumberOfEmployees int       `gorm:"not null" json:"number_of_employees"`
	Logo              string    `gorm:"not null" json:"logo"`
	License           string    `gorm:"not null" json:"license"`
	Location          string    `gorm:"not null" json:"location"` // free text, e.g. "lat, lon"
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
