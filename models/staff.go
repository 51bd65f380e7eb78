package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff logs in with staff_code + staff_category. staff_code is not
// globally unique in the schema; the pair is only practically
// distinguishing within a business.
type Staff struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessOwnerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"business_owner_id"`
	BusinessID       uuid.UUID `gorm:"type:uuid;not null;index" json:"business_id"`
	StaffName        string    `gorm:"not null" json:"staff_name"`
	StaffDesignation string    `gorm:"not null" json:"staff_designation"`
	StaffCode        string    `gorm:"not null;index" json:"staff_code"`
	StaffCategory    string    `gorm:"not null" json:"staff_category"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	StaffImage       string    `json:"staff_image,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
