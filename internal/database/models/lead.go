package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead represents a prospective customer record. The id is an opaque string
// assigned at seed time and never reused; leads are only ever partially
// updated (email, status), never deleted.
type Lead struct {
	ID        string     `json:"id" gorm:"primaryKey;size:40"`
	Name      string     `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Company   string     `json:"company" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email     string     `json:"email" gorm:"size:120;not null" validate:"required,email"`
	Source    string     `json:"source" gorm:"size:40"`
	Score     int        `json:"score" gorm:"not null;default:0" validate:"min=0,max=100"`
	Status    LeadStatus `json:"status" gorm:"size:20;not null;default:'New'"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

// BeforeCreate assigns an id if the seed data did not provide one
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
