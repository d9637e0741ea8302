package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Student represents a hostel resident (or an administrator) in the system.
// Identity is created anew on every login; there is no password and no
// uniqueness constraint on email.
type Student struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:text;not null" json:"name"`
	Email       string `gorm:"type:text;not null;index" json:"email"`
	RoomNumber  string `json:"roomNumber,omitempty"`
	HostelBlock string `json:"hostelBlock,omitempty"`
	// Complaints holds the ids of tickets owned by this student, append-only.
	Complaints pq.StringArray `gorm:"type:text[]" json:"complaints"`
	IsAdmin    bool           `json:"isAdmin,omitempty"`
}

// BeforeCreate is a GORM hook that assigns a UUID when the ID is not set.
func (s *Student) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
