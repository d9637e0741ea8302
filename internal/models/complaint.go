package models

import (
	"time"

	"gorm.io/gorm"
)

// Complaint categories as reported through the chat flow.
const (
	CategoryHostel = "hostel"
	CategoryMess   = "mess"
	CategoryOther  = "other"
)

// Complaint statuses. Normal operation moves forward
// (new -> in-progress -> resolved) but transitions are not enforced.
const (
	ComplaintStatusNew        = "new"
	ComplaintStatusInProgress = "in-progress"
	ComplaintStatusResolved   = "resolved"
)

// Complaint is a reported issue, user-visible as a ticket.
type Complaint struct {
	// ID is the ticket number (TICKET-XXXXXXX), immutable once assigned.
	ID          string    `gorm:"primaryKey" json:"id"`
	Category    string    `gorm:"type:varchar(16);not null;index" json:"category"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `gorm:"type:varchar(16);not null;index" json:"status"`
	Resolution  string    `gorm:"type:text" json:"resolution,omitempty"`
	StudentID   string    `gorm:"index" json:"studentId,omitempty"`
	// IsEscalation marks complaints that spawned an escalation record.
	IsEscalation      bool   `json:"isEscalation,omitempty"`
	SuggestedSolution string `gorm:"type:text" json:"suggestedSolution,omitempty"`
	AdminNotes        string `gorm:"type:text" json:"adminNotes,omitempty"`
	Sentiment         string `gorm:"type:varchar(16)" json:"sentiment,omitempty"`
	Priority          string `gorm:"type:varchar(16)" json:"priority,omitempty"`
}

// BeforeCreate assigns the ticket id and defaults when unset.
func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = NewTicketID()
	}
	if c.Status == "" {
		c.Status = ComplaintStatusNew
	}
	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now()
	}
	return
}
