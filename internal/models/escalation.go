package models

import (
	"time"

	"gorm.io/gorm"
)

// Escalation statuses. Any forward or lateral transition is permitted.
const (
	EscalationStatusPending      = "pending"
	EscalationStatusAcknowledged = "acknowledged"
	EscalationStatusInReview     = "in-review"
	EscalationStatusResolved     = "resolved"
)

// Escalation is an administrative follow-up record for a complaint that
// needs urgent handling. At most one escalation exists per complaint; the
// unique index on ComplaintID enforces that at the database level.
type Escalation struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	ComplaintID       string    `gorm:"uniqueIndex;not null" json:"complaintId"`
	StudentID         string    `gorm:"index" json:"studentId"`
	Timestamp         time.Time `json:"timestamp"`
	Description       string    `gorm:"type:text;not null" json:"description"`
	Status            string    `gorm:"type:varchar(16);not null;index" json:"status"`
	SuggestedSolution string    `gorm:"type:text" json:"suggestedSolution,omitempty"`
	AdminResponse     string    `gorm:"type:text" json:"adminResponse,omitempty"`
}

// BeforeCreate assigns the escalation id and defaults when unset.
func (e *Escalation) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = NewEscalationID()
	}
	if e.Status == "" {
		e.Status = EscalationStatusPending
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	return
}
