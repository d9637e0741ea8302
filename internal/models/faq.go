package models

import "github.com/lib/pq"

// FAQ is a frequently asked question the assistant can answer without
// involving the triage service. Keywords drive the classifier's fallback
// matching when the message is not an exact question.
type FAQ struct {
	ID       string         `gorm:"primaryKey" json:"id"`
	Question string         `gorm:"type:text;not null" json:"question"`
	Answer   string         `gorm:"type:text;not null" json:"answer"`
	Keywords pq.StringArray `gorm:"type:text[]" json:"keywords"`
}
