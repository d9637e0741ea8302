package models

import (
	"math/rand"
	"strings"
)

const (
	ticketPrefix     = "TICKET-"
	escalationPrefix = "ESCALATION-"

	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	idLength   = 7
)

func randomSuffix() string {
	var b strings.Builder
	b.Grow(idLength)
	for i := 0; i < idLength; i++ {
		b.WriteByte(idAlphabet[rand.Intn(len(idAlphabet))])
	}
	return b.String()
}

// NewTicketID returns a fresh complaint id of the form TICKET-XXXXXXX.
// Ids are opaque strings to every other component.
func NewTicketID() string {
	return ticketPrefix + randomSuffix()
}

// NewEscalationID returns a fresh escalation id of the form ESCALATION-XXXXXXX.
func NewEscalationID() string {
	return escalationPrefix + randomSuffix()
}
