// Package analysis derives triage metadata for freshly filed complaints.
// It assigns the initial priority from the category weight and the
// escalation flag; admins can override the result later.
package analysis

import "hostelhelper/backend/internal/config"

// GetWeight returns the urgency weight for a given complaint category.
// It returns 0 if the category is not recognized.
func GetWeight(category string) int {
	return config.CategoryWeights[category]
}

// PriorityFor picks the initial priority for a new complaint. Escalated
// complaints are always high priority.
func PriorityFor(category string, isEscalation bool) string {
	if isEscalation {
		return config.PriorityHigh
	}
	if GetWeight(category) >= 2 {
		return config.PriorityMedium
	}
	return config.PriorityLow
}
