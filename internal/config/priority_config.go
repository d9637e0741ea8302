package config

import "hostelhelper/backend/internal/models"

// Priority levels assigned to complaints at creation time. Admins can
// override them afterwards.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// CategoryWeights rank how urgent a category is by default. Unlisted
// categories weigh 0.
var CategoryWeights = map[string]int{
	models.CategoryHostel: 2,
	models.CategoryMess:   2,
	models.CategoryOther:  1,
}
