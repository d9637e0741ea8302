package config

import "time"

const (
	// Session
	SessionTTL    = 72 * time.Hour
	TokenLifetime = 72 * time.Hour
	TokenIssuer   = "hostelhelper-service"

	// Triage (Gemini)
	TriageTemperature     = 0.7
	TriageMaxOutputTokens = 800
	TriageRequestTimeout  = 15 * time.Second
	DefaultGeminiModel    = "gemini-pro"
	GeminiBaseURL         = "https://generativelanguage.googleapis.com/v1"

	// Admin dashboard
	AnalyticsRefreshInterval = 60 * time.Second
	AnalyticsCacheTTL        = 5 * time.Minute
)

// DefaultSentiment is assumed for complaints that were never labelled.
const DefaultSentiment = "neutral"
