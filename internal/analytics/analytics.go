// Package analytics builds the admin dashboard numbers. A background
// refresher recomputes a snapshot on a fixed interval and caches it so the
// dashboard endpoint never fans out over the whole complaints table on
// every request.
package analytics

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"hostelhelper/backend/internal/config"
	"hostelhelper/backend/internal/models"
	"hostelhelper/backend/internal/storage"
)

// Snapshot is the aggregated view the admin dashboard renders.
type Snapshot struct {
	GeneratedAt      time.Time      `json:"generatedAt"`
	TotalComplaints  int            `json:"totalComplaints"`
	ByStatus         map[string]int `json:"byStatus"`
	ByCategory       map[string]int `json:"byCategory"`
	BySentiment      map[string]int `json:"bySentiment"`
	OpenEscalations  int            `json:"openEscalations"`
	TotalEscalations int            `json:"totalEscalations"`
}

// Service computes and caches snapshots.
type Service struct {
	Storage storage.Storage
}

func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Compute builds a snapshot directly from the record store.
func (s *Service) Compute() (*Snapshot, error) {
	complaints, err := s.Storage.ListComplaints()
	if err != nil {
		return nil, err
	}
	escalations, err := s.Storage.ListEscalations()
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		GeneratedAt:      time.Now(),
		TotalComplaints:  len(complaints),
		ByStatus:         map[string]int{},
		ByCategory:       map[string]int{},
		BySentiment:      map[string]int{},
		TotalEscalations: len(escalations),
	}

	for _, c := range complaints {
		snap.ByStatus[c.Status]++
		snap.ByCategory[c.Category]++
		sentiment := c.Sentiment
		if sentiment == "" {
			sentiment = config.DefaultSentiment
		}
		snap.BySentiment[sentiment]++
	}
	for _, e := range escalations {
		if e.Status != models.EscalationStatusResolved {
			snap.OpenEscalations++
		}
	}
	return snap, nil
}

// Current returns the cached snapshot, recomputing (and re-caching) when
// the cache is cold.
func (s *Service) Current() (*Snapshot, error) {
	data, err := s.Storage.GetAnalyticsSnapshot()
	if err != nil {
		log.Printf("ERROR: reading analytics cache: %v", err)
	}
	if data != nil {
		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err == nil {
			return &snap, nil
		}
		log.Printf("ERROR: stale analytics cache is not valid JSON, recomputing")
	}
	return s.refresh()
}

func (s *Service) refresh() (*Snapshot, error) {
	snap, err := s.Compute()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	if err := s.Storage.SaveAnalyticsSnapshot(data); err != nil {
		log.Printf("ERROR: caching analytics snapshot: %v", err)
	}
	return snap, nil
}

// Run refreshes the snapshot on the dashboard interval until ctx is done.
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(config.AnalyticsRefreshInterval)
	defer ticker.Stop()

	if _, err := s.refresh(); err != nil {
		log.Printf("ERROR: initial analytics refresh: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.refresh(); err != nil {
				log.Printf("ERROR: analytics refresh: %v", err)
			}
		}
	}
}
