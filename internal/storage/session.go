package storage

import (
	"encoding/json"
	"errors"

	"hostelhelper/backend/internal/config"
	"hostelhelper/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SetCurrentStudent stores the session pointer in Redis. The record expires
// with the JWT so a stale token never resolves to a live session.
func (s *Service) SetCurrentStudent(student *models.Student) error {
	data, err := json.Marshal(student)
	if err != nil {
		return err
	}
	return s.Redis.Set(s.Ctx, sessionKeyPrefix+student.ID, data, config.SessionTTL).Err()
}

// GetCurrentStudent reads the session pointer. A missing key means "no
// session", not an error.
func (s *Service) GetCurrentStudent(studentID string) (*models.Student, error) {
	data, err := s.Redis.Get(s.Ctx, sessionKeyPrefix+studentID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var student models.Student
	if err := json.Unmarshal([]byte(data), &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// ClearCurrentStudent drops the session pointer only; the student record
// itself is retained.
func (s *Service) ClearCurrentStudent(studentID string) error {
	return s.Redis.Del(s.Ctx, sessionKeyPrefix+studentID).Err()
}

const analyticsKey = "analytics:snapshot"

// SaveAnalyticsSnapshot caches the admin dashboard snapshot.
func (s *Service) SaveAnalyticsSnapshot(data []byte) error {
	return s.Redis.Set(s.Ctx, analyticsKey, data, config.AnalyticsCacheTTL).Err()
}

// GetAnalyticsSnapshot returns the cached snapshot, or nil when it expired.
func (s *Service) GetAnalyticsSnapshot() ([]byte, error) {
	data, err := s.Redis.Get(s.Ctx, analyticsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
