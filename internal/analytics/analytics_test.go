package analytics_test

import (
	"encoding/json"
	"testing"

	"hostelhelper/backend/internal/analytics"
	"hostelhelper/backend/internal/models"
	"hostelhelper/backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockStorage mocks only the storage methods the analytics service touches;
// the embedded interface panics on anything unexpected.
type MockStorage struct {
	mock.Mock
	storage.Storage
}

func (m *MockStorage) ListComplaints() ([]models.Complaint, error) {
	args := m.Called()
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) ListEscalations() ([]models.Escalation, error) {
	args := m.Called()
	return args.Get(0).([]models.Escalation), args.Error(1)
}

func (m *MockStorage) SaveAnalyticsSnapshot(data []byte) error {
	return m.Called(data).Error(0)
}

func (m *MockStorage) GetAnalyticsSnapshot() ([]byte, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// TestCompute verifies the per-status, per-category and per-sentiment
// tallies, with missing sentiment counted as neutral.
func TestCompute(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	svc := analytics.NewService(storageMock)

	complaints := []models.Complaint{
		{ID: "TICKET-AAAAAA1", Status: models.ComplaintStatusNew, Category: models.CategoryHostel, Sentiment: "negative"},
		{ID: "TICKET-AAAAAA2", Status: models.ComplaintStatusNew, Category: models.CategoryMess},
		{ID: "TICKET-AAAAAA3", Status: models.ComplaintStatusResolved, Category: models.CategoryHostel},
	}
	escalations := []models.Escalation{
		{ID: "ESCALATION-XYZ0001", Status: models.EscalationStatusPending},
		{ID: "ESCALATION-XYZ0002", Status: models.EscalationStatusResolved},
	}
	storageMock.On("ListComplaints").Return(complaints, nil).Once()
	storageMock.On("ListEscalations").Return(escalations, nil).Once()

	// Act
	snap, err := svc.Compute()

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 3, snap.TotalComplaints)
	assert.Equal(t, 2, snap.ByStatus[models.ComplaintStatusNew])
	assert.Equal(t, 1, snap.ByStatus[models.ComplaintStatusResolved])
	assert.Equal(t, 2, snap.ByCategory[models.CategoryHostel])
	assert.Equal(t, 1, snap.BySentiment["negative"])
	assert.Equal(t, 2, snap.BySentiment["neutral"], "missing sentiment defaults to neutral")
	assert.Equal(t, 1, snap.OpenEscalations)
	assert.Equal(t, 2, snap.TotalEscalations)
}

// TestCurrentUsesCache verifies a warm cache short-circuits recomputation.
func TestCurrentUsesCache(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	svc := analytics.NewService(storageMock)

	cached, _ := json.Marshal(analytics.Snapshot{TotalComplaints: 42})
	storageMock.On("GetAnalyticsSnapshot").Return(cached, nil).Once()

	// Act
	snap, err := svc.Current()

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 42, snap.TotalComplaints)
	storageMock.AssertNotCalled(t, "ListComplaints")
}

// TestCurrentColdCacheRecomputes verifies an expired cache triggers a full
// recompute and a fresh write-back.
func TestCurrentColdCacheRecomputes(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	svc := analytics.NewService(storageMock)

	storageMock.On("GetAnalyticsSnapshot").Return(nil, nil).Once()
	storageMock.On("ListComplaints").Return([]models.Complaint{}, nil).Once()
	storageMock.On("ListEscalations").Return([]models.Escalation{}, nil).Once()
	storageMock.On("SaveAnalyticsSnapshot", mock.AnythingOfType("[]uint8")).Return(nil).Once()

	// Act
	snap, err := svc.Current()

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 0, snap.TotalComplaints)
	storageMock.AssertExpectations(t)
}
