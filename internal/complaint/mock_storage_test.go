package complaint_test

import (
	"hostelhelper/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a testify mock of the storage.Storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveStudent(student *models.Student) error {
	return m.Called(student).Error(0)
}

func (m *MockStorage) GetStudentByID(id string) (*models.Student, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStorage) ListStudents() ([]models.Student, error) {
	args := m.Called()
	return args.Get(0).([]models.Student), args.Error(1)
}

func (m *MockStorage) FindAdmin() (*models.Student, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStorage) SaveComplaint(complaint *models.Complaint) error {
	return m.Called(complaint).Error(0)
}

func (m *MockStorage) GetComplaintByID(id string) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStorage) ListComplaints() ([]models.Complaint, error) {
	args := m.Called()
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) GetStudentComplaints(studentID string) ([]models.Complaint, error) {
	args := m.Called(studentID)
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) UpdateComplaintStatus(id, status, resolution string) (bool, error) {
	args := m.Called(id, status, resolution)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) UpdateComplaintFields(id string, changes map[string]interface{}) (bool, error) {
	args := m.Called(id, changes)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) SaveEscalation(escalation *models.Escalation) error {
	return m.Called(escalation).Error(0)
}

func (m *MockStorage) GetEscalationByID(id string) (*models.Escalation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Escalation), args.Error(1)
}

func (m *MockStorage) GetEscalationByComplaintID(complaintID string) (*models.Escalation, error) {
	args := m.Called(complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Escalation), args.Error(1)
}

func (m *MockStorage) ListEscalations() ([]models.Escalation, error) {
	args := m.Called()
	return args.Get(0).([]models.Escalation), args.Error(1)
}

func (m *MockStorage) UpdateEscalationStatus(id, status, adminResponse string) (bool, error) {
	args := m.Called(id, status, adminResponse)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) ListFAQs() ([]models.FAQ, error) {
	args := m.Called()
	return args.Get(0).([]models.FAQ), args.Error(1)
}

func (m *MockStorage) SeedFAQs(faqs []models.FAQ) error {
	return m.Called(faqs).Error(0)
}

func (m *MockStorage) SetCurrentStudent(student *models.Student) error {
	return m.Called(student).Error(0)
}

func (m *MockStorage) GetCurrentStudent(studentID string) (*models.Student, error) {
	args := m.Called(studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStorage) ClearCurrentStudent(studentID string) error {
	return m.Called(studentID).Error(0)
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
