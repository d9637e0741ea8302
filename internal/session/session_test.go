package session_test

import (
	"testing"

	"hostelhelper/backend/internal/models"
	"hostelhelper/backend/internal/session"
	"hostelhelper/backend/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockStorage mocks only the storage methods the session provider touches;
// the embedded interface panics on anything unexpected.
type MockStorage struct {
	mock.Mock
	storage.Storage
}

func (m *MockStorage) SaveStudent(student *models.Student) error {
	return m.Called(student).Error(0)
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

const testSecret = "unit-test-secret"

// TestLoginCreatesFreshIdentity verifies every login mints a new student
// and a parsable token carrying its id.
func TestLoginCreatesFreshIdentity(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	provider := session.NewProvider(storageMock, testSecret)

	storageMock.On("SaveStudent", mock.AnythingOfType("*models.Student")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Student).ID = "student-1"
	}).Return(nil).Once()
	storageMock.On("SetCurrentStudent", mock.AnythingOfType("*models.Student")).Return(nil).Once()

	// Act
	student, token, err := provider.Login("asha@example.com", "Asha")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Asha", student.Name)
	assert.Equal(t, "asha@example.com", student.Email)
	assert.False(t, student.IsAdmin)

	studentID, isAdmin, err := provider.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "student-1", studentID)
	assert.False(t, isAdmin)
	storageMock.AssertExpectations(t)
}

// TestLoginTwiceYieldsTwoIdentities verifies re-login with the same email
// does not reuse the earlier record.
func TestLoginTwiceYieldsTwoIdentities(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	provider := session.NewProvider(storageMock, testSecret)

	var saved []*models.Student
	storageMock.On("SaveStudent", mock.AnythingOfType("*models.Student")).Run(func(args mock.Arguments) {
		s := args.Get(0).(*models.Student)
		s.ID = uuid.New().String()
		saved = append(saved, s)
	}).Return(nil).Twice()
	storageMock.On("SetCurrentStudent", mock.AnythingOfType("*models.Student")).Return(nil).Twice()

	// Act
	first, _, err1 := provider.Login("asha@example.com", "Asha")
	second, _, err2 := provider.Login("asha@example.com", "Asha")

	// Assert
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Len(t, saved, 2)
	assert.NotEqual(t, first.ID, second.ID)
}

// TestLoginRequiresEmailAndName verifies validation precedes persistence.
func TestLoginRequiresEmailAndName(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	provider := session.NewProvider(storageMock, testSecret)

	// Act
	_, _, err := provider.Login("", "Asha")

	// Assert
	assert.Error(t, err)
	storageMock.AssertNotCalled(t, "SaveStudent", mock.Anything)
}

// TestCurrentNoSession verifies a cleared pointer surfaces ErrNoSession.
func TestCurrentNoSession(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	provider := session.NewProvider(storageMock, testSecret)
	storageMock.On("GetCurrentStudent", "student-1").Return(nil, nil).Once()

	// Act
	_, err := provider.Current("student-1")

	// Assert
	assert.ErrorIs(t, err, session.ErrNoSession)
}

// TestUpdateProfileMergesNonEmptyFields verifies empty patch fields leave
// the record untouched while set ones overwrite.
func TestUpdateProfileMergesNonEmptyFields(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	provider := session.NewProvider(storageMock, testSecret)

	current := &models.Student{ID: "student-1", Name: "Asha", Email: "asha@example.com", RoomNumber: "101"}
	storageMock.On("GetCurrentStudent", "student-1").Return(current, nil).Once()
	storageMock.On("SaveStudent", current).Return(nil).Once()
	storageMock.On("SetCurrentStudent", current).Return(nil).Once()

	// Act
	updated, err := provider.UpdateProfile("student-1", session.ProfilePatch{
		RoomNumber:  "204",
		HostelBlock: "B",
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Asha", updated.Name, "unset fields stay as they were")
	assert.Equal(t, "204", updated.RoomNumber)
	assert.Equal(t, "B", updated.HostelBlock)
	storageMock.AssertExpectations(t)
}

// TestLogoutClearsPointerOnly verifies logout touches the session pointer
// and nothing else.
func TestLogoutClearsPointerOnly(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	provider := session.NewProvider(storageMock, testSecret)
	storageMock.On("ClearCurrentStudent", "student-1").Return(nil).Once()

	// Act
	err := provider.Logout("student-1")

	// Assert
	assert.NoError(t, err)
	storageMock.AssertExpectations(t)
	storageMock.AssertNotCalled(t, "SaveStudent", mock.Anything)
}

// TestParseTokenRejectsWrongSecret verifies tokens signed elsewhere fail.
func TestParseTokenRejectsWrongSecret(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	issuer := session.NewProvider(storageMock, "other-secret")
	verifier := session.NewProvider(storageMock, testSecret)

	storageMock.On("SaveStudent", mock.AnythingOfType("*models.Student")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Student).ID = "student-1"
	}).Return(nil).Once()
	storageMock.On("SetCurrentStudent", mock.AnythingOfType("*models.Student")).Return(nil).Once()

	_, token, err := issuer.Login("asha@example.com", "Asha")
	assert.NoError(t, err)

	// Act
	_, _, err = verifier.ParseToken(token)

	// Assert
	assert.Error(t, err)
}
