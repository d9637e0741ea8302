package storage

import (
	"context"
	"errors"
	"log"

	"hostelhelper/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Storage interface {
	SaveStudent(student *models.Student) error
	GetStudentByID(id string) (*models.Student, error)
	ListStudents() ([]models.Student, error)
	FindAdmin() (*models.Student, error)

	SaveComplaint(complaint *models.Complaint) error
	GetComplaintByID(id string) (*models.Complaint, error)
	ListComplaints() ([]models.Complaint, error)
	GetStudentComplaints(studentID string) ([]models.Complaint, error)
	UpdateComplaintStatus(id, status, resolution string) (bool, error)
	UpdateComplaintFields(id string, changes map[string]interface{}) (bool, error)

	SaveEscalation(escalation *models.Escalation) error
	GetEscalationByID(id string) (*models.Escalation, error)
	GetEscalationByComplaintID(complaintID string) (*models.Escalation, error)
	ListEscalations() ([]models.Escalation, error)
	UpdateEscalationStatus(id, status, adminResponse string) (bool, error)

	ListFAQs() ([]models.FAQ, error)
	SeedFAQs(faqs []models.FAQ) error

	SetCurrentStudent(student *models.Student) error
	GetCurrentStudent(studentID string) (*models.Student, error)
	ClearCurrentStudent(studentID string) error

	SaveAnalyticsSnapshot(data []byte) error
	GetAnalyticsSnapshot() ([]byte, error)
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// SaveStudent upserts a student record in PostgreSQL.
func (s *Service) SaveStudent(student *models.Student) error {
	return s.DB.Save(student).Error
}

// GetStudentByID returns the student or nil when the id is unknown.
func (s *Service) GetStudentByID(id string) (*models.Student, error) {
	var student models.Student
	err := s.DB.First(&student, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// ListStudents returns every student. An empty table yields an empty slice.
func (s *Service) ListStudents() ([]models.Student, error) {
	var students []models.Student
	if err := s.DB.Find(&students).Error; err != nil {
		log.Printf("ERROR: Failed to list students: %v", err)
		return nil, err
	}
	return students, nil
}

// FindAdmin returns the first student flagged as an admin, or nil.
func (s *Service) FindAdmin() (*models.Student, error) {
	var student models.Student
	err := s.DB.Where("is_admin = ?", true).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// SaveComplaint upserts a complaint. The BeforeCreate hook fills in the
// ticket id, the "new" status and the timestamp on first save.
func (s *Service) SaveComplaint(complaint *models.Complaint) error {
	if err := s.DB.Save(complaint).Error; err != nil {
		log.Printf("ERROR: Failed to save complaint %s: %v", complaint.ID, err)
		return err
	}
	return nil
}

// GetComplaintByID returns the complaint or nil when the ticket is unknown.
func (s *Service) GetComplaintByID(id string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.First(&complaint, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// ListComplaints returns every complaint, newest first.
func (s *Service) ListComplaints() ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.DB.Order("timestamp desc").Find(&complaints).Error; err != nil {
		log.Printf("ERROR: Failed to list complaints: %v", err)
		return nil, err
	}
	return complaints, nil
}

// GetStudentComplaints returns the complaints owned by one student.
func (s *Service) GetStudentComplaints(studentID string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.Where("student_id = ?", studentID).
		Order("timestamp desc").
		Find(&complaints).Error
	if err != nil {
		log.Printf("ERROR: Failed to list complaints for student %s: %v", studentID, err)
		return nil, err
	}
	return complaints, nil
}

// UpdateComplaintStatus overwrites the status and, when resolution text is
// supplied, the resolution. Returns false (not an error) for unknown ids.
func (s *Service) UpdateComplaintStatus(id, status, resolution string) (bool, error) {
	changes := map[string]interface{}{"status": status}
	if resolution != "" {
		changes["resolution"] = resolution
	}
	res := s.DB.Model(&models.Complaint{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		log.Printf("ERROR: Failed to update complaint %s: %v", id, res.Error)
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdateComplaintFields applies an arbitrary partial update (admin notes,
// priority, sentiment). Returns false for unknown ids.
func (s *Service) UpdateComplaintFields(id string, changes map[string]interface{}) (bool, error) {
	if len(changes) == 0 {
		return false, errors.New("no changes supplied")
	}
	res := s.DB.Model(&models.Complaint{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SaveEscalation upserts an escalation. The unique index on complaint_id
// rejects a second escalation for the same ticket.
func (s *Service) SaveEscalation(escalation *models.Escalation) error {
	if err := s.DB.Save(escalation).Error; err != nil {
		log.Printf("ERROR: Failed to save escalation for complaint %s: %v", escalation.ComplaintID, err)
		return err
	}
	return nil
}

// GetEscalationByID returns the escalation or nil when the id is unknown.
func (s *Service) GetEscalationByID(id string) (*models.Escalation, error) {
	var escalation models.Escalation
	err := s.DB.First(&escalation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &escalation, nil
}

// GetEscalationByComplaintID returns the escalation referencing a ticket,
// or nil when the ticket was never escalated.
func (s *Service) GetEscalationByComplaintID(complaintID string) (*models.Escalation, error) {
	var escalation models.Escalation
	err := s.DB.Where("complaint_id = ?", complaintID).First(&escalation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &escalation, nil
}

// ListEscalations returns every escalation, newest first.
func (s *Service) ListEscalations() ([]models.Escalation, error) {
	var escalations []models.Escalation
	if err := s.DB.Order("timestamp desc").Find(&escalations).Error; err != nil {
		log.Printf("ERROR: Failed to list escalations: %v", err)
		return nil, err
	}
	return escalations, nil
}

// UpdateEscalationStatus mirrors UpdateComplaintStatus for escalations.
// Propagating the matching complaint status is the caller's job.
func (s *Service) UpdateEscalationStatus(id, status, adminResponse string) (bool, error) {
	changes := map[string]interface{}{"status": status}
	if adminResponse != "" {
		changes["admin_response"] = adminResponse
	}
	res := s.DB.Model(&models.Escalation{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		log.Printf("ERROR: Failed to update escalation %s: %v", id, res.Error)
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListFAQs returns the FAQ catalogue.
func (s *Service) ListFAQs() ([]models.FAQ, error) {
	var faqs []models.FAQ
	if err := s.DB.Order("id asc").Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

// SeedFAQs inserts the built-in FAQ catalogue, leaving existing rows alone.
func (s *Service) SeedFAQs(faqs []models.FAQ) error {
	for i := range faqs {
		faq := faqs[i]
		if err := s.DB.Where("id = ?", faq.ID).FirstOrCreate(&faq).Error; err != nil {
			log.Printf("ERROR: Failed to seed FAQ %s: %v", faq.ID, err)
			return err
		}
	}
	return nil
}
