// Package complaint implements the ticket and escalation lifecycles:
// creation through the chat flow, status updates, and the propagation of
// escalation status onto the parent complaint.
package complaint

import (
	"fmt"
	"log"

	"hostelhelper/backend/internal/analysis"
	"hostelhelper/backend/internal/models"
	"hostelhelper/backend/internal/storage"
)

// Notifier is told about new escalations. Implementations must not block
// the complaint flow; failures are theirs to swallow.
type Notifier interface {
	EscalationCreated(escalation *models.Escalation)
}

// StatusPublisher is told whenever a ticket's status changes, so live
// clients can be updated. Like Notifier, it must not block or fail the
// update itself.
type StatusPublisher interface {
	ComplaintStatusChanged(ticketID, studentID, status, resolution string)
}

// Service handles the business logic for complaints and escalations.
type Service struct {
	Storage   storage.Storage
	Notifier  Notifier
	Publisher StatusPublisher
}

// NewService creates a new complaint service. notifier may be nil.
func NewService(s storage.Storage, notifier Notifier) *Service {
	return &Service{Storage: s, Notifier: notifier}
}

// CreateComplaint persists a new ticket in status "new" and returns its id.
// When isEscalation is set, a companion escalation is persisted in status
// "pending" carrying the same suggested solution, at most one per ticket.
// A known owner gets the ticket id appended to their complaint list.
func (s *Service) CreateComplaint(category, description, ownerID string, isEscalation bool, suggestedSolution string) (string, error) {
	if description == "" {
		return "", fmt.Errorf("complaint description is required")
	}
	if category == "" {
		category = models.CategoryOther
	}

	complaint := &models.Complaint{
		Category:          category,
		Description:       description,
		StudentID:         ownerID,
		IsEscalation:      isEscalation,
		SuggestedSolution: suggestedSolution,
		Priority:          analysis.PriorityFor(category, isEscalation),
	}
	if err := s.Storage.SaveComplaint(complaint); err != nil {
		return "", err
	}

	if ownerID != "" {
		if err := s.appendToOwner(ownerID, complaint.ID); err != nil {
			// The ticket exists; a stale owner list is recoverable.
			log.Printf("WARNING: ticket %s created but owner list not updated: %v", complaint.ID, err)
		}
	}

	if isEscalation {
		if err := s.createEscalation(complaint, suggestedSolution); err != nil {
			return "", err
		}
	}

	return complaint.ID, nil
}

func (s *Service) appendToOwner(ownerID, ticketID string) error {
	student, err := s.Storage.GetStudentByID(ownerID)
	if err != nil {
		return err
	}
	if student == nil {
		return fmt.Errorf("unknown student %s", ownerID)
	}
	student.Complaints = append(student.Complaints, ticketID)
	return s.Storage.SaveStudent(student)
}

func (s *Service) createEscalation(complaint *models.Complaint, suggestedSolution string) error {
	existing, err := s.Storage.GetEscalationByComplaintID(complaint.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		// One escalation per complaint, ever.
		return nil
	}

	escalation := &models.Escalation{
		ComplaintID:       complaint.ID,
		StudentID:         complaint.StudentID,
		Description:       complaint.Description,
		SuggestedSolution: suggestedSolution,
	}
	if err := s.Storage.SaveEscalation(escalation); err != nil {
		return err
	}

	if s.Notifier != nil {
		s.Notifier.EscalationCreated(escalation)
	}
	return nil
}

// UpdateComplaintStatus overwrites a ticket's status and optional resolution
// text. Unknown ids report false, never an error.
func (s *Service) UpdateComplaintStatus(ticketID, status, resolution string) (bool, error) {
	ok, err := s.Storage.UpdateComplaintStatus(ticketID, status, resolution)
	if err != nil || !ok {
		return ok, err
	}
	s.publishStatus(ticketID, status, resolution)
	return true, nil
}

// publishStatus pushes a status change to live clients. Best effort.
func (s *Service) publishStatus(ticketID, status, resolution string) {
	if s.Publisher == nil {
		return
	}
	complaint, err := s.Storage.GetComplaintByID(ticketID)
	if err != nil || complaint == nil || complaint.StudentID == "" {
		return
	}
	s.Publisher.ComplaintStatusChanged(ticketID, complaint.StudentID, status, resolution)
}

// ComplaintStatusFor maps an escalation status onto the parent complaint's
// status: acknowledged and in-review mean the complaint is being worked,
// resolved resolves it, anything else leaves it new.
func ComplaintStatusFor(escalationStatus string) string {
	switch escalationStatus {
	case models.EscalationStatusAcknowledged, models.EscalationStatusInReview:
		return models.ComplaintStatusInProgress
	case models.EscalationStatusResolved:
		return models.ComplaintStatusResolved
	default:
		return models.ComplaintStatusNew
	}
}

// UpdateEscalationStatus updates an escalation and then propagates the
// mapped status to its complaint, with the admin response doubling as the
// resolution text. The two writes hit independent tables; the escalation
// update is the one that decides the boolean outcome.
func (s *Service) UpdateEscalationStatus(escalationID, status, adminResponse string) (bool, error) {
	ok, err := s.Storage.UpdateEscalationStatus(escalationID, status, adminResponse)
	if err != nil || !ok {
		return ok, err
	}

	escalation, err := s.Storage.GetEscalationByID(escalationID)
	if err != nil {
		return true, err
	}
	if escalation == nil {
		return true, nil
	}

	mapped := ComplaintStatusFor(status)
	if _, err := s.Storage.UpdateComplaintStatus(escalation.ComplaintID, mapped, adminResponse); err != nil {
		log.Printf("ERROR: escalation %s updated but complaint %s not propagated: %v", escalationID, escalation.ComplaintID, err)
		return true, err
	}
	s.publishStatus(escalation.ComplaintID, mapped, adminResponse)
	return true, nil
}
