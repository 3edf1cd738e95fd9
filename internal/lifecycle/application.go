package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/model"
)

// CreateApplication records a candidate's submission to a job. The email is
// lowercased before storing, so re-application with any casing of the same
// address hits the duplicate guard. The unique index backs the pre-check up
// under concurrency.
func (s *Service) CreateApplication(ctx context.Context, jobID uint, email, name string, candidateID *uuid.UUID) (model.Application, error) {
	return s.createApplication(ctx, jobID, email, name, candidateID, model.ApplicationStatusPending)
}

// InjectApplication is the admin entry point that bypasses self-application:
// the created application starts at injected_by_admin instead of pending.
func (s *Service) InjectApplication(ctx context.Context, jobID uint, email, name string, candidateID *uuid.UUID) (model.Application, error) {
	return s.createApplication(ctx, jobID, email, name, candidateID, model.ApplicationStatusInjected)
}

func (s *Service) createApplication(ctx context.Context, jobID uint, email, name string, candidateID *uuid.UUID, status string) (model.Application, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if jobID == 0 || email == "" {
		return model.Application{}, fmt.Errorf("%w: job id and candidate email are required", ErrValidation)
	}

	var job model.Job
	if err := s.DB.WithContext(ctx).First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Application{}, fmt.Errorf("%w: job %d", ErrNotFound, jobID)
		}
		return model.Application{}, storage(err)
	}

	var existing model.Application
	err := s.DB.WithContext(ctx).
		Where("job_id = ? AND candidate_email = ?", jobID, email).
		First(&existing).Error
	if err == nil {
		return model.Application{}, fmt.Errorf("%w: %s already applied to job %d", ErrDuplicateApplication, email, jobID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Application{}, storage(err)
	}

	application := model.Application{
		JobID:          jobID,
		CandidateEmail: email,
		CandidateName:  name,
		CandidateID:    candidateID,
		Status:         status,
	}
	if err := s.DB.WithContext(ctx).Create(&application).Error; err != nil {
		// Concurrent duplicate slips past the pre-check and lands on the
		// unique index instead.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.Application{}, fmt.Errorf("%w: %s already applied to job %d", ErrDuplicateApplication, email, jobID)
		}
		return model.Application{}, storage(err)
	}

	s.emit(ctx, job.CompanyID, model.NotificationApplicationReceived,
		fmt.Sprintf("application %d received for job %d", application.ID, jobID))

	return application, nil
}

// StartReview moves a fresh application into the recruiter's hands.
func (s *Service) StartReview(ctx context.Context, id uint) (model.Application, error) {
	return s.advance(ctx, id,
		[]string{model.ApplicationStatusPending, model.ApplicationStatusInjected},
		model.ApplicationStatusReviewing,
		model.NotificationApplicationAdvanced)
}

// ForwardToSpecialist hands the application to the specialist stage. A
// repeated forward on an application already at or past sent_to_specialist
// fails with ErrAlreadyProcessed and leaves the status untouched.
func (s *Service) ForwardToSpecialist(ctx context.Context, id uint) (model.Application, error) {
	return s.advance(ctx, id,
		[]string{model.ApplicationStatusPending, model.ApplicationStatusInjected, model.ApplicationStatusReviewing},
		model.ApplicationStatusSentToSpecialist,
		model.NotificationApplicationAdvanced)
}

// StartEvaluating marks the specialist as working on the application.
func (s *Service) StartEvaluating(ctx context.Context, id uint) (model.Application, error) {
	return s.advance(ctx, id,
		[]string{model.ApplicationStatusSentToSpecialist},
		model.ApplicationStatusEvaluating,
		model.NotificationApplicationAdvanced)
}

// ForwardToCompany releases the evaluated application to the company, at
// most once.
func (s *Service) ForwardToCompany(ctx context.Context, id uint) (model.Application, error) {
	return s.advance(ctx, id,
		[]string{model.ApplicationStatusEvaluating},
		model.ApplicationStatusSentToCompany,
		model.NotificationApplicationAdvanced)
}

// MarkInterviewed records that the company interviewed the candidate.
func (s *Service) MarkInterviewed(ctx context.Context, id uint) (model.Application, error) {
	return s.advance(ctx, id,
		[]string{model.ApplicationStatusSentToCompany},
		model.ApplicationStatusInterviewed,
		model.NotificationApplicationAdvanced)
}

// Conclude ends the application. accepted and rejected require the company
// stage; discarded is allowed from any non-terminal status.
func (s *Service) Conclude(ctx context.Context, id uint, outcome string) (model.Application, error) {
	switch outcome {
	case model.ApplicationStatusAccepted, model.ApplicationStatusRejected:
		return s.advance(ctx, id,
			[]string{model.ApplicationStatusSentToCompany, model.ApplicationStatusInterviewed},
			outcome,
			model.NotificationApplicationConcluded)
	case model.ApplicationStatusDiscarded:
		return s.advance(ctx, id,
			[]string{
				model.ApplicationStatusPending, model.ApplicationStatusInjected,
				model.ApplicationStatusReviewing, model.ApplicationStatusSentToSpecialist,
				model.ApplicationStatusEvaluating, model.ApplicationStatusSentToCompany,
				model.ApplicationStatusInterviewed,
			},
			outcome,
			model.NotificationApplicationConcluded)
	}
	return model.Application{}, fmt.Errorf("%w: outcome %q is not terminal", ErrValidation, outcome)
}

// advance performs one guarded transition. The conditional UPDATE serializes
// concurrent callers on the same row: whoever loses the race affects zero
// rows and is told the application was already processed (or, for an illegal
// jump, that the precondition failed).
func (s *Service) advance(ctx context.Context, id uint, from []string, to string, kind string) (model.Application, error) {
	res := s.DB.WithContext(ctx).
		Model(&model.Application{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return model.Application{}, storage(res.Error)
	}

	if res.RowsAffected == 0 {
		var current model.Application
		err := s.DB.WithContext(ctx).First(&current, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Application{}, fmt.Errorf("%w: application %d", ErrNotFound, id)
		}
		if err != nil {
			return model.Application{}, storage(err)
		}
		if model.ApplicationStatusRank(current.Status) >= model.ApplicationStatusRank(to) {
			return model.Application{}, fmt.Errorf("%w: application %d is already %s", ErrAlreadyProcessed, id, current.Status)
		}
		return model.Application{}, fmt.Errorf("%w: application %d is %s, cannot move to %s", ErrPreconditionFailed, id, current.Status, to)
	}

	var updated model.Application
	if err := s.DB.WithContext(ctx).Preload("Job").First(&updated, id).Error; err != nil {
		return model.Application{}, storage(err)
	}

	s.emit(ctx, applicationRecipient(updated), kind,
		fmt.Sprintf("application %d moved to %s", updated.ID, updated.Status))

	return updated, nil
}

// applicationRecipient picks who hears about an application transition: the
// candidate account when one is linked, otherwise the posting company.
func applicationRecipient(app model.Application) uuid.UUID {
	if app.CandidateID != nil {
		return *app.CandidateID
	}
	return app.Job.CompanyID
}

// ListApplications returns the applications for a job, oldest first.
func (s *Service) ListApplications(ctx context.Context, jobID uint) ([]model.Application, error) {
	var out []model.Application
	err := s.DB.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storage(err)
	}
	return out, nil
}
