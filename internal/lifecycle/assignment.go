package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/model"
)

// ReleaseToSpecialist moves the recruiter track to sent_to_specialist and,
// in the same update, resets the specialist track to pending and records who
// the job went to. The conditional update serializes concurrent releases on
// one assignment: the loser affects zero rows and gets ErrAlreadyProcessed.
func (s *Service) ReleaseToSpecialist(ctx context.Context, id uint, specialistID uuid.UUID) (model.JobAssignment, error) {
	res := s.DB.WithContext(ctx).
		Model(&model.JobAssignment{}).
		Where("id = ? AND recruiter_status = ?", id, model.RecruiterStatusNotSent).
		Updates(map[string]interface{}{
			"recruiter_status":  model.RecruiterStatusSentToSpecialist,
			"specialist_status": model.SpecialistStatusPending,
			"specialist_id":     specialistID,
		})
	if res.Error != nil {
		return model.JobAssignment{}, storage(res.Error)
	}

	if res.RowsAffected == 0 {
		current, err := s.loadAssignment(ctx, id)
		if err != nil {
			return model.JobAssignment{}, err
		}
		return model.JobAssignment{}, fmt.Errorf("%w: assignment %d was already released", ErrAlreadyProcessed, current.ID)
	}

	updated, err := s.loadAssignment(ctx, id)
	if err != nil {
		return model.JobAssignment{}, err
	}

	s.emit(ctx, specialistID, model.NotificationAssignmentReleased,
		fmt.Sprintf("job %d assigned for screening", updated.JobID))

	return updated, nil
}

// StartAssignment moves the specialist track from pending to in_progress.
// The guard that fixes the early-access bug lives in the WHERE clause: the
// specialist track can only leave pending when the recruiter track is
// sent_to_specialist.
func (s *Service) StartAssignment(ctx context.Context, id uint) (model.JobAssignment, error) {
	return s.advanceAssignment(ctx, id, model.SpecialistStatusPending, model.SpecialistStatusInProgress)
}

// CompleteAssignment finishes the screening, in_progress to completed.
func (s *Service) CompleteAssignment(ctx context.Context, id uint) (model.JobAssignment, error) {
	return s.advanceAssignment(ctx, id, model.SpecialistStatusInProgress, model.SpecialistStatusCompleted)
}

func (s *Service) advanceAssignment(ctx context.Context, id uint, from, to string) (model.JobAssignment, error) {
	res := s.DB.WithContext(ctx).
		Model(&model.JobAssignment{}).
		Where("id = ? AND specialist_status = ? AND recruiter_status = ?",
			id, from, model.RecruiterStatusSentToSpecialist).
		Update("specialist_status", to)
	if res.Error != nil {
		return model.JobAssignment{}, storage(res.Error)
	}

	if res.RowsAffected == 0 {
		current, err := s.loadAssignment(ctx, id)
		if err != nil {
			return model.JobAssignment{}, err
		}
		if !current.Released() {
			return model.JobAssignment{}, fmt.Errorf("%w: assignment %d was not released by the recruiter", ErrPreconditionFailed, id)
		}
		if specialistStatusRank(current.SpecialistStatus) >= specialistStatusRank(to) {
			return model.JobAssignment{}, fmt.Errorf("%w: assignment %d is already %s", ErrAlreadyProcessed, id, current.SpecialistStatus)
		}
		return model.JobAssignment{}, fmt.Errorf("%w: assignment %d is %s, cannot move to %s", ErrPreconditionFailed, id, current.SpecialistStatus, to)
	}

	updated, err := s.loadAssignment(ctx, id)
	if err != nil {
		return model.JobAssignment{}, err
	}

	s.emit(ctx, updated.Job.CompanyID, model.NotificationAssignmentProgress,
		fmt.Sprintf("screening for job %d is now %s", updated.JobID, updated.SpecialistStatus))

	return updated, nil
}

func specialistStatusRank(status string) int {
	switch status {
	case model.SpecialistStatusPending:
		return 0
	case model.SpecialistStatusInProgress:
		return 1
	case model.SpecialistStatusCompleted:
		return 2
	}
	return -1
}

func (s *Service) loadAssignment(ctx context.Context, id uint) (model.JobAssignment, error) {
	var assignment model.JobAssignment
	err := s.DB.WithContext(ctx).Preload("Job").First(&assignment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.JobAssignment{}, fmt.Errorf("%w: assignment %d", ErrNotFound, id)
	}
	if err != nil {
		return model.JobAssignment{}, storage(err)
	}
	return assignment, nil
}

// AssignmentForJob returns the assignment owned by a job.
func (s *Service) AssignmentForJob(ctx context.Context, jobID uint) (model.JobAssignment, error) {
	var assignment model.JobAssignment
	err := s.DB.WithContext(ctx).Where("job_id = ?", jobID).First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.JobAssignment{}, fmt.Errorf("%w: assignment for job %d", ErrNotFound, jobID)
	}
	if err != nil {
		return model.JobAssignment{}, storage(err)
	}
	return assignment, nil
}

// ListAssignmentsForSpecialist returns only assignments the recruiter has
// released to the given specialist. The filter is part of the query, so an
// unreleased assignment is never observable from the specialist side.
func (s *Service) ListAssignmentsForSpecialist(ctx context.Context, specialistID uuid.UUID) ([]model.JobAssignment, error) {
	var out []model.JobAssignment
	err := s.DB.WithContext(ctx).
		Where("specialist_id = ? AND recruiter_status = ?", specialistID, model.RecruiterStatusSentToSpecialist).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storage(err)
	}
	return out, nil
}

// ListAssignments returns every assignment, for recruiter and admin views.
func (s *Service) ListAssignments(ctx context.Context) ([]model.JobAssignment, error) {
	var out []model.JobAssignment
	err := s.DB.WithContext(ctx).Order("id ASC").Find(&out).Error
	if err != nil {
		return nil, storage(err)
	}
	return out, nil
}
