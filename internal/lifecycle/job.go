package lifecycle

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/model"
)

// CreateJob resolves the posting's credit cost, charges the company and
// creates the Job together with its JobAssignment in one transaction. The
// debit is a conditional update on the balance, so two concurrent postings
// can never spend the same credits twice. The resolved cost is snapshotted
// on the job and never recomputed.
func (s *Service) CreateJob(ctx context.Context, company model.User, info model.EditableJobInfo) (model.Job, error) {
	if company.Role != model.RoleCompany {
		return model.Job{}, fmt.Errorf("%w: only companies can post jobs", ErrValidation)
	}
	if info.Title == "" {
		return model.Job{}, fmt.Errorf("%w: title is required", ErrValidation)
	}

	quote, err := s.Pricing.ResolveCreditCost(info.Profile, info.Seniority, info.WorkMode)
	if err != nil {
		return model.Job{}, storage(err)
	}

	job := model.Job{
		CompanyID:       company.ID,
		EditableJobInfo: info,
		CreditCost:      quote.Credits,
	}
	if quote.Found {
		ruleID := quote.MatchedRuleID
		job.MatchedRuleID = &ruleID
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		debit := tx.Model(&model.User{}).
			Where("id = ? AND credits >= ?", company.ID, quote.Credits).
			Update("credits", gorm.Expr("credits - ?", quote.Credits))
		if debit.Error != nil {
			return storage(debit.Error)
		}
		if debit.RowsAffected == 0 {
			return fmt.Errorf("%w: posting costs %d credits", ErrInsufficientCredits, quote.Credits)
		}

		if err := tx.Create(&job).Error; err != nil {
			return storage(err)
		}

		assignment := model.JobAssignment{
			JobID:            job.ID,
			RecruiterStatus:  model.RecruiterStatusNotSent,
			SpecialistStatus: model.SpecialistStatusPending,
		}
		if err := tx.Create(&assignment).Error; err != nil {
			return storage(err)
		}
		job.Assignment = &assignment
		return nil
	})
	if err != nil {
		return model.Job{}, err
	}

	s.emit(ctx, company.ID, model.NotificationJobPublished,
		fmt.Sprintf("job %d published for %d credits", job.ID, job.CreditCost))

	return job, nil
}

// DeleteJob removes a job and, through the cascade, its applications and
// assignment. Spent credits are not refunded.
func (s *Service) DeleteJob(ctx context.Context, jobID uint) error {
	res := s.DB.WithContext(ctx).Delete(&model.Job{}, jobID)
	if res.Error != nil {
		return storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: job %d", ErrNotFound, jobID)
	}
	return nil
}
