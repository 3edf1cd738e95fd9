package lifecycle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/model"
)

func TestCreateApplication_NormalizesAndLinksCandidate(t *testing.T) {
	svc := newService()
	job := newJob(t, svc)
	candidate := freshUser(t, "candidate_user_1")

	app, err := svc.CreateApplication(context.Background(), job.ID, "  Casing@Example.COM ", "Case Sensitive", &candidate.ID)
	require.NoError(t, err)

	assert.Equal(t, "casing@example.com", app.CandidateEmail)
	assert.Equal(t, model.ApplicationStatusPending, app.Status)
	require.NotNil(t, app.CandidateID)
	assert.Equal(t, candidate.ID, *app.CandidateID)
}

func TestCreateApplication_DuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newService()
	job := newJob(t, svc)

	_, err := svc.CreateApplication(context.Background(), job.ID, "dup@example.com", "First", nil)
	require.NoError(t, err)

	_, err = svc.CreateApplication(context.Background(), job.ID, "DUP@Example.com", "Second", nil)
	assert.ErrorIs(t, err, ErrDuplicateApplication)

	var count int64
	require.NoError(t, testDB.Model(&model.Application{}).
		Where("job_id = ? AND candidate_email = ?", job.ID, "dup@example.com").
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateApplication_SameEmailDifferentJobs(t *testing.T) {
	svc := newService()
	first := newJob(t, svc)
	second := newJob(t, svc)

	_, err := svc.CreateApplication(context.Background(), first.ID, "both@example.com", "Both", nil)
	require.NoError(t, err)
	_, err = svc.CreateApplication(context.Background(), second.ID, "both@example.com", "Both", nil)
	assert.NoError(t, err)
}

func TestCreateApplication_JobNotFound(t *testing.T) {
	svc := newService()

	_, err := svc.CreateApplication(context.Background(), 999999, "ghost@example.com", "Ghost", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateApplication_NotifiesCompany(t *testing.T) {
	svc := newService()
	job := newJob(t, svc)
	before := notificationCount(t, job.CompanyID, model.NotificationApplicationReceived)

	_, err := svc.CreateApplication(context.Background(), job.ID, "notify@example.com", "Notify", nil)
	require.NoError(t, err)

	assert.Equal(t, before+1, notificationCount(t, job.CompanyID, model.NotificationApplicationReceived))
}

func TestInjectApplication_StartsInjected(t *testing.T) {
	svc := newService()
	job := newJob(t, svc)

	app, err := svc.InjectApplication(context.Background(), job.ID, "injected@example.com", "Injected", nil)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusInjected, app.Status)

	// Injected applications enter the pipeline at the same rank as pending.
	app, err = svc.StartReview(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusReviewing, app.Status)
}

func TestForwardToSpecialist_SecondForwardRejected(t *testing.T) {
	svc := newService()
	job := newJob(t, svc)
	app, err := svc.CreateApplication(context.Background(), job.ID, "forward@example.com", "Forward", nil)
	require.NoError(t, err)

	app, err = svc.ForwardToSpecialist(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusSentToSpecialist, app.Status)

	_, err = svc.ForwardToSpecialist(context.Background(), app.ID)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)

	var current model.Application
	require.NoError(t, testDB.First(&current, app.ID).Error)
	assert.Equal(t, model.ApplicationStatusSentToSpecialist, current.Status)
}

func TestFullPipeline_PendingToAccepted(t *testing.T) {
	svc := newService()
	job := newJob(t, svc)
	app, err := svc.CreateApplication(context.Background(), job.ID, "pipeline@example.com", "Pipeline", nil)
	require.NoError(t, err)

	steps := []func(context.Context, uint) (model.Application, error){
		svc.StartReview,
		svc.ForwardToSpecialist,
		svc.StartEvaluating,
		svc.ForwardToCompany,
		svc.MarkInterviewed,
	}
	wantStatus := []string{
		model.ApplicationStatusReviewing,
		model.ApplicationStatusSentToSpecialist,
		model.ApplicationStatusEvaluating,
		model.ApplicationStatusSentToCompany,
		model.ApplicationStatusInterviewed,
	}
	for i, step := range steps {
		app, err = step(context.Background(), app.ID)
		require.NoError(t, err)
		assert.Equal(t, wantStatus[i], app.Status)
	}

	app, err = svc.Conclude(context.Background(), app.ID, model.ApplicationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusAccepted, app.Status)
	assert.True(t, model.ApplicationStatusTerminal(app.Status))
}

func TestConclude_AcceptedRequiresCompanyStage(t *testing.T) {
	svc := newService()
	job := newJob(t, svc)
	app, err := svc.CreateApplication(context.Background(), job.ID, "early@example.com", "Early", nil)
	require.NoError(t, err)

	_, err = svc.Conclude(context.Background(), app.ID, model.ApplicationStatusAccepted)
	assert.ErrorIs(t, err, ErrPreconditionFailed)
}

func TestConclude_DiscardFromAnyNonTerminal(t *testing.T) {
	svc := newService()
	job := newJob(t, svc)
	app, err := svc.CreateApplication(context.Background(), job.ID, "discard@example.com", "Discard", nil)
	require.NoError(t, err)

	app, err = svc.Conclude(context.Background(), app.ID, model.ApplicationStatusDiscarded)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusDiscarded, app.Status)

	// Terminal states never move again.
	_, err = svc.Conclude(context.Background(), app.ID, model.ApplicationStatusDiscarded)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	_, err = svc.StartReview(context.Background(), app.ID)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestConclude_RejectsUnknownOutcome(t *testing.T) {
	svc := newService()
	job := newJob(t, svc)
	app, err := svc.CreateApplication(context.Background(), job.ID, "outcome@example.com", "Outcome", nil)
	require.NoError(t, err)

	_, err = svc.Conclude(context.Background(), app.ID, "reviewing")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdvance_NotFound(t *testing.T) {
	svc := newService()

	_, err := svc.StartReview(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListApplications_OldestFirst(t *testing.T) {
	svc := newService()
	job := newJob(t, svc)
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := svc.CreateApplication(context.Background(), job.ID, email, "", nil)
		require.NoError(t, err)
	}

	apps, err := svc.ListApplications(context.Background(), job.ID)
	require.NoError(t, err)
	require.Len(t, apps, 3)
	assert.True(t, apps[0].ID < apps[1].ID && apps[1].ID < apps[2].ID)
}
