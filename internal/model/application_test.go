package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusRank_OrdersPipeline(t *testing.T) {
	pipeline := []string{
		ApplicationStatusPending,
		ApplicationStatusReviewing,
		ApplicationStatusSentToSpecialist,
		ApplicationStatusEvaluating,
		ApplicationStatusSentToCompany,
		ApplicationStatusInterviewed,
		ApplicationStatusAccepted,
	}
	for i := 1; i < len(pipeline); i++ {
		assert.Greater(t, ApplicationStatusRank(pipeline[i]), ApplicationStatusRank(pipeline[i-1]),
			"%s should rank above %s", pipeline[i], pipeline[i-1])
	}
}

func TestApplicationStatusRank_InjectedMatchesPending(t *testing.T) {
	assert.Equal(t, ApplicationStatusRank(ApplicationStatusPending), ApplicationStatusRank(ApplicationStatusInjected))
}

func TestApplicationStatusRank_TerminalsShareRank(t *testing.T) {
	accepted := ApplicationStatusRank(ApplicationStatusAccepted)
	assert.Equal(t, accepted, ApplicationStatusRank(ApplicationStatusRejected))
	assert.Equal(t, accepted, ApplicationStatusRank(ApplicationStatusDiscarded))
}

func TestApplicationStatusTerminal(t *testing.T) {
	for _, s := range []string{ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusDiscarded} {
		assert.True(t, ApplicationStatusTerminal(s), s)
	}
	for _, s := range []string{ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusSentToCompany} {
		assert.False(t, ApplicationStatusTerminal(s), s)
	}
}

func TestAssignmentState(t *testing.T) {
	cases := []struct {
		recruiter  string
		specialist string
		want       AssignmentState
	}{
		{RecruiterStatusNotSent, SpecialistStatusPending, AssignmentStateUnreleased},
		{RecruiterStatusSentToSpecialist, SpecialistStatusPending, AssignmentStateReleased},
		{RecruiterStatusSentToSpecialist, SpecialistStatusInProgress, AssignmentStateInProgress},
		{RecruiterStatusSentToSpecialist, SpecialistStatusCompleted, AssignmentStateCompleted},
		{RecruiterStatusNotSent, SpecialistStatusInProgress, AssignmentStateInvalid},
		{RecruiterStatusNotSent, SpecialistStatusCompleted, AssignmentStateInvalid},
	}
	for _, c := range cases {
		a := JobAssignment{RecruiterStatus: c.recruiter, SpecialistStatus: c.specialist}
		assert.Equal(t, c.want, a.State(), "%s/%s", c.recruiter, c.specialist)
	}
}
