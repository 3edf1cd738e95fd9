package lifecycle

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/database"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/model"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/notification"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/pricing"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	var err error
	var teardown func(context.Context) error
	teardown, testDB, err = database.GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardown != nil {
		_ = teardown(ctx)
	}
	os.Exit(code)
}

func newService() *Service {
	return NewService(testDB, pricing.NewResolver(testDB), notification.NewStore(testDB))
}

// freshUser reloads a seeded user so credit balances mutated by earlier
// tests are current.
func freshUser(t *testing.T, username string) model.User {
	t.Helper()
	var u model.User
	require.NoError(t, testDB.Where("username = ?", username).First(&u).Error)
	return u
}

var jobSeq atomic.Int64

// newJob posts a Tecnología/Jr/remote job (3 credits) as company_user_1 and
// returns it with its assignment preloaded.
func newJob(t *testing.T, svc *Service) model.Job {
	t.Helper()
	company := freshUser(t, "company_user_1")
	job, err := svc.CreateJob(context.Background(), company, model.EditableJobInfo{
		Title:     fmt.Sprintf("Backend Opening %d", jobSeq.Add(1)),
		Profile:   "Tecnología",
		Seniority: "Jr",
		WorkMode:  "remote",
	})
	require.NoError(t, err)
	require.NotNil(t, job.Assignment)
	return job
}

// notificationCount counts stored notifications for one recipient and kind.
func notificationCount(t *testing.T, userID interface{}, kind string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, testDB.Model(&model.Notification{}).
		Where("user_id = ? AND kind = ?", userID, kind).
		Count(&count).Error)
	return count
}
