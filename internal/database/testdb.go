package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/Inakat-Human-Resources/inakat-sub004/internal/model"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context) error

// Exported seed users, one per role, plus a second company with a balance
// too small to post anything.
var (
	TestAdminUser      m.User
	TestCompanyUser1   m.User
	TestCompanyUser2   m.User
	TestCandidateUser1 m.User
	TestCandidateUser2 m.User
	TestRecruiterUser  m.User
	TestSpecialistUser m.User

	// TestSeedPassword is the plain password every seeded user logs in with
	TestSeedPassword = "SeedPass123!"

	// Exported seeded jobs and their assignments
	TestJob1        m.Job
	TestJob2        m.Job
	TestAssignment1 m.JobAssignment
	TestAssignment2 m.JobAssignment
)

// Seeded pricing table. IDs are assigned explicitly so the insertion-order
// tie-break stays deterministic across runs:
//
//	1 Tecnología/Jr/remote  location NULL       3 credits
//	2 Tecnología/Jr/remote  location Monterrey  9 credits (loses to 1)
//	3 Tecnología/Sr/remote  location CDMX       7 credits (only via fallback)
//	4 Tecnología/Jr/remote  location NULL       4 credits (tie, loses to 1)
//	5 Diseño/Mid/hybrid     location NULL       6 credits, inactive
var TestPricingRules []m.PricingRule

// GetTestDB starts a PostgreSQL test container and returns a teardown
// function, the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts one user per role, the pricing table and two jobs
// with their assignments, unless the database is already populated.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	// Ignore admin user that got create during NewDBInstance
	if userCount > 1 {
		return loadTestData(db)
	}

	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	userSpecs := []struct {
		username string
		email    string
		role     string
		credits  int
	}{
		{"company_user_1", "company1@example.com", m.RoleCompany, 100},
		{"company_user_2", "company2@example.com", m.RoleCompany, 3},
		{"candidate_user_1", "candidate1@example.com", m.RoleCandidate, 0},
		{"candidate_user_2", "candidate2@example.com", m.RoleCandidate, 0},
		{"recruiter_user", "recruiter@example.com", m.RoleRecruiter, 0},
		{"specialist_user", "specialist@example.com", m.RoleSpecialist, 0},
		{"admin_user", "admin@example.com", m.RoleAdmin, 0},
	}

	users := make([]m.User, 0, len(userSpecs))
	for _, s := range userSpecs {
		email := s.email
		users = append(users, m.User{
			ID:       uuid.New(),
			Username: s.username,
			Email:    &email,
			Role:     s.role,
			Password: hashedPwd,
			Credits:  s.credits,
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}

	for _, u := range users {
		switch u.Username {
		case "company_user_1":
			TestCompanyUser1 = u
		case "company_user_2":
			TestCompanyUser2 = u
		case "candidate_user_1":
			TestCandidateUser1 = u
		case "candidate_user_2":
			TestCandidateUser2 = u
		case "recruiter_user":
			TestRecruiterUser = u
		case "specialist_user":
			TestSpecialistUser = u
		case "admin_user":
			TestAdminUser = u
		}
	}

	monterrey, cdmx := "Monterrey", "CDMX"
	TestPricingRules = []m.PricingRule{
		{ID: 1, Profile: "Tecnología", Seniority: "Jr", WorkMode: "remote", Credits: 3, IsActive: true},
		{ID: 2, Profile: "Tecnología", Seniority: "Jr", WorkMode: "remote", Location: &monterrey, Credits: 9, IsActive: true},
		{ID: 3, Profile: "Tecnología", Seniority: "Sr", WorkMode: "remote", Location: &cdmx, Credits: 7, IsActive: true},
		{ID: 4, Profile: "Tecnología", Seniority: "Jr", WorkMode: "remote", Credits: 4, IsActive: true},
		{ID: 5, Profile: "Diseño", Seniority: "Mid", WorkMode: "hybrid", Credits: 6, IsActive: false},
	}
	if err := db.Create(&TestPricingRules).Error; err != nil {
		return err
	}

	exp := time.Now().AddDate(0, 1, 0)
	jobs := []m.Job{
		{
			CompanyID: TestCompanyUser1.ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:     "Backend Developer",
				Desc:      "Build and operate Go services.",
				Req:       "Go; SQL",
				Profile:   "Tecnología",
				Seniority: "Jr",
				WorkMode:  "remote",
				Location:  "Remote (MX)",
				Salary:    "40000 MXN",
				Tags:      []string{"go", "backend"},
				Expiring:  &exp,
			},
			CreditCost: 3,
		},
		{
			CompanyID: TestCompanyUser1.ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:     "Senior Platform Engineer",
				Desc:      "Own the deployment platform.",
				Req:       "Go; Kubernetes",
				Profile:   "Tecnología",
				Seniority: "Sr",
				WorkMode:  "remote",
				Location:  "CDMX",
				Salary:    "90000 MXN",
				Tags:      []string{"go", "platform"},
				Expiring:  &exp,
			},
			CreditCost: 7,
		},
	}
	if err := db.Create(&jobs).Error; err != nil {
		return err
	}
	TestJob1 = jobs[0]
	TestJob2 = jobs[1]

	assignments := []m.JobAssignment{
		{JobID: TestJob1.ID, RecruiterStatus: m.RecruiterStatusNotSent, SpecialistStatus: m.SpecialistStatusPending},
		{JobID: TestJob2.ID, RecruiterStatus: m.RecruiterStatusNotSent, SpecialistStatus: m.SpecialistStatusPending},
	}
	if err := db.Create(&assignments).Error; err != nil {
		return err
	}
	TestAssignment1 = assignments[0]
	TestAssignment2 = assignments[1]

	// Keep the autoincrement ahead of the explicitly assigned rule IDs.
	return db.Exec(`SELECT setval(pg_get_serial_sequence('pricing_rules', 'id'), (SELECT MAX(id) FROM pricing_rules))`).Error
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var users []m.User
	if err := db.Where("username IN ?", []string{
		"company_user_1", "company_user_2", "candidate_user_1", "candidate_user_2",
		"recruiter_user", "specialist_user", "admin_user",
	}).Find(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		switch u.Username {
		case "company_user_1":
			TestCompanyUser1 = u
		case "company_user_2":
			TestCompanyUser2 = u
		case "candidate_user_1":
			TestCandidateUser1 = u
		case "candidate_user_2":
			TestCandidateUser2 = u
		case "recruiter_user":
			TestRecruiterUser = u
		case "specialist_user":
			TestSpecialistUser = u
		case "admin_user":
			TestAdminUser = u
		}
	}

	if err := db.Order("id ASC").Find(&TestPricingRules).Error; err != nil {
		return err
	}

	var jobs []m.Job
	if err := db.Order("id ASC").Limit(2).Find(&jobs).Error; err != nil {
		return err
	}
	if len(jobs) > 0 {
		TestJob1 = jobs[0]
		_ = db.First(&TestAssignment1, "job_id = ?", TestJob1.ID).Error
	}
	if len(jobs) > 1 {
		TestJob2 = jobs[1]
		_ = db.First(&TestAssignment2, "job_id = ?", TestJob2.ID).Error
	}

	return nil
}
