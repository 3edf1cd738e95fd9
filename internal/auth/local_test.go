package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/database"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/utilities"
)

var testDB *database.DBinstanceStruct
var testTeardown func(context.Context) error

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	var err error
	testTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test db: %v\n", err)
		os.Exit(1)
	}

	m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := testTeardown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "teardown error: %v\n", err)
	}
}

// Helper: validate access token in response and return claims.
func assertValidAccessToken(t *testing.T, resp map[string]interface{}) *jwt.RegisteredClaims {
	t.Helper()
	tokenStr, ok := resp["access_token"].(string)
	assert.True(t, ok, "access_token not a string")
	token, err := ValidatedToken(tokenStr)
	assert.NoError(t, err)
	assert.True(t, token.Valid)
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	assert.True(t, ok, "claims type mismatch")
	assert.NotEmpty(t, claims.Subject, "token subject empty")
	return claims
}

func TestRegisterCandidate(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	payload := map[string]string{
		"username": "test_candidate_user",
		"password": "password123",
		"role":     "candidate",
	}
	rec, resp, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, payload)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code, "unexpected status, body: %s", rec.Body.String())

	assert.Contains(t, resp, "access_token")
	claims := assertValidAccessToken(t, resp)

	if uMap, ok := resp["user"].(map[string]interface{}); ok {
		if idVal, ok := uMap["id"].(string); ok {
			assert.Equal(t, idVal, claims.Subject)
		}
		assert.Equal(t, "candidate", uMap["role"])
	}
}

func TestRegisterCompany_GetsSignupCredits(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	orig := os.Getenv("COMPANY_SIGNUP_CREDITS")
	_ = os.Setenv("COMPANY_SIGNUP_CREDITS", "20")
	defer func() { _ = os.Setenv("COMPANY_SIGNUP_CREDITS", orig) }()

	payload := map[string]string{
		"username": "test_company_user",
		"password": "companyPass123",
		"role":     "company",
	}
	rec, resp, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, payload)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code, "unexpected status, body: %s", rec.Body.String())

	assertValidAccessToken(t, resp)

	userObj, ok := resp["user"].(map[string]interface{})
	assert.True(t, ok, "user object missing")
	assert.Equal(t, "company", userObj["role"])
	assert.Equal(t, float64(20), userObj["credits"])
}

func TestRegisterRejectsInternalRoles(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	for _, role := range []string{"recruiter", "specialist", "admin"} {
		payload := map[string]string{
			"username": "test_role_" + role,
			"password": "password123",
			"role":     role,
		}
		rec, _, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, payload)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "role %s should not self-register", role)
	}
}

func TestRegisterPasswordTooShort(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	payload := map[string]string{
		"username": "test_short_pwd",
		"password": "short",
		"role":     "candidate",
	}
	rec, _, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, payload)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	payload := map[string]string{
		"username": "company_user_1",
		"password": "password123",
		"role":     "candidate",
	}
	rec, _, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, payload)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginSuccess(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, map[string]string{
		"username": "recruiter_user",
		"password": database.TestSeedPassword,
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code, "unexpected status, body: %s", rec.Body.String())
	assertValidAccessToken(t, resp)
}

func TestLoginWrongPassword(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	rec, _, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, map[string]string{
		"username": "recruiter_user",
		"password": "not-the-password",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	rec, _, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, map[string]string{
		"username": "nobody_here",
		"password": "password123",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
