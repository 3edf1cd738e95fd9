package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/admission"
)

func admitTestRouter(ctrl *admission.Controller, action string, max, window int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/act", Admit(ctrl, action, max, window), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func hit(r *gin.Engine) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/act", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAdmit_AllowsUpToBudgetThenDenies(t *testing.T) {
	r := admitTestRouter(admission.NewController(), "post", 3, 60)

	for i := 0; i < 3; i++ {
		rec := hit(r)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := hit(r)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "retry_after_seconds")
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestAdmit_SetsRemainingHeader(t *testing.T) {
	r := admitTestRouter(admission.NewController(), "post", 5, 60)

	rec := hit(r)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
}

func TestAdmit_ActionsDrawSeparateBudgets(t *testing.T) {
	ctrl := admission.NewController()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/a", Admit(ctrl, "a", 1, 60), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/b", Admit(ctrl, "b", 1, 60), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(path string) int {
		req, _ := http.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("/a"))
	assert.Equal(t, http.StatusTooManyRequests, do("/a"))
	// Same caller, different action, fresh budget.
	assert.Equal(t, http.StatusOK, do("/b"))
}
