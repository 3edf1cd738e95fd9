package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/admission"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/utilities"
)

// Admit gates a mutating endpoint behind the admission controller. The
// window identifier is "<action>:<user id>" for authenticated callers and
// "<action>:<client ip>" otherwise, so the same caller hitting two actions
// draws from two separate budgets.
func Admit(ctrl *admission.Controller, action string, maxRequests, windowSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := action + ":" + c.ClientIP()
		if user, err := utilities.ExtractUser(c); err == nil {
			identifier = action + ":" + user.ID.String()
		}

		res := ctrl.Check(identifier, maxRequests, windowSeconds)

		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Header("X-RateLimit-Reset", strconv.Itoa(res.ResetInSeconds))

		if !res.Allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":               fmt.Sprintf("Too many %s requests. Please try again later.", action),
				"retry_after_seconds": res.ResetInSeconds,
			})
			return
		}

		c.Next()
	}
}
