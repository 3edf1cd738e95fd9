// Package pricingquote exposes read-only credit cost quotes.
package pricingquote

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/controller"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/pricing"
)

// PricingQuoteController handles pricing quote endpoints
type PricingQuoteController struct {
	Pricing *pricing.Resolver
}

// NewPricingQuoteController creates a new instance of PricingQuoteController
func NewPricingQuoteController(r *pricing.Resolver) *PricingQuoteController {
	return &PricingQuoteController{Pricing: r}
}

// QuoteHandler previews the credit cost of a job posting. The quote runs the
// same resolution as the charge at posting time, so the numbers cannot drift.
// @Summary Quote the credit cost of a job posting
// @Description Missing attributes quote the default cost without consulting the pricing table
// @Tags Pricing
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param profile query string false "Job profile, e.g. Tecnología"
// @Param seniority query string false "Seniority, e.g. Sr"
// @Param work_mode query string false "Work mode, e.g. remote"
// @Success 200 {object} pricing.Quote "Resolved quote"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /pricing/quote [get]
func (pc *PricingQuoteController) QuoteHandler(c *gin.Context) {
	quote, err := pc.Pricing.ResolveCreditCost(
		c.Query("profile"),
		c.Query("seniority"),
		c.Query("work_mode"),
	)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}
