// Package assignment provides HTTP handlers for the recruiter/specialist
// screening assignment workflow.
package assignment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/controller"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/database"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/lifecycle"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/model"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/utilities"
)

// AssignmentController handles job assignment related endpoints
type AssignmentController struct {
	DB        *database.DBinstanceStruct
	Lifecycle *lifecycle.Service
}

// NewAssignmentController creates a new instance of AssignmentController
func NewAssignmentController(db *database.DBinstanceStruct, lc *lifecycle.Service) *AssignmentController {
	return &AssignmentController{
		DB:        db,
		Lifecycle: lc,
	}
}

type releaseInfo struct {
	SpecialistID uuid.UUID `json:"specialist_id" binding:"required"`
}

// ReleaseHandler hands an assignment to a specialist. The specialist track is
// reset to pending in the same update, so the specialist always starts fresh.
// @Summary Release an assignment to a specialist
// @Description Only recruiter and admin users have access to this endpoint
// @Tags Assignment
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "Assignment ID"
// @Param release body releaseInfo true "Specialist receiving the job"
// @Success 200 {object} model.JobAssignment "Assignment released"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or specialist"
// @Failure 404 {object} utilities.ErrorResponse "Assignment not found"
// @Failure 409 {object} utilities.ErrorResponse "Already released"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /assignment/{id}/release [patch]
func (sc *AssignmentController) ReleaseHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var info releaseInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	var specialist model.User
	if err := sc.DB.Where("id = ? AND role = ?", info.SpecialistID, model.RoleSpecialist).First(&specialist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Specialist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to look up specialist"})
		return
	}

	updated, err := sc.Lifecycle.ReleaseToSpecialist(c.Request.Context(), id, info.SpecialistID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// StartHandler moves the caller's screening work to in_progress. Fails with
// 412 while the recruiter has not released the assignment.
// @Summary Start working on an assignment
// @Description Only the specialist the assignment was released to has access
// @Tags Assignment
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "Assignment ID"
// @Success 200 {object} model.JobAssignment "Screening started"
// @Failure 403 {object} utilities.ErrorResponse "Assignment belongs to another specialist"
// @Failure 404 {object} utilities.ErrorResponse "Assignment not found"
// @Failure 409 {object} utilities.ErrorResponse "Already started"
// @Failure 412 {object} utilities.ErrorResponse "Not released yet"
// @Router /assignment/{id}/start [patch]
func (sc *AssignmentController) StartHandler(c *gin.Context) {
	sc.specialistTransition(c, sc.Lifecycle.StartAssignment)
}

// CompleteHandler finishes the caller's screening work.
// @Summary Complete an assignment
// @Description Only the specialist the assignment was released to has access
// @Tags Assignment
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "Assignment ID"
// @Success 200 {object} model.JobAssignment "Screening completed"
// @Failure 403 {object} utilities.ErrorResponse "Assignment belongs to another specialist"
// @Failure 404 {object} utilities.ErrorResponse "Assignment not found"
// @Failure 409 {object} utilities.ErrorResponse "Already completed"
// @Failure 412 {object} utilities.ErrorResponse "Not released or not started"
// @Router /assignment/{id}/complete [patch]
func (sc *AssignmentController) CompleteHandler(c *gin.Context) {
	sc.specialistTransition(c, sc.Lifecycle.CompleteAssignment)
}

// ListHandler returns assignments depending on the caller's role. Specialists
// only ever see assignments already released to them; recruiters and admins
// see everything.
// @Summary List assignments visible to the caller
// @Tags Assignment
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.JobAssignment "Assignments visible to the caller"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /assignment [get]
func (sc *AssignmentController) ListHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var out []model.JobAssignment
	if user.Role == model.RoleSpecialist {
		out, err = sc.Lifecycle.ListAssignmentsForSpecialist(c.Request.Context(), user.ID)
	} else {
		out, err = sc.Lifecycle.ListAssignments(c.Request.Context())
	}
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// GetByJobHandler returns the assignment attached to a job.
// @Summary Get the assignment of a job post
// @Description Only recruiter and admin users have access to this endpoint
// @Tags Assignment
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param job_id path integer true "Job ID"
// @Success 200 {object} model.JobAssignment "The job's assignment"
// @Failure 404 {object} utilities.ErrorResponse "Assignment not found"
// @Router /assignment/job/{job_id} [get]
func (sc *AssignmentController) GetByJobHandler(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("job_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid job ID"})
		return
	}

	assignment, err := sc.Lifecycle.AssignmentForJob(c.Request.Context(), uint(jobID))
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// specialistTransition verifies the caller holds the assignment, then runs
// one guarded specialist status move. Admin bypasses the ownership check.
func (sc *AssignmentController) specialistTransition(c *gin.Context, op func(ctx context.Context, id uint) (model.JobAssignment, error)) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	if user.Role != model.RoleAdmin {
		var assignment model.JobAssignment
		if err := sc.DB.First(&assignment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Assignment not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to retrieve assignment"})
			return
		}
		if assignment.SpecialistID == nil || *assignment.SpecialistID != user.ID {
			c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "This assignment belongs to another specialist"})
			return
		}
	}

	updated, err := op(c.Request.Context(), id)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid assignment ID"})
		return 0, false
	}
	return uint(id), true
}
