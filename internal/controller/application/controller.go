// Package application provides HTTP handlers for job application operations.
package application

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

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	DB        *database.DBinstanceStruct
	Lifecycle *lifecycle.Service
}

// NewApplicationController creates a new instance of ApplicationController
func NewApplicationController(db *database.DBinstanceStruct, lc *lifecycle.Service) *ApplicationController {
	return &ApplicationController{
		DB:        db,
		Lifecycle: lc,
	}
}

type applyInfo struct {
	JobID uint   `json:"job_id" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// ApplyHandler handles the creation of a new job application. Authenticated
// candidates are linked to the application; an anonymous caller applies with
// just an email. Either way, one application per email per job, case
// insensitive.
// @Summary Create job application
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string false "Optional access token" default(Bearer <your access token>)
// @Param application body applyInfo true "Input application information"
// @Success 201 {object} model.Application "Successfully applied to the job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Failure 409 {object} utilities.ErrorResponse "Already applied with this email"
// @Failure 429 {object} utilities.ErrorResponse "Too many application attempts"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application [post]
func (ac *ApplicationController) ApplyHandler(c *gin.Context) {
	var info applyInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	var candidateID *uuid.UUID
	if user, err := utilities.ExtractUser(c); err == nil && user.Role == model.RoleCandidate {
		id := user.ID
		candidateID = &id
	}

	application, err := ac.Lifecycle.CreateApplication(c.Request.Context(), info.JobID, info.Email, info.Name, candidateID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// InjectHandler lets an admin insert a candidate manually, bypassing
// self-application. The created application starts at injected_by_admin.
// @Summary Inject a candidate into a job
// @Description Only admin users have access to this endpoint
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param application body applyInfo true "Candidate information"
// @Success 201 {object} model.Application "Successfully injected the candidate"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as admin"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Failure 409 {object} utilities.ErrorResponse "Already applied with this email"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application/inject [post]
func (ac *ApplicationController) InjectHandler(c *gin.Context) {
	var info applyInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	application, err := ac.Lifecycle.InjectApplication(c.Request.Context(), info.JobID, info.Email, info.Name, nil)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// StartReviewHandler moves an application into reviewing.
// @Summary Start reviewing an application
// @Description Only recruiter and admin users have access to this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "Application ID"
// @Success 200 {object} model.Application "Application now in reviewing"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 409 {object} utilities.ErrorResponse "Already processed"
// @Failure 412 {object} utilities.ErrorResponse "Not allowed from the current status"
// @Router /application/{id}/review [patch]
func (ac *ApplicationController) StartReviewHandler(c *gin.Context) {
	ac.transition(c, ac.Lifecycle.StartReview)
}

// ForwardToSpecialistHandler forwards an application to the specialist stage.
// Repeating the forward is rejected, not re-applied.
// @Summary Forward an application to the specialist stage
// @Description Only recruiter and admin users have access to this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "Application ID"
// @Success 200 {object} model.Application "Application forwarded"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 409 {object} utilities.ErrorResponse "Already forwarded"
// @Failure 412 {object} utilities.ErrorResponse "Not allowed from the current status"
// @Router /application/{id}/forward-specialist [patch]
func (ac *ApplicationController) ForwardToSpecialistHandler(c *gin.Context) {
	ac.transition(c, ac.Lifecycle.ForwardToSpecialist)
}

// StartEvaluatingHandler marks the application as being evaluated. The caller
// must be the specialist holding the released assignment of the job.
// @Summary Start evaluating an application
// @Description Only the specialist assigned to the job has access to this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "Application ID"
// @Success 200 {object} model.Application "Application now in evaluating"
// @Failure 403 {object} utilities.ErrorResponse "Not the assigned specialist"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 412 {object} utilities.ErrorResponse "Not allowed from the current status"
// @Router /application/{id}/start-evaluating [patch]
func (ac *ApplicationController) StartEvaluatingHandler(c *gin.Context) {
	if !ac.callerOwnsAssignment(c) {
		return
	}
	ac.transition(c, ac.Lifecycle.StartEvaluating)
}

// ForwardToCompanyHandler releases the evaluated application to the company,
// at most once. The caller must be the specialist holding the assignment.
// @Summary Forward an application to the company
// @Description Only the specialist assigned to the job has access to this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "Application ID"
// @Success 200 {object} model.Application "Application forwarded to the company"
// @Failure 403 {object} utilities.ErrorResponse "Not the assigned specialist"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 409 {object} utilities.ErrorResponse "Already forwarded"
// @Failure 412 {object} utilities.ErrorResponse "Not allowed from the current status"
// @Router /application/{id}/forward-company [patch]
func (ac *ApplicationController) ForwardToCompanyHandler(c *gin.Context) {
	if !ac.callerOwnsAssignment(c) {
		return
	}
	ac.transition(c, ac.Lifecycle.ForwardToCompany)
}

// MarkInterviewedHandler records that the candidate was interviewed.
// @Summary Mark an application as interviewed
// @Description Only the company that owns the job post or admin have access to this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "Application ID"
// @Success 200 {object} model.Application "Application marked as interviewed"
// @Failure 403 {object} utilities.ErrorResponse "Not the owning company"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 412 {object} utilities.ErrorResponse "Not allowed from the current status"
// @Router /application/{id}/interviewed [patch]
func (ac *ApplicationController) MarkInterviewedHandler(c *gin.Context) {
	if !ac.callerOwnsJob(c) {
		return
	}
	ac.transition(c, ac.Lifecycle.MarkInterviewed)
}

type concludeInfo struct {
	Outcome string `json:"outcome" binding:"required,oneof=accepted rejected discarded"`
}

// ConcludeHandler ends an application with accepted, rejected or discarded.
// @Summary Conclude an application
// @Description Only the company that owns the job post or admin have access to this endpoint
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "Application ID"
// @Param outcome body concludeInfo true "One of accepted, rejected, discarded"
// @Success 200 {object} model.Application "Application concluded"
// @Failure 400 {object} utilities.ErrorResponse "Invalid outcome"
// @Failure 403 {object} utilities.ErrorResponse "Not the owning company"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 409 {object} utilities.ErrorResponse "Already concluded"
// @Failure 412 {object} utilities.ErrorResponse "Not allowed from the current status"
// @Router /application/{id}/conclude [patch]
func (ac *ApplicationController) ConcludeHandler(c *gin.Context) {
	if !ac.callerOwnsJob(c) {
		return
	}

	var info concludeInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Outcome must be one of accepted, rejected, discarded",
		})
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	updated, err := ac.Lifecycle.Conclude(c.Request.Context(), id, info.Outcome)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ListHandler returns applications for a job. Visibility depends on the role:
// companies see their own jobs only, candidates their own applications,
// specialists only jobs whose assignment was released to them, recruiters and
// admins everything.
// @Summary List applications for a job
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param job_id query integer true "Job ID"
// @Success 200 {array} model.Application "Applications visible to the caller"
// @Failure 400 {object} utilities.ErrorResponse "Missing or invalid job_id"
// @Failure 403 {object} utilities.ErrorResponse "No access to this job"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application [get]
func (ac *ApplicationController) ListHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	jobID, err := strconv.ParseUint(c.Query("job_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "job_id query parameter is required"})
		return
	}

	var job model.Job
	if err := ac.DB.First(&job, uint(jobID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job post: %s", err.Error()),
		})
		return
	}

	switch user.Role {
	case model.RoleCompany:
		if job.CompanyID != user.ID {
			c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "You do not own this job post"})
			return
		}
	case model.RoleSpecialist:
		if !ac.assignmentReleasedTo(c, job.ID, user.ID) {
			return
		}
	case model.RoleCandidate:
		var own []model.Application
		if err := ac.DB.Where("job_id = ? AND candidate_id = ?", job.ID, user.ID).Find(&own).Error; err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to fetch applications"})
			return
		}
		c.JSON(http.StatusOK, own)
		return
	}

	apps, err := ac.Lifecycle.ListApplications(c.Request.Context(), job.ID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

// transition runs one guarded status move identified by the path id.
func (ac *ApplicationController) transition(c *gin.Context, op func(ctx context.Context, id uint) (model.Application, error)) {
	id, ok := pathID(c)
	if !ok {
		return
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
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid application ID"})
		return 0, false
	}
	return uint(id), true
}

// callerOwnsAssignment rejects specialists acting on applications of jobs
// whose assignment was not released to them. Admin bypasses the check.
func (ac *ApplicationController) callerOwnsAssignment(c *gin.Context) bool {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return false
	}
	if user.Role == model.RoleAdmin {
		return true
	}

	app, ok := ac.loadApplication(c)
	if !ok {
		return false
	}

	return ac.assignmentReleasedTo(c, app.JobID, user.ID)
}

// callerOwnsJob rejects companies acting on applications of jobs they do not
// own. Admin bypasses the check.
func (ac *ApplicationController) callerOwnsJob(c *gin.Context) bool {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return false
	}
	if user.Role == model.RoleAdmin {
		return true
	}

	app, ok := ac.loadApplication(c)
	if !ok {
		return false
	}

	var job model.Job
	if err := ac.DB.First(&job, app.JobID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to retrieve job post"})
		return false
	}
	if job.CompanyID != user.ID {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "You do not own this job post"})
		return false
	}
	return true
}

func (ac *ApplicationController) loadApplication(c *gin.Context) (model.Application, bool) {
	id, ok := pathID(c)
	if !ok {
		return model.Application{}, false
	}

	var app model.Application
	if err := ac.DB.First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return model.Application{}, false
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to retrieve application"})
		return model.Application{}, false
	}
	return app, true
}

func (ac *ApplicationController) assignmentReleasedTo(c *gin.Context, jobID uint, specialistID uuid.UUID) bool {
	assignment, err := ac.Lifecycle.AssignmentForJob(c.Request.Context(), jobID)
	if err != nil {
		controller.RespondError(c, err)
		return false
	}
	if !assignment.Released() || assignment.SpecialistID == nil || *assignment.SpecialistID != specialistID {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "This job was not assigned to you"})
		return false
	}
	return true
}
