// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "github.com/Inakat-Human-Resources/inakat-sub004/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/auth"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/controller/application"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/controller/assignment"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/controller/inbox"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/controller/jobpost"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/controller/pricingquote"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/middleware"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/model"
)

// Per-action admission budgets. Overridable through env so staging can be
// exercised without waiting out production windows.
func envBudget(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// RegisterRoutes will register each http endpoint routes to bound MyServer instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	lAuth := auth.NewLocalAuthHandler(s.DB)
	logout := auth.NewLogoutController(s.Blacklist)
	jobCtrl := jobpost.NewJobPostController(s.DB, s.Lifecycle)
	appCtrl := application.NewApplicationController(s.DB, s.Lifecycle)
	asgCtrl := assignment.NewAssignmentController(s.DB, s.Lifecycle)
	quoteCtrl := pricingquote.NewPricingQuoteController(s.Pricing)
	inboxCtrl := inbox.NewInboxController(s.Notifications)

	admitPost := middleware.Admit(s.Admission, "jobpost",
		envBudget("ADMIT_JOBPOST_MAX", 10), envBudget("ADMIT_JOBPOST_WINDOW", 3600))
	admitApply := middleware.Admit(s.Admission, "apply",
		envBudget("ADMIT_APPLY_MAX", 5), envBudget("ADMIT_APPLY_WINDOW", 3600))
	admitTransition := middleware.Admit(s.Admission, "transition",
		envBudget("ADMIT_TRANSITION_MAX", 60), envBudget("ADMIT_TRANSITION_WINDOW", 60))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins, // Add your frontend URL
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true, // Enable cookies/auth
	}))

	r.Use(middleware.EnvRateLimitMiddleware())

	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("login", lAuth.LocalLoginHandler)
			authRoute.POST("register", lAuth.LocalRegisterHandler)
		}

		// Anonymous applications carry only an email; authenticated
		// candidates get linked to their account inside the handler.
		v1.POST("/application", admitApply, appCtrl.ApplyHandler)

		needAuth := v1.Group("")
		{
			needAuth.Use(middleware.JwtBlacklistCheck(s.Blacklist), middleware.RequireAuth(s.DB))

			needAuth.POST("/auth/logout", logout.LogoutHandler)

			needAuth.GET("/pricing/quote", quoteCtrl.QuoteHandler)

			jobPostRoute := needAuth.Group("/jobpost")
			{
				jobPostRoute.GET("/:id", jobCtrl.GetPostByID)
				jobPostRoute.GET("", jobCtrl.GetPosts)
				jobPostRoute.DELETE("/:id", middleware.CheckRole(model.RoleCompany, model.RoleAdmin), jobCtrl.DeleteJobPost)
				jobPostRoute.POST("", middleware.CheckRole(model.RoleCompany), admitPost, jobCtrl.CreateJobPostHandler)
			}

			applicationRoute := needAuth.Group("/application")
			{
				applicationRoute.GET("", appCtrl.ListHandler)
				applicationRoute.POST("/inject", middleware.CheckRole(model.RoleAdmin), appCtrl.InjectHandler)

				applicationRoute.PATCH("/:id/review",
					middleware.CheckRole(model.RoleRecruiter, model.RoleAdmin), admitTransition, appCtrl.StartReviewHandler)
				applicationRoute.PATCH("/:id/forward-specialist",
					middleware.CheckRole(model.RoleRecruiter, model.RoleAdmin), admitTransition, appCtrl.ForwardToSpecialistHandler)
				applicationRoute.PATCH("/:id/start-evaluating",
					middleware.CheckRole(model.RoleSpecialist, model.RoleAdmin), admitTransition, appCtrl.StartEvaluatingHandler)
				applicationRoute.PATCH("/:id/forward-company",
					middleware.CheckRole(model.RoleSpecialist, model.RoleAdmin), admitTransition, appCtrl.ForwardToCompanyHandler)
				applicationRoute.PATCH("/:id/interviewed",
					middleware.CheckRole(model.RoleCompany, model.RoleAdmin), admitTransition, appCtrl.MarkInterviewedHandler)
				applicationRoute.PATCH("/:id/conclude",
					middleware.CheckRole(model.RoleCompany, model.RoleAdmin), admitTransition, appCtrl.ConcludeHandler)
			}

			assignmentRoute := needAuth.Group("/assignment")
			{
				assignmentRoute.GET("", middleware.CheckRole(model.RoleRecruiter, model.RoleSpecialist, model.RoleAdmin), asgCtrl.ListHandler)
				assignmentRoute.GET("/job/:job_id", middleware.CheckRole(model.RoleRecruiter, model.RoleAdmin), asgCtrl.GetByJobHandler)
				assignmentRoute.PATCH("/:id/release",
					middleware.CheckRole(model.RoleRecruiter, model.RoleAdmin), admitTransition, asgCtrl.ReleaseHandler)
				assignmentRoute.PATCH("/:id/start",
					middleware.CheckRole(model.RoleSpecialist, model.RoleAdmin), admitTransition, asgCtrl.StartHandler)
				assignmentRoute.PATCH("/:id/complete",
					middleware.CheckRole(model.RoleSpecialist, model.RoleAdmin), admitTransition, asgCtrl.CompleteHandler)
			}

			notificationRoute := needAuth.Group("/notification")
			{
				notificationRoute.GET("", inboxCtrl.ListHandler)
				notificationRoute.GET("/unread-count", inboxCtrl.UnreadCountHandler)
				notificationRoute.PATCH("/read", inboxCtrl.MarkReadHandler)
			}
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
