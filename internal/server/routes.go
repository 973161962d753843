// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"OpenHire-backend/internal/auth"
	"OpenHire-backend/internal/controller/application"
	"OpenHire-backend/internal/controller/category"
	"OpenHire-backend/internal/controller/company"
	"OpenHire-backend/internal/controller/job"
	"OpenHire-backend/internal/middleware"
	"OpenHire-backend/internal/model"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrigins := strings.Split(allowOriginsStr, ",")

	localAuth := auth.NewLocalAuthHandler(s.db)
	jobs := job.NewController(s.db)
	applications := application.NewController(s.db)
	categories := category.NewController(s.db)
	companies := company.NewController(s.db)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.EnvRateLimitMiddleware())

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("login", localAuth.LoginHandler)
			authRoute.POST("register", localAuth.RegisterHandler)
		}

		// Public listing routes
		v1.GET("/jobs/search", jobs.SearchJobs)
		v1.GET("/jobs/:id", jobs.GetJobByID)
		v1.GET("/categories", categories.ListCategories)
		v1.GET("/companies/:company_id", companies.GetCompanyByID)

		needAuth := v1.Group("")
		{
			needAuth.Use(middleware.RequireAuth(s.db))

			// Employer-owned mutations
			needEmployer := needAuth.Group("")
			{
				needEmployer.Use(middleware.CheckRole(model.RoleEmployer, model.RoleAdmin))
				needEmployer.POST("jobs", middleware.SizeLimit(1<<20), jobs.CreateJob)
				needEmployer.PATCH("jobs/:id", middleware.SizeLimit(1<<20), jobs.EditJob)
				needEmployer.DELETE("jobs/:id", jobs.DeleteJob)
			}

			// Seeker actions
			needSeeker := needAuth.Group("")
			{
				needSeeker.Use(middleware.CheckRole(model.RoleSeeker))
				needSeeker.POST("jobs/:id/apply", applications.ApplyToJob)
				needSeeker.POST("jobs/:id/save", applications.SaveJob)
				needSeeker.DELETE("jobs/:id/save", applications.UnsaveJob)
				needSeeker.GET("applications", applications.ListMyApplications)
			}

			needAdmin := needAuth.Group("")
			{
				needAdmin.Use(middleware.CheckRole(model.RoleAdmin))
				needAdmin.PATCH("companies/:company_id/verify", companies.VerifyCompany)
			}
		}
	}

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *Server) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.db.Health())
}
