// Package router wires the HTTP surface to the feature handlers.
package router

import (
	"github.com/gin-gonic/gin"

	adminhandler "frs_backend/internal/feature/admin/transport/handler"
	frsmodelhandler "frs_backend/internal/feature/frsmodels/transport/handler"
	reporthandler "frs_backend/internal/feature/reports/transport/handler"
	userhandler "frs_backend/internal/feature/users/transport/handler"
	"frs_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine. authRequired is the session-resolving
// middleware applied to every protected route group.
func NewRouter(
	auth *userhandler.AuthHandler,
	account *userhandler.AccountHandler,
	models *frsmodelhandler.ModelHandler,
	reports *reporthandler.ReportHandler,
	admin *adminhandler.AdminHandler,
	authRequired gin.HandlerFunc,
) *gin.Engine {
	r := gin.Default()

	// Public routes
	r.GET("/healthz", handler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	// Every state-mutating or personal-data-reading route requires a live session
	protected := r.Group("/")
	protected.Use(authRequired)
	{
		protected.POST("/logout", auth.Logout)

		protected.GET("/account", account.Show)
		protected.PUT("/account", account.Update)
		protected.PUT("/account/password", account.ChangePassword)

		protected.POST("/models", models.Upload)
		protected.GET("/models", models.List)
		protected.GET("/models/:id", models.Get)

		protected.POST("/models/:id/predict", reports.Record)
		protected.GET("/models/:id/reports", reports.ListForModel)
		protected.GET("/reports/:id", reports.Get)
	}

	// Back-office CRUD for the optional admin front end. Role separation is a
	// deployment concern; the API itself only requires an authenticated user.
	adminGroup := r.Group("/admin")
	adminGroup.Use(authRequired)
	{
		adminGroup.GET("/users", admin.ListUsers)
		adminGroup.POST("/users", admin.CreateUser)
		adminGroup.GET("/users/:id", admin.GetUser)
		adminGroup.PUT("/users/:id", admin.UpdateUser)
		adminGroup.DELETE("/users/:id", admin.DeleteUser)

		adminGroup.GET("/models", admin.ListModels)
		adminGroup.GET("/models/:id", admin.GetModel)
		adminGroup.DELETE("/models/:id", admin.DeleteModel)

		adminGroup.GET("/reports", admin.ListReports)
		adminGroup.GET("/reports/:id", admin.GetReport)
		adminGroup.DELETE("/reports/:id", admin.DeleteReport)
	}

	return r
}
