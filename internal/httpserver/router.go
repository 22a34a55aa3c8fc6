package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DragosAvidal/ADworktracker/internal/handler"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *handler.AuthHandler,
	activityHandler *handler.ActivityHandler,
	leaveHandler *handler.LeaveHandler,
	expenseHandler *handler.ExpenseHandler,
	reportHandler *handler.ReportHandler,
	exportHandler *handler.ExportHandler,
	dashboardHandler *handler.DashboardHandler,
	jwtSecret string,
) *Router {
	r := gin.Default()
	r.Use(MetricsMiddleware())

	// Public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected
	api := r.Group("/api")
	api.Use(AuthMiddleware(jwtSecret))
	{
		api.GET("/dashboard", dashboardHandler.Summary)

		api.GET("/activities", activityHandler.List)
		api.POST("/activities", activityHandler.Create)
		api.GET("/activities/:id", activityHandler.Get)
		api.DELETE("/activities/:id", activityHandler.Delete)

		api.GET("/leaves", leaveHandler.List)
		api.POST("/leaves", leaveHandler.Create)
		api.DELETE("/leaves/:id", leaveHandler.Delete)

		api.GET("/expenses", expenseHandler.List)
		api.POST("/expenses", expenseHandler.Create)
		api.DELETE("/expenses/:id", expenseHandler.Delete)

		api.GET("/reports/filters", reportHandler.Filters)
		api.POST("/reports/weekly", reportHandler.Weekly)
		api.POST("/reports/monthly", reportHandler.Monthly)
		api.POST("/reports/client", reportHandler.Client)
		api.POST("/reports/project", reportHandler.Project)

		api.GET("/export/activities/:format", exportHandler.Activities)
		api.GET("/export/expenses/:format", exportHandler.Expenses)

		api.GET("/profile", authHandler.Profile)
		api.POST("/password", authHandler.UpdatePassword)
		api.DELETE("/account", authHandler.DeleteAccount)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
