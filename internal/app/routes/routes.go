package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/karthik/printdesk/internal/app/controllers"
	"github.com/karthik/printdesk/internal/middleware"
	"github.com/karthik/printdesk/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	orderController *controllers.OrderController,
	statsController *controllers.StatsController,
	studentController *controllers.StudentController,
	paymentController *controllers.PaymentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public Auth routes ---
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authController.RegisterStudent)
		authRoutes.POST("/login", authController.StudentLogin)
		authRoutes.POST("/admin/login", authController.AdminLogin)
	}

	// --- Public order intake ---
	// Walk-up submissions don't require an account, so intake and the
	// student's own order views stay public.
	orders := api.Group("/orders")
	{
		orders.POST("", orderController.CreateOrder)
		orders.GET("/student", orderController.GetStudentOrders)
		orders.GET("/:id", orderController.GetOrderByID)
	}

	// Online checkout happens before the order is submitted
	api.POST("/payments", paymentController.CreatePayment)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/students/:id", studentController.GetProfile)

		// Operator-only routes
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(auth.RoleAdmin))
		{
			admin.GET("/orders", orderController.GetAllOrders)
			admin.POST("/orders/:id/complete", orderController.CompleteOrder)
			admin.POST("/orders/:id/print", orderController.PrintOrder)

			admin.GET("/stats", statsController.GetStats)
			admin.GET("/payments/daily", statsController.GetDailyPayments)
			admin.GET("/payments/range", statsController.GetRangedPayments)

			admin.POST("/admin/reset", orderController.ResetLedger)
		}
	}
}
