// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pos-payments/backend/internal/integration/entrypoint/controller"
	"github.com/pos-payments/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	paymentsController *controller.PaymentsController
	ordersController   *controller.OrdersController
	exportController   *controller.ExportController
	exportRateLimiter  *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	paymentsController *controller.PaymentsController,
	ordersController *controller.OrdersController,
	exportController *controller.ExportController,
	exportRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:   healthController,
		paymentsController: paymentsController,
		ordersController:   ordersController,
		exportController:   exportController,
		exportRateLimiter:  exportRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Payment aggregation routes
		if r.paymentsController != nil {
			payments := v1.Group("/payments")
			{
				payments.GET("", r.paymentsController.List)
				payments.GET("/summary", r.paymentsController.GetSummary)
				payments.GET("/by-method", r.paymentsController.GetMethodBreakdown)

				// Export route (only setup if export controller is available)
				if r.exportController != nil && r.exportRateLimiter != nil {
					payments.POST("/export", r.exportRateLimiter.Middleware(), r.exportController.ExportPayments)
				}
			}
		}

		// Purchase order routes
		if r.ordersController != nil {
			purchaseOrders := v1.Group("/purchase-orders")
			{
				purchaseOrders.GET("/payment-states", r.ordersController.ListPaymentStates)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
