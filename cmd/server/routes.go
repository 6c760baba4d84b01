package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"homeservice.backend/internal/config"
	"homeservice.backend/internal/interfaces/http/handlers"
	"homeservice.backend/internal/interfaces/http/middleware"
	"homeservice.backend/pkg/metrics"
)

const (
	serviceName    = "homeservice-backend"
	serviceVersion = "0.1.0"
)

type routeDeps struct {
	userHandler           *handlers.UserHandler
	workerHandler         *handlers.WorkerHandler
	specializationHandler *handlers.SpecializationHandler
	liveLocationHandler   *handlers.LiveLocationHandler
	orderHandler          *handlers.OrderHandler
	transactionHandler    *handlers.TransactionHandler
	reviewHandler         *handlers.ReviewHandler
	billingHandler        *handlers.BillingHandler
	webhookHandler        *handlers.IdentityWebhookHandler
	socketHandler         *handlers.SocketHandler
	authMiddleware        gin.HandlerFunc
}

func newRouter(cfg *config.Config, d routeDeps, verifier middleware.TokenVerifier) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware("/health", "/metrics"))
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	if d.authMiddleware == nil {
		d.authMiddleware = middleware.IdentityAuthMiddleware(verifier)
	}

	registerHealthRoute(r)
	registerMetricsRoute(r)
	if d.socketHandler != nil {
		r.GET("/ws", d.socketHandler.Serve)
	}
	registerAPIV1Routes(r, d)
	return r
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Identity provider webhooks are signed, not bearer authenticated
		webhooks := v1.Group("/webhooks")
		{
			webhooks.POST("/identity", d.webhookHandler.HandleWebhook)
		}

		api := v1.Group("")
		api.Use(d.authMiddleware)

		users := api.Group("/users")
		{
			users.POST("", d.userHandler.CreateUser)
			users.GET("", d.userHandler.ListUsers)
			users.GET("/email/:email", d.userHandler.GetUserByEmail)
			users.GET("/:id", d.userHandler.GetUser)
			users.PUT("/:id", d.userHandler.UpdateUser)
			users.DELETE("/:id", d.userHandler.DeleteUser)
		}

		workers := api.Group("/workers")
		{
			workers.POST("", d.workerHandler.CreateWorker)
			workers.GET("", d.workerHandler.ListWorkers)
			workers.GET("/email/:email", d.workerHandler.GetWorkerByEmail)
			workers.GET("/:id", d.workerHandler.GetWorker)
			workers.PUT("/:id", d.workerHandler.UpdateWorker)
			workers.PATCH("/:id/availability", d.workerHandler.SetAvailability)
			workers.DELETE("/:id", d.workerHandler.DeleteWorker)
		}

		specs := api.Group("/specializations")
		{
			specs.POST("", d.specializationHandler.CreateSpecialization)
			specs.GET("", d.specializationHandler.ListSpecializations)
			specs.GET("/worker/:workerId", d.specializationHandler.ListByWorker)
			specs.GET("/workers/:category", d.specializationHandler.ListWorkersByCategory)
			specs.GET("/:id", d.specializationHandler.GetSpecialization)
			specs.PUT("/:id", d.specializationHandler.UpdateSpecialization)
			specs.DELETE("/:id", d.specializationHandler.DeleteSpecialization)
		}

		locations := api.Group("/live-locations")
		{
			locations.POST("", d.liveLocationHandler.CreateLiveLocation)
			locations.GET("", d.liveLocationHandler.ListLiveLocations)
			locations.GET("/:workerId", d.liveLocationHandler.ListByWorker)
			locations.GET("/:workerId/latest", d.liveLocationHandler.Latest)
			locations.DELETE("/:id", d.liveLocationHandler.DeleteLiveLocation)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", middleware.IdempotencyMiddleware(), d.orderHandler.CreateOrder)
			orders.GET("", d.orderHandler.ListOrders)
			orders.GET("/user/:userId", d.orderHandler.ListByUser)
			orders.GET("/worker/:workerId", d.orderHandler.ListByWorker)
			orders.GET("/:id", d.orderHandler.GetOrder)
			orders.PATCH("/:id/status", d.orderHandler.UpdateOrderStatus)
			orders.DELETE("/:id", d.orderHandler.DeleteOrder)
		}

		txns := api.Group("/transactions")
		{
			txns.POST("", middleware.IdempotencyMiddleware(), d.transactionHandler.CreateTransaction)
			txns.GET("", d.transactionHandler.ListTransactions)
			txns.GET("/order/:orderId", d.transactionHandler.ListByOrder)
			txns.GET("/user/:userId", d.transactionHandler.ListByUser)
			txns.GET("/:id", d.transactionHandler.GetTransaction)
			txns.DELETE("/:id", d.transactionHandler.DeleteTransaction)
		}

		reviews := api.Group("/reviews")
		{
			reviews.POST("", d.reviewHandler.CreateReview)
			reviews.GET("", d.reviewHandler.ListReviews)
			reviews.GET("/order/:orderId", d.reviewHandler.ListByOrder)
			reviews.GET("/worker/:workerId", d.reviewHandler.ListByWorker)
			reviews.GET("/:id", d.reviewHandler.GetReview)
			reviews.DELETE("/:id", d.reviewHandler.DeleteReview)
		}

		// Billing config is public so the checkout page can load the publishable key
		v1.GET("/billing/config", d.billingHandler.GetConfig)

		billing := api.Group("/billing")
		{
			billing.POST("/payments", middleware.IdempotencyMiddleware(), d.billingHandler.CreatePaymentSession)
			billing.POST("/subscriptions", d.billingHandler.CreateSubscriptionSession)
			billing.POST("/subscriptions/cancel", d.billingHandler.CancelSubscription)
			billing.GET("/subscriptions/:workerId", d.billingHandler.GetSubscription)
		}
	}
}
