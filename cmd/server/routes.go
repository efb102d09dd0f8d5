package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"pi-verify.backend/internal/interfaces/http/handlers"
	"pi-verify.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	verificationHandler *handlers.VerificationHandler
	// authMiddleware is nil in the demo profile; verification routes are
	// then open.
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	if d.authMiddleware != nil {
		v1.Use(d.authMiddleware)
	}
	{
		v1.POST("/verify-business", middleware.IdempotencyMiddleware(), d.verificationHandler.VerifyBusiness)
		v1.GET("/verifications", d.verificationHandler.ListVerifications)
		v1.GET("/verifications/:walletAddress", d.verificationHandler.GetVerification)
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "pi-verify-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
