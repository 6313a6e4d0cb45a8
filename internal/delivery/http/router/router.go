// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"mentorhub/internal/delivery/http/middleware"
	"mentorhub/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/users")
	{
		// Registration and login are the only unauthenticated operations.
		userGroup.POST("", r.accountHandler.Register)
		userGroup.POST("/login", r.accountHandler.Login)

		protected := userGroup.Group("")
		protected.Use(r.authMiddleware.Authenticate)
		{
			protected.GET("/:id", r.accountHandler.GetByID)
			protected.GET("/email/:email", r.accountHandler.GetByEmail)
			protected.PUT("/:id", r.accountHandler.Update)
		}
	}
}
