// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"smartlunch/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	accounts := e.Group("/accounts")
	{
		accounts.GET("", r.accountHandler.ListAccounts)
		accounts.POST("", r.accountHandler.Login)
		accounts.DELETE("/:email", r.accountHandler.Delete)
		accounts.POST("/:email/setup", r.accountHandler.Setup)
		accounts.POST("/:email/reauth", r.accountHandler.Reauth)
		accounts.POST("/:email/refresh", r.accountHandler.Refresh)
		accounts.GET("/:email/session", r.accountHandler.Session)
		accounts.GET("/:email/funding", r.accountHandler.Funding)
		accounts.GET("/:email/options/:level", r.accountHandler.Options)
		accounts.PUT("/:email/selection/:level", r.accountHandler.Select)
		accounts.PUT("/:email/server-default-place", r.accountHandler.SetServerDefaultPlace)
	}
}
