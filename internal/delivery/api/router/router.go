// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"locator/internal/delivery/api/middleware"
	"locator/internal/delivery/api/router/handler"
	"locator/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SearchHandler     *handler.SearchHandler
	SchedulingHandler *handler.SchedulingHandler
	ProviderHandler   *handler.ProviderHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler     *handler.SearchHandler
	schedulingHandler *handler.SchedulingHandler
	providerHandler   *handler.ProviderHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler:     params.SearchHandler,
		schedulingHandler: params.SchedulingHandler,
		providerHandler:   params.ProviderHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public directory routes
	providersGroup := apiV1.Group("/providers")
	{
		providersGroup.GET("/nearby", r.searchHandler.Nearby)
		providersGroup.GET("/search", r.searchHandler.Search)
		providersGroup.GET("/:id/slots", r.schedulingHandler.Slots)
	}

	// Appointment routes require authentication
	appointmentsGroup := apiV1.Group("/appointments")
	appointmentsGroup.Use(r.authMiddleware.Authenticate)
	{
		appointmentsGroup.POST("", r.schedulingHandler.CreateAppointment)
		appointmentsGroup.GET("/:id", r.schedulingHandler.GetAppointment)
		appointmentsGroup.POST("/:id/cancel", r.schedulingHandler.CancelAppointment)
		appointmentsGroup.PATCH("/:id/status", r.schedulingHandler.UpdateStatus,
			r.authMiddleware.RequireRoles(entity.RoleProvider, entity.RoleAdmin))
	}

	// Directory administration requires the admin role
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRoles(entity.RoleAdmin))
	{
		adminGroup.GET("/providers/:id", r.providerHandler.GetProvider)
		adminGroup.PUT("/providers/:id", r.providerHandler.UpsertProvider)
	}
}
