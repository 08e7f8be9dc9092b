// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"applyo/internal/delivery/http/middleware"
	"applyo/internal/delivery/http/router/handler"
	"applyo/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	ConsentHandler     *handler.ConsentHandler
	CompanyHandler     *handler.CompanyHandler
	ApplicationHandler *handler.ApplicationHandler
	DocumentHandler    *handler.DocumentHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	consentHandler     *handler.ConsentHandler
	companyHandler     *handler.CompanyHandler
	applicationHandler *handler.ApplicationHandler
	documentHandler    *handler.DocumentHandler
	identityMiddleware *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		consentHandler:     params.ConsentHandler,
		companyHandler:     params.CompanyHandler,
		applicationHandler: params.ApplicationHandler,
		documentHandler:    params.DocumentHandler,
		identityMiddleware: params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Identity is
// resolved from the headers the gateway injects; the exempt prefixes in the
// gateway configuration line up with the routes registered without Require.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.identityMiddleware.Resolve)

	apiV1.GET("/health", handler.HealthCheck)

	// Auth routes; login/signup/refresh are exempt at the gateway.
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignupCandidate)
		authGroup.POST("/login", r.authHandler.LoginCandidate)
		authGroup.POST("/company/signup", r.authHandler.SignupCompany)
		authGroup.POST("/company/login", r.authHandler.LoginCompany)
		authGroup.POST("/refresh", r.authHandler.Refresh)

		sessionGroup := authGroup.Group("")
		sessionGroup.Use(r.identityMiddleware.Require)
		{
			sessionGroup.POST("/logout", r.authHandler.Logout)
			sessionGroup.POST("/password", r.authHandler.ChangePassword)
		}
	}

	// Consent page fetch is keyed by the opaque token, no session needed.
	apiV1.GET("/consents/token/:token", r.consentHandler.GetConsentByToken)

	// Consent mediation routes.
	consentGroup := apiV1.Group("/consents")
	consentGroup.Use(r.identityMiddleware.Require)
	{
		candidateConsents := consentGroup.Group("")
		candidateConsents.Use(r.identityMiddleware.RequireUserType(entity.UserTypeCandidate))
		{
			candidateConsents.POST("/respond", r.consentHandler.RespondToConsent)
			candidateConsents.POST("/:id/revoke", r.consentHandler.RevokeConsent)
			candidateConsents.GET("/mine", r.consentHandler.ListMyConsents)
		}

		companyConsents := consentGroup.Group("")
		companyConsents.Use(r.identityMiddleware.RequireUserType(entity.UserTypeCompany))
		{
			companyConsents.POST("", r.consentHandler.CreateConsent)
			companyConsents.GET("", r.consentHandler.ListCompanyConsents)
		}
	}

	// Company profile and API key management.
	companyGroup := apiV1.Group("/company")
	companyGroup.Use(r.identityMiddleware.Require)
	companyGroup.Use(r.identityMiddleware.RequireUserType(entity.UserTypeCompany))
	{
		companyGroup.GET("/profile", r.companyHandler.GetProfile)
		companyGroup.POST("/api-keys", r.companyHandler.CreateAPIKey)
		companyGroup.GET("/api-keys", r.companyHandler.ListAPIKeys)
		companyGroup.POST("/api-keys/:id/revoke", r.companyHandler.RevokeAPIKey)
		companyGroup.DELETE("/api-keys/:id", r.companyHandler.DeleteAPIKey)
	}

	// Job application routes.
	applicationGroup := apiV1.Group("/applications")
	applicationGroup.Use(r.identityMiddleware.Require)
	{
		applicationGroup.GET("/:id", r.applicationHandler.GetApplication)

		candidateApplications := applicationGroup.Group("")
		candidateApplications.Use(r.identityMiddleware.RequireUserType(entity.UserTypeCandidate))
		{
			candidateApplications.POST("", r.applicationHandler.CreateApplication)
			candidateApplications.POST("/:id/withdraw", r.applicationHandler.Withdraw)
			candidateApplications.GET("/mine", r.applicationHandler.ListMyApplications)
		}

		companyApplications := applicationGroup.Group("")
		companyApplications.Use(r.identityMiddleware.RequireUserType(entity.UserTypeCompany))
		{
			companyApplications.PUT("/:id/status", r.applicationHandler.UpdateStatus)
			companyApplications.GET("", r.applicationHandler.ListCompanyApplications)
		}
	}

	// Candidate document routes.
	documentGroup := apiV1.Group("/documents")
	documentGroup.Use(r.identityMiddleware.Require)
	documentGroup.Use(r.identityMiddleware.RequireUserType(entity.UserTypeCandidate))
	{
		documentGroup.POST("", r.documentHandler.Upload)
		documentGroup.GET("", r.documentHandler.List)
		documentGroup.GET("/:id", r.documentHandler.Download)
		documentGroup.DELETE("/:id", r.documentHandler.Delete)
	}
}
