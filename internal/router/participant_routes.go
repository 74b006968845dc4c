package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hackathon-manager/internal/handler"
	"github.com/iliyamo/hackathon-manager/internal/middleware"
)

// RegisterParticipant registers PARTICIPANT-scoped endpoints under /v1.
func RegisterParticipant(e *echo.Echo, p *handler.ParticipantHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("PARTICIPANT"),
	)

	g.POST("/hackathons/:id/registrations", p.Register)
	g.GET("/hackathons/:id/registrations/me", p.MyRegistration)
}
