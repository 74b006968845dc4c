package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hackathon-manager/internal/handler"
	"github.com/iliyamo/hackathon-manager/internal/middleware"
)

// RegisterOrganizer registers ORGANIZER-scoped endpoints under /v1.
// All routes require a valid JWT and the ORGANIZER role.
func RegisterOrganizer(e *echo.Echo, o *handler.OrganizerHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ORGANIZER"),
	)

	// ---- Hackathons ----
	g.POST("/hackathons", o.CreateHackathon)
	// NOTE: GET /v1/hackathons and GET /v1/hackathons/:id belong to the
	// public browse API, which only shows published events. The organizer's
	// own view, drafts included, lives under /v1/me.
	g.GET("/me/hackathons", o.ListHackathons)
	g.GET("/me/hackathons/:id", o.GetHackathon)
	g.PUT("/hackathons/:id", o.UpdateHackathon)
	g.PATCH("/hackathons/:id", o.UpdateHackathon)
	g.DELETE("/hackathons/:id", o.DeleteHackathon)

	// ---- Mentors ----
	g.POST("/hackathons/:id/mentors", o.AddMentor)
	g.GET("/hackathons/:id/mentors", o.ListMentors)
	g.DELETE("/hackathons/:id/mentors/:mentorID", o.DeleteMentor)

	// ---- Submissions ----
	g.POST("/hackathons/:id/submissions", o.AddSubmission)
	g.GET("/hackathons/:id/submissions", o.ListSubmissions)

	// ---- Rooms and teams (seating input) ----
	g.POST("/hackathons/:id/rooms", o.AddRoom)
	g.GET("/hackathons/:id/rooms", o.ListRooms)
	g.DELETE("/hackathons/:id/rooms/:roomID", o.DeleteRoom)
	g.POST("/hackathons/:id/teams", o.AddTeam)
	g.GET("/hackathons/:id/teams", o.ListTeams)

	// ---- Allocation runs and exports ----
	g.POST("/hackathons/:id/allocations/mentors", o.RunMentorAllocation)
	g.POST("/hackathons/:id/allocations/seating", o.RunSeatingAllocation)
	g.GET("/hackathons/:id/allocations/mentors/export", o.ExportMentorAllocationsCSV)
	g.GET("/hackathons/:id/allocations/seating/export", o.ExportSeatingCSV)

	// ---- Check-in ----
	g.POST("/hackathons/:id/checkin", o.ScanCheckin)
	g.DELETE("/hackathons/:id/checkin/session", o.ResetCheckinSession)
	g.GET("/hackathons/:id/registrations", o.ListRegistrations)
}
