package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hackathon-manager/internal/allocation"
	"github.com/iliyamo/hackathon-manager/internal/export"
	"github.com/iliyamo/hackathon-manager/internal/queue"
)

// allocationInputs loads the allocation engine's inputs for one hackathon
// and converts repository models to the engine's plain types. Insertion
// order is preserved, which the engine relies on for tie-breaking.
func (h *OrganizerHandler) mentorInputs(c echo.Context, hackathonID uint64) ([]allocation.Mentor, []allocation.Submission, error) {
	ctx := c.Request().Context()
	mentorRows, err := h.Mentors.ListByHackathon(ctx, hackathonID)
	if err != nil {
		return nil, nil, err
	}
	subRows, err := h.Submissions.ListByHackathon(ctx, hackathonID)
	if err != nil {
		return nil, nil, err
	}

	mentors := make([]allocation.Mentor, 0, len(mentorRows))
	for _, m := range mentorRows {
		mentors = append(mentors, allocation.Mentor{Name: m.Name, Email: m.Email, Skills: m.Skills})
	}
	subs := make([]allocation.Submission, 0, len(subRows))
	for _, s := range subRows {
		subs = append(subs, allocation.Submission{TeamID: s.TeamID, Keywords: s.Keywords})
	}
	return mentors, subs, nil
}

func (h *OrganizerHandler) seatingInputs(c echo.Context, hackathonID uint64) ([]allocation.Room, []allocation.Team, error) {
	ctx := c.Request().Context()
	roomRows, err := h.Rooms.ListByHackathon(ctx, hackathonID)
	if err != nil {
		return nil, nil, err
	}
	teamRows, err := h.Teams.ListByHackathon(ctx, hackathonID)
	if err != nil {
		return nil, nil, err
	}

	rooms := make([]allocation.Room, 0, len(roomRows))
	for _, r := range roomRows {
		rooms = append(rooms, allocation.Room{RoomNo: r.RoomNo, SeatsPerRow: r.SeatsPerRow, NumRows: r.NumRows})
	}
	teams := make([]allocation.Team, 0, len(teamRows))
	for _, t := range teamRows {
		teams = append(teams, allocation.Team{TeamSize: t.TeamSize})
	}
	return rooms, teams, nil
}

// RunMentorAllocation matches every submission to its best available
// mentor and returns the full allocation table. The run is stateless and
// deterministic: repeating it with the same inputs yields the same table.
func (h *OrganizerHandler) RunMentorAllocation(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	mentors, subs, err := h.mentorInputs(c, hk.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load inputs failed"})
	}
	if len(mentors) == 0 {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "no mentors registered"})
	}
	if len(subs) == 0 {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "no submissions recorded"})
	}

	records := allocation.AllocateMentors(mentors, subs)

	unmatched := 0
	for _, rec := range records {
		if rec.MatchScore == 0 {
			unmatched++
		}
	}
	h.publishAllocationEvent(c, hk.ID, "mentor", len(records), unmatched)

	return c.JSON(http.StatusOK, echo.Map{
		"hackathon_id": hk.ID,
		"allocations":  records,
		"unmatched":    unmatched,
	})
}

// RunSeatingAllocation packs every team into the configured rooms and
// returns one record per team, placed or not.
func (h *OrganizerHandler) RunSeatingAllocation(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	rooms, teams, err := h.seatingInputs(c, hk.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load inputs failed"})
	}
	if len(rooms) == 0 {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "no rooms configured"})
	}
	if len(teams) == 0 {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "no teams recorded"})
	}

	records := allocation.AllocateSeats(rooms, teams)

	unplaced := 0
	for _, rec := range records {
		if !rec.Placed() {
			unplaced++
		}
	}
	h.publishAllocationEvent(c, hk.ID, "seating", len(records), unplaced)

	return c.JSON(http.StatusOK, echo.Map{
		"hackathon_id": hk.ID,
		"allocations":  records,
		"unplaced":     unplaced,
	})
}

// ExportMentorAllocationsCSV re-runs the mentor allocation and streams the
// table as a CSV download. The engine is pure, so the export always matches
// what the JSON endpoint returned for the same data.
func (h *OrganizerHandler) ExportMentorAllocationsCSV(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	mentors, subs, err := h.mentorInputs(c, hk.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load inputs failed"})
	}
	records := allocation.AllocateMentors(mentors, subs)

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="mentor_allocations_%d.csv"`, hk.ID))
	c.Response().WriteHeader(http.StatusOK)
	return export.WriteMentorAllocations(c.Response(), records)
}

// ExportSeatingCSV re-runs the seating allocation and streams it as CSV.
func (h *OrganizerHandler) ExportSeatingCSV(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	rooms, teams, err := h.seatingInputs(c, hk.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load inputs failed"})
	}
	records := allocation.AllocateSeats(rooms, teams)

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="seating_%d.csv"`, hk.ID))
	c.Response().WriteHeader(http.StatusOK)
	return export.WriteSeatAllocations(c.Response(), records)
}

// publishAllocationEvent emits allocation.completed on a best-effort basis.
// A broker outage must never fail the allocation response.
func (h *OrganizerHandler) publishAllocationEvent(c echo.Context, hackathonID uint64, kind string, records, unmatched int) {
	_ = h.publishAllocation(c.Request().Context(), queue.AllocationCompletedEvent{
		HackathonID: hackathonID,
		Kind:        kind,
		Records:     records,
		Unmatched:   unmatched,
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
