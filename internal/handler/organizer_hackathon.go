package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hackathon-manager/internal/model"
	"github.com/iliyamo/hackathon-manager/internal/repository"
)

type hackathonReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Venue       *string `json:"venue"`
	StartsAt    string  `json:"starts_at"` // RFC 3339
	EndsAt      string  `json:"ends_at"`   // RFC 3339
	Status      string  `json:"status"`    // optional on update
}

// parseWindow validates the starts_at/ends_at pair.
func parseWindow(startsAt, endsAt string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startsAt)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid starts_at, want RFC 3339")
	}
	end, err := time.Parse(time.RFC3339, endsAt)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid ends_at, want RFC 3339")
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, errors.New("ends_at must be after starts_at")
	}
	return start.UTC(), end.UTC(), nil
}

func validStatus(s string) bool {
	switch s {
	case model.HackathonDraft, model.HackathonPublished, model.HackathonFinished:
		return true
	}
	return false
}

// CreateHackathon creates a new event in DRAFT status.
func (h *OrganizerHandler) CreateHackathon(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req hackathonReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	start, end, err := parseWindow(req.StartsAt, req.EndsAt)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	hk := &model.Hackathon{
		OrganizerID: uid,
		Name:        req.Name,
		Description: req.Description,
		Venue:       req.Venue,
		StartsAt:    start,
		EndsAt:      end,
		Status:      model.HackathonDraft,
	}
	if err := h.Hackathons.Create(c.Request().Context(), hk); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create hackathon failed"})
	}
	return c.JSON(http.StatusCreated, toHackathonView(hk))
}

// ListHackathons returns all events owned by the organizer.
func (h *OrganizerHandler) ListHackathons(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Hackathons.ListByOrganizer(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]hackathonView, 0, len(items))
	for _, hk := range items {
		out = append(out, toHackathonView(hk))
	}
	return c.JSON(http.StatusOK, echo.Map{"hackathons": out})
}

// GetHackathon returns one owned event.
func (h *OrganizerHandler) GetHackathon(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHackathonView(hk))
}

// UpdateHackathon replaces mutable fields of an owned event, including the
// DRAFT -> PUBLISHED -> FINISHED status moves.
func (h *OrganizerHandler) UpdateHackathon(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	var req hackathonReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	start, end, err := parseWindow(req.StartsAt, req.EndsAt)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	status := hk.Status
	if req.Status != "" {
		status = strings.ToUpper(strings.TrimSpace(req.Status))
		if !validStatus(status) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
		}
	}

	hk.Name = req.Name
	hk.Description = req.Description
	hk.Venue = req.Venue
	hk.StartsAt = start
	hk.EndsAt = end
	hk.Status = status
	if err := h.Hackathons.UpdateByIDAndOrganizer(c.Request().Context(), hk); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	fresh, err := h.Hackathons.GetByID(c.Request().Context(), hk.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reload failed"})
	}
	return c.JSON(http.StatusOK, toHackathonView(fresh))
}

// DeleteHackathon removes an owned event. Events with registrations are
// protected and answer 409.
func (h *OrganizerHandler) DeleteHackathon(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	uid, _ := getUserID(c)
	if err := h.Hackathons.DeleteByIDAndOrganizer(c.Request().Context(), hk.ID, uid); err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "hackathon has registrations"})
		case errors.Is(err, repository.ErrHackathonNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hackathon not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
