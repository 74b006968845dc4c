package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hackathon-manager/internal/model"
	"github.com/iliyamo/hackathon-manager/internal/repository"
	"github.com/iliyamo/hackathon-manager/internal/utils"
)

type mentorReq struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Skills []string `json:"skills"`
}

type mentorView struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
}

// cleanTags trims entries, drops empties and strips the comma used by the
// storage column so a tag can never smuggle a separator.
func cleanTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(strings.ReplaceAll(s, ",", " "))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// AddMentor registers a mentor for an owned hackathon.
func (h *OrganizerHandler) AddMentor(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	var req mentorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Skills = cleanTags(req.Skills)
	if req.Name == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and email required"})
	}
	if !utils.ValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email"})
	}
	if len(req.Skills) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "at least one skill required"})
	}

	m := &model.Mentor{
		HackathonID: hk.ID,
		Name:        req.Name,
		Email:       req.Email,
		Skills:      req.Skills,
	}
	if err := h.Mentors.Create(c.Request().Context(), m); err != nil {
		if errors.Is(err, repository.ErrMentorEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "mentor email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create mentor failed"})
	}
	return c.JSON(http.StatusCreated, mentorView{
		ID: m.ID, Name: m.Name, Email: m.Email, Skills: m.Skills, CreatedAt: m.CreatedAt,
	})
}

// ListMentors returns the hackathon's mentors in registration order.
func (h *OrganizerHandler) ListMentors(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	items, err := h.Mentors.ListByHackathon(c.Request().Context(), hk.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]mentorView, 0, len(items))
	for _, m := range items {
		out = append(out, mentorView{
			ID: m.ID, Name: m.Name, Email: m.Email, Skills: m.Skills, CreatedAt: m.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"mentors": out})
}

// DeleteMentor removes one mentor from an owned hackathon.
func (h *OrganizerHandler) DeleteMentor(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	mentorID, err := pathID(c, "mentorID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid mentor id"})
	}
	if err := h.Mentors.DeleteByIDAndHackathon(c.Request().Context(), mentorID, hk.ID); err != nil {
		if errors.Is(err, repository.ErrMentorNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "mentor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
