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

type submissionReq struct {
	TeamID   string   `json:"team_id"`
	Title    *string  `json:"title"`
	Keywords []string `json:"keywords"`
}

type submissionView struct {
	ID        uint64    `json:"id"`
	TeamID    string    `json:"team_id"`
	Title     *string   `json:"title,omitempty"`
	Keywords  []string  `json:"keywords"`
	CreatedAt time.Time `json:"created_at"`
}

// AddSubmission records one team's submission with its extracted keywords.
// An empty keyword list is accepted: such teams still take part in mentor
// allocation, they just match with score zero.
func (h *OrganizerHandler) AddSubmission(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	var req submissionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.TeamID = strings.TrimSpace(req.TeamID)
	req.Keywords = cleanTags(req.Keywords)
	if req.TeamID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "team_id required"})
	}

	s := &model.Submission{
		HackathonID: hk.ID,
		TeamID:      req.TeamID,
		Title:       req.Title,
		Keywords:    req.Keywords,
	}
	if err := h.Submissions.Create(c.Request().Context(), s); err != nil {
		if errors.Is(err, repository.ErrSubmissionExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "team already has a submission"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create submission failed"})
	}
	return c.JSON(http.StatusCreated, submissionView{
		ID: s.ID, TeamID: s.TeamID, Title: s.Title, Keywords: s.Keywords, CreatedAt: s.CreatedAt,
	})
}

// ListSubmissions returns the hackathon's submissions in insertion order.
func (h *OrganizerHandler) ListSubmissions(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	items, err := h.Submissions.ListByHackathon(c.Request().Context(), hk.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]submissionView, 0, len(items))
	for _, s := range items {
		out = append(out, submissionView{
			ID: s.ID, TeamID: s.TeamID, Title: s.Title, Keywords: s.Keywords, CreatedAt: s.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"submissions": out})
}
