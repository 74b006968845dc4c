package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hackathon-manager/internal/model"
	"github.com/iliyamo/hackathon-manager/internal/repository"
)

// PublicHandler serves unauthenticated browse endpoints. Responses are
// cached by the Redis cache middleware.
type PublicHandler struct {
	Hackathons *repository.HackathonRepo
}

func NewPublicHandler(hackathons *repository.HackathonRepo) *PublicHandler {
	if hackathons == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{Hackathons: hackathons}
}

// ListHackathons returns all published events, soonest first.
func (h *PublicHandler) ListHackathons(c echo.Context) error {
	items, err := h.Hackathons.ListPublished(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]hackathonView, 0, len(items))
	for _, hk := range items {
		out = append(out, toHackathonView(hk))
	}
	return c.JSON(http.StatusOK, echo.Map{"hackathons": out})
}

// GetHackathon returns one event if it is published. Drafts stay invisible
// to guests, answering 404 just like a missing id.
func (h *PublicHandler) GetHackathon(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hackathon id"})
	}
	hk, err := h.Hackathons.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrHackathonNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hackathon not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if hk.Status == model.HackathonDraft {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "hackathon not found"})
	}
	return c.JSON(http.StatusOK, toHackathonView(hk))
}
