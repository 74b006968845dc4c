package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hackathon-manager/internal/model"
	"github.com/iliyamo/hackathon-manager/internal/repository"
)

// ParticipantHandler serves registration endpoints for participant accounts.
type ParticipantHandler struct {
	Hackathons    *repository.HackathonRepo
	Registrations *repository.RegistrationRepo
}

func NewParticipantHandler(hackathons *repository.HackathonRepo, registrations *repository.RegistrationRepo) *ParticipantHandler {
	if hackathons == nil || registrations == nil {
		panic("nil repository passed to NewParticipantHandler")
	}
	return &ParticipantHandler{Hackathons: hackathons, Registrations: registrations}
}

type registrationReq struct {
	TeamName string `json:"team_name"`
}

type registrationView struct {
	ID          uint64     `json:"id"`
	HackathonID uint64     `json:"hackathon_id"`
	TeamName    string     `json:"team_name"`
	CheckinCode string     `json:"checkin_code"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toRegistrationView(reg *model.Registration) registrationView {
	return registrationView{
		ID:          reg.ID,
		HackathonID: reg.HackathonID,
		TeamName:    reg.TeamName,
		CheckinCode: reg.CheckinCode,
		CheckedInAt: reg.CheckedInAt,
		CreatedAt:   reg.CreatedAt,
	}
}

// Register signs the authenticated participant up for a published hackathon.
// The response carries the check-in code the client renders as a QR code.
func (h *ParticipantHandler) Register(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	hackathonID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hackathon id"})
	}
	var req registrationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.TeamName = strings.TrimSpace(req.TeamName)
	if req.TeamName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "team_name required"})
	}

	ctx := c.Request().Context()
	hk, err := h.Hackathons.GetByID(ctx, hackathonID)
	if err != nil {
		if errors.Is(err, repository.ErrHackathonNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hackathon not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if hk.Status != model.HackathonPublished {
		return c.JSON(http.StatusConflict, echo.Map{"error": "hackathon is not open for registration"})
	}

	reg := &model.Registration{
		HackathonID: hk.ID,
		UserID:      uid,
		TeamName:    req.TeamName,
		CheckinCode: uuid.NewString(),
	}
	if err := h.Registrations.Create(ctx, reg); err != nil {
		if errors.Is(err, repository.ErrAlreadyRegistered) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create registration failed"})
	}
	return c.JSON(http.StatusCreated, toRegistrationView(reg))
}

// MyRegistration returns the participant's registration for one hackathon,
// check-in code included, so a lost QR code can be re-rendered.
func (h *ParticipantHandler) MyRegistration(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	hackathonID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hackathon id"})
	}
	reg, err := h.Registrations.GetByUserAndHackathon(c.Request().Context(), uid, hackathonID)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "registration not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toRegistrationView(reg))
}
