// Package handler defines the HTTP handlers for the hackathon manager.
package handler

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hackathon-manager/internal/config"
	"github.com/iliyamo/hackathon-manager/internal/model"
	"github.com/iliyamo/hackathon-manager/internal/queue"
	"github.com/iliyamo/hackathon-manager/internal/repository"
	queuepub "github.com/iliyamo/hackathon-manager/internal/service"
)

// hackathonStore is the slice of HackathonRepo the organizer routes use.
type hackathonStore interface {
	Create(ctx context.Context, h *model.Hackathon) error
	GetByID(ctx context.Context, id uint64) (*model.Hackathon, error)
	GetByIDAndOrganizer(ctx context.Context, id, organizerID uint64) (*model.Hackathon, error)
	ListByOrganizer(ctx context.Context, organizerID uint64) ([]*model.Hackathon, error)
	UpdateByIDAndOrganizer(ctx context.Context, h *model.Hackathon) error
	DeleteByIDAndOrganizer(ctx context.Context, id, organizerID uint64) error
}

// registrationStore is the slice of RegistrationRepo the organizer routes use.
type registrationStore interface {
	GetByCode(ctx context.Context, hackathonID uint64, code string) (*model.Registration, error)
	MarkCheckedIn(ctx context.Context, id uint64, at time.Time) error
	ListByHackathon(ctx context.Context, hackathonID uint64) ([]*model.Registration, error)
}

// OrganizerHandler bundles the repositories behind every organizer route.
// All routes first resolve hackathon ownership through the hackathon store,
// so a 404 is returned for events owned by someone else.
type OrganizerHandler struct {
	Hackathons    hackathonStore
	Mentors       *repository.MentorRepo
	Submissions   *repository.SubmissionRepo
	Rooms         *repository.RoomRepo
	Teams         *repository.TeamRepo
	Registrations registrationStore

	// Dedup is nil when Redis is unavailable; check-in then relies on the
	// database alone.
	Dedup scanDedup

	publishCheckin    func(context.Context, queue.CheckinConfirmedEvent) error
	publishAllocation func(context.Context, queue.AllocationCompletedEvent) error
}

func NewOrganizerHandler(
	hackathons *repository.HackathonRepo,
	mentors *repository.MentorRepo,
	submissions *repository.SubmissionRepo,
	rooms *repository.RoomRepo,
	teams *repository.TeamRepo,
	registrations *repository.RegistrationRepo,
	rdb *redis.Client,
	checkin config.CheckinConfig,
) *OrganizerHandler {
	if hackathons == nil || mentors == nil || submissions == nil ||
		rooms == nil || teams == nil || registrations == nil {
		panic("nil repository passed to NewOrganizerHandler")
	}
	var dedup scanDedup
	if rdb != nil {
		dedup = &redisScanDedup{rdb: rdb, cfg: checkin}
	}
	return &OrganizerHandler{
		Hackathons:        hackathons,
		Mentors:           mentors,
		Submissions:       submissions,
		Rooms:             rooms,
		Teams:             teams,
		Registrations:     registrations,
		Dedup:             dedup,
		publishCheckin:    queuepub.PublishCheckinConfirmed,
		publishAllocation: queuepub.PublishAllocationCompleted,
	}
}

// getUserID extracts the user_id set by the JWT middleware and converts it
// to uint64 regardless of how the claim was decoded.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// ownHackathon resolves the :id path parameter against the authenticated
// organizer. Every organizer sub-resource route goes through here.
func (h *OrganizerHandler) ownHackathon(c echo.Context) (*model.Hackathon, error) {
	uid, err := getUserID(c)
	if err != nil {
		return nil, echo.NewHTTPError(401, "unauthorized")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return nil, echo.NewHTTPError(400, "invalid hackathon id")
	}
	hk, err := h.Hackathons.GetByIDAndOrganizer(c.Request().Context(), id, uid)
	if err != nil {
		if errors.Is(err, repository.ErrHackathonNotFound) {
			return nil, echo.NewHTTPError(404, "hackathon not found")
		}
		return nil, echo.NewHTTPError(500, "query failed")
	}
	return hk, nil
}

// hackathonView is the JSON shape returned for hackathons on every surface.
type hackathonView struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Venue       *string   `json:"venue,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toHackathonView(h *model.Hackathon) hackathonView {
	return hackathonView{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		Venue:       h.Venue,
		StartsAt:    h.StartsAt,
		EndsAt:      h.EndsAt,
		Status:      h.Status,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}
