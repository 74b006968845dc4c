package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hackathon-manager/internal/config"
	"github.com/iliyamo/hackathon-manager/internal/queue"
	"github.com/iliyamo/hackathon-manager/internal/repository"
)

// scanDedup remembers which check-in codes were already accepted in the
// current scanning session of a hackathon. A code is only marked AFTER the
// database check-in succeeded, so failed or unknown scans never poison the
// session and can simply be retried.
type scanDedup interface {
	Seen(ctx context.Context, hackathonID uint64, code string) (bool, error)
	Mark(ctx context.Context, hackathonID uint64, code string) error
	Reset(ctx context.Context, hackathonID uint64) error
}

// redisScanDedup keeps the session state in one Redis set per hackathon.
type redisScanDedup struct {
	rdb *redis.Client
	cfg config.CheckinConfig
}

func (d *redisScanDedup) key(hackathonID uint64) string {
	return fmt.Sprintf("%s:%d", d.cfg.Prefix, hackathonID)
}

func (d *redisScanDedup) Seen(ctx context.Context, hackathonID uint64, code string) (bool, error) {
	return d.rdb.SIsMember(ctx, d.key(hackathonID), code).Result()
}

func (d *redisScanDedup) Mark(ctx context.Context, hackathonID uint64, code string) error {
	key := d.key(hackathonID)
	if err := d.rdb.SAdd(ctx, key, code).Err(); err != nil {
		return err
	}
	return d.rdb.Expire(ctx, key, d.cfg.TTL).Err()
}

func (d *redisScanDedup) Reset(ctx context.Context, hackathonID uint64) error {
	return d.rdb.Del(ctx, d.key(hackathonID)).Err()
}

type checkinReq struct {
	Code string `json:"code"`
}

// ScanCheckin accepts a scanned check-in code for an owned hackathon. The
// dedup set answers repeat scans cheaply, but the database update stays
// authoritative: the code joins the set only once the check-in is stamped,
// so an unknown code keeps answering 404 and a transiently failed check-in
// can be rescanned without resetting the session.
func (h *OrganizerHandler) ScanCheckin(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	var req checkinReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Code = strings.TrimSpace(req.Code)
	if req.Code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "code required"})
	}

	ctx := c.Request().Context()

	if h.Dedup != nil {
		// Dedup errors fall through to the database path.
		if seen, err := h.Dedup.Seen(ctx, hk.ID, req.Code); err == nil && seen {
			return c.JSON(http.StatusConflict, echo.Map{"error": "code already scanned this session"})
		}
	}

	reg, err := h.Registrations.GetByCode(ctx, hk.ID, req.Code)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown check-in code"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	now := time.Now().UTC()
	if err := h.Registrations.MarkCheckedIn(ctx, reg.ID, now); err != nil {
		if errors.Is(err, repository.ErrAlreadyCheckedIn) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "registration already checked in"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "check-in failed"})
	}

	if h.Dedup != nil {
		_ = h.Dedup.Mark(ctx, hk.ID, req.Code)
	}

	// Best effort: the audit consumer picks this up asynchronously.
	_ = h.publishCheckin(ctx, queue.CheckinConfirmedEvent{
		RegistrationID: reg.ID,
		HackathonID:    hk.ID,
		HackathonName:  hk.Name,
		UserID:         reg.UserID,
		TeamName:       reg.TeamName,
		CheckedInAt:    now.Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{
		"registration_id": reg.ID,
		"team_name":       reg.TeamName,
		"checked_in_at":   now,
	})
}

// ResetCheckinSession clears the scan-dedup set so a new scanning session
// can start, for example after a device swap mid-event. Database check-in
// stamps are untouched.
func (h *OrganizerHandler) ResetCheckinSession(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	if h.Dedup == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "scan dedup store unavailable"})
	}
	if err := h.Dedup.Reset(c.Request().Context(), hk.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reset failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ListRegistrations returns every registration of an owned hackathon for
// the organizer's attendance dashboard.
func (h *OrganizerHandler) ListRegistrations(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	items, err := h.Registrations.ListByHackathon(c.Request().Context(), hk.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]registrationView, 0, len(items))
	for _, reg := range items {
		out = append(out, toRegistrationView(reg))
	}
	return c.JSON(http.StatusOK, echo.Map{"registrations": out})
}
