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

type roomReq struct {
	RoomNo      string `json:"room_no"`
	SeatsPerRow int    `json:"seats_per_row"`
	NumRows     int    `json:"num_rows"`
}

type roomView struct {
	ID          uint64    `json:"id"`
	RoomNo      string    `json:"room_no"`
	SeatsPerRow int       `json:"seats_per_row"`
	NumRows     int       `json:"num_rows"`
	CreatedAt   time.Time `json:"created_at"`
}

type teamReq struct {
	TeamName string `json:"team_name"`
	TeamSize int    `json:"team_size"`
}

type teamView struct {
	ID        uint64    `json:"id"`
	TeamName  string    `json:"team_name"`
	TeamSize  int       `json:"team_size"`
	CreatedAt time.Time `json:"created_at"`
}

// AddRoom configures one room for the seating run.
func (h *OrganizerHandler) AddRoom(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.RoomNo = strings.TrimSpace(req.RoomNo)
	if req.RoomNo == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_no required"})
	}
	if req.SeatsPerRow < 1 || req.NumRows < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats_per_row and num_rows must be at least 1"})
	}

	room := &model.Room{
		HackathonID: hk.ID,
		RoomNo:      req.RoomNo,
		SeatsPerRow: req.SeatsPerRow,
		NumRows:     req.NumRows,
	}
	if err := h.Rooms.Create(c.Request().Context(), room); err != nil {
		if errors.Is(err, repository.ErrRoomExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room number already configured"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create room failed"})
	}
	return c.JSON(http.StatusCreated, roomView{
		ID: room.ID, RoomNo: room.RoomNo, SeatsPerRow: room.SeatsPerRow,
		NumRows: room.NumRows, CreatedAt: room.CreatedAt,
	})
}

// ListRooms returns configured rooms in declaration order.
func (h *OrganizerHandler) ListRooms(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	items, err := h.Rooms.ListByHackathon(c.Request().Context(), hk.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]roomView, 0, len(items))
	for _, room := range items {
		out = append(out, roomView{
			ID: room.ID, RoomNo: room.RoomNo, SeatsPerRow: room.SeatsPerRow,
			NumRows: room.NumRows, CreatedAt: room.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": out})
}

// DeleteRoom removes one room configuration.
func (h *OrganizerHandler) DeleteRoom(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	roomID, err := pathID(c, "roomID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	if err := h.Rooms.DeleteByIDAndHackathon(c.Request().Context(), roomID, hk.ID); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// AddTeam records one team's head count for the seating run.
func (h *OrganizerHandler) AddTeam(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	var req teamReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.TeamName = strings.TrimSpace(req.TeamName)
	if req.TeamName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "team_name required"})
	}
	if req.TeamSize < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "team_size must be at least 1"})
	}

	t := &model.Team{
		HackathonID: hk.ID,
		TeamName:    req.TeamName,
		TeamSize:    req.TeamSize,
	}
	if err := h.Teams.Create(c.Request().Context(), t); err != nil {
		if errors.Is(err, repository.ErrTeamExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "team already recorded"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create team failed"})
	}
	return c.JSON(http.StatusCreated, teamView{
		ID: t.ID, TeamName: t.TeamName, TeamSize: t.TeamSize, CreatedAt: t.CreatedAt,
	})
}

// ListTeams returns recorded teams in insertion order.
func (h *OrganizerHandler) ListTeams(c echo.Context) error {
	hk, err := h.ownHackathon(c)
	if err != nil {
		return err
	}
	items, err := h.Teams.ListByHackathon(c.Request().Context(), hk.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]teamView, 0, len(items))
	for _, t := range items {
		out = append(out, teamView{
			ID: t.ID, TeamName: t.TeamName, TeamSize: t.TeamSize, CreatedAt: t.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"teams": out})
}
