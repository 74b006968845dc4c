package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hackathon-manager/internal/model"
	"github.com/iliyamo/hackathon-manager/internal/queue"
	"github.com/iliyamo/hackathon-manager/internal/repository"
)

type fakeHackathonStore struct {
	hk *model.Hackathon
}

func (f *fakeHackathonStore) Create(context.Context, *model.Hackathon) error { return nil }
func (f *fakeHackathonStore) GetByID(context.Context, uint64) (*model.Hackathon, error) {
	return f.hk, nil
}
func (f *fakeHackathonStore) GetByIDAndOrganizer(_ context.Context, id, organizerID uint64) (*model.Hackathon, error) {
	if f.hk == nil || f.hk.ID != id || f.hk.OrganizerID != organizerID {
		return nil, repository.ErrHackathonNotFound
	}
	return f.hk, nil
}
func (f *fakeHackathonStore) ListByOrganizer(context.Context, uint64) ([]*model.Hackathon, error) {
	return nil, nil
}
func (f *fakeHackathonStore) UpdateByIDAndOrganizer(context.Context, *model.Hackathon) error {
	return nil
}
func (f *fakeHackathonStore) DeleteByIDAndOrganizer(context.Context, uint64, uint64) error {
	return nil
}

type fakeRegistrationStore struct {
	byCode    map[string]*model.Registration
	checkedIn map[uint64]bool
	markErr   error // returned once, then cleared
}

func (f *fakeRegistrationStore) GetByCode(_ context.Context, _ uint64, code string) (*model.Registration, error) {
	reg, ok := f.byCode[code]
	if !ok {
		return nil, repository.ErrRegistrationNotFound
	}
	return reg, nil
}

func (f *fakeRegistrationStore) MarkCheckedIn(_ context.Context, id uint64, _ time.Time) error {
	if f.markErr != nil {
		err := f.markErr
		f.markErr = nil
		return err
	}
	if f.checkedIn[id] {
		return repository.ErrAlreadyCheckedIn
	}
	if f.checkedIn == nil {
		f.checkedIn = map[uint64]bool{}
	}
	f.checkedIn[id] = true
	return nil
}

func (f *fakeRegistrationStore) ListByHackathon(context.Context, uint64) ([]*model.Registration, error) {
	return nil, nil
}

type fakeScanDedup struct {
	sets map[uint64]map[string]bool
}

func (f *fakeScanDedup) Seen(_ context.Context, hackathonID uint64, code string) (bool, error) {
	return f.sets[hackathonID][code], nil
}

func (f *fakeScanDedup) Mark(_ context.Context, hackathonID uint64, code string) error {
	if f.sets == nil {
		f.sets = map[uint64]map[string]bool{}
	}
	if f.sets[hackathonID] == nil {
		f.sets[hackathonID] = map[string]bool{}
	}
	f.sets[hackathonID][code] = true
	return nil
}

func (f *fakeScanDedup) Reset(_ context.Context, hackathonID uint64) error {
	delete(f.sets, hackathonID)
	return nil
}

func newCheckinHandler(regs *fakeRegistrationStore, dedup *fakeScanDedup) *OrganizerHandler {
	return &OrganizerHandler{
		Hackathons:    &fakeHackathonStore{hk: &model.Hackathon{ID: 1, OrganizerID: 7, Name: "DemoJam"}},
		Registrations: regs,
		Dedup:         dedup,
		publishCheckin: func(context.Context, queue.CheckinConfirmedEvent) error {
			return nil
		},
	}
}

func scanRequest(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	c.SetParamNames("id")
	c.SetParamValues("1")
	c.Set("user_id", uint64(7))
	return c, rec
}

func TestScanCheckin_UnknownCodeNotCached(t *testing.T) {
	e := echo.New()
	dedup := &fakeScanDedup{}
	h := newCheckinHandler(&fakeRegistrationStore{}, dedup)

	for attempt := 1; attempt <= 2; attempt++ {
		c, rec := scanRequest(e, http.MethodPost, "/v1/hackathons/:id/checkin", `{"code":"no-such-code"}`)
		if err := h.ScanCheckin(c); err != nil {
			t.Fatalf("attempt %d: handler error: %v", attempt, err)
		}
		if rec.Code != http.StatusNotFound {
			t.Errorf("attempt %d: status = %d, want 404", attempt, rec.Code)
		}
	}
	if dedup.sets[1]["no-such-code"] {
		t.Error("unknown code ended up in the dedup set")
	}
}

func TestScanCheckin_RetryAfterFailure(t *testing.T) {
	e := echo.New()
	dedup := &fakeScanDedup{}
	regs := &fakeRegistrationStore{
		byCode:  map[string]*model.Registration{"code-a": {ID: 5, HackathonID: 1, UserID: 9, TeamName: "Gophers", CheckinCode: "code-a"}},
		markErr: errors.New("connection reset"),
	}
	h := newCheckinHandler(regs, dedup)

	// First scan hits a transient database error.
	c, rec := scanRequest(e, http.MethodPost, "/v1/hackathons/:id/checkin", `{"code":"code-a"}`)
	if err := h.ScanCheckin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if dedup.sets[1]["code-a"] {
		t.Fatal("failed check-in left the code in the dedup set")
	}

	// Retrying the same code must now succeed.
	c, rec = scanRequest(e, http.MethodPost, "/v1/hackathons/:id/checkin", `{"code":"code-a"}`)
	if err := h.ScanCheckin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("retry status = %d, want 200", rec.Code)
	}
	if !dedup.sets[1]["code-a"] {
		t.Error("successful check-in did not record the code in the dedup set")
	}

	// A third scan is a repeat and gets rejected.
	c, rec = scanRequest(e, http.MethodPost, "/v1/hackathons/:id/checkin", `{"code":"code-a"}`)
	if err := h.ScanCheckin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("repeat status = %d, want 409", rec.Code)
	}
}

func TestScanCheckin_DatabaseStaysAuthoritativeAfterReset(t *testing.T) {
	e := echo.New()
	dedup := &fakeScanDedup{}
	regs := &fakeRegistrationStore{
		byCode: map[string]*model.Registration{"code-b": {ID: 6, HackathonID: 1, UserID: 3, TeamName: "Quaffle", CheckinCode: "code-b"}},
	}
	h := newCheckinHandler(regs, dedup)

	c, rec := scanRequest(e, http.MethodPost, "/v1/hackathons/:id/checkin", `{"code":"code-b"}`)
	if err := h.ScanCheckin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	c, rec = scanRequest(e, http.MethodDelete, "/v1/hackathons/:id/checkin/session", "")
	if err := h.ResetCheckinSession(c); err != nil {
		t.Fatalf("reset error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("reset status = %d, want 204", rec.Code)
	}

	// The session set is gone but the database stamp remains: rescanning
	// still answers 409, just from the authoritative path.
	c, rec = scanRequest(e, http.MethodPost, "/v1/hackathons/:id/checkin", `{"code":"code-b"}`)
	if err := h.ScanCheckin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("rescan after reset status = %d, want 409", rec.Code)
	}
}
