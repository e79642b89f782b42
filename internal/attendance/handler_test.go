package attendance

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vegete-backend/internal/models"
	"vegete-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	storage.Store
	rows      map[string]*models.Attendance
	createErr error
}

func (f *fakeStore) CreateAttendance(a *models.Attendance) error {
	if f.createErr != nil {
		return f.createErr
	}
	a.ID = "a-new"
	a.BranchID = "b1"
	a.CheckInTime = time.Now()
	if f.rows == nil {
		f.rows = map[string]*models.Attendance{}
	}
	f.rows[a.ID] = a
	return nil
}

func (f *fakeStore) CloseAttendance(id string) (*models.Attendance, error) {
	a, ok := f.rows[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	now := time.Now()
	a.CheckOutTime = &now
	return a, nil
}

func (f *fakeStore) AttendanceByMember(memberID string) ([]models.Attendance, error) {
	var rows []models.Attendance
	for _, a := range f.rows {
		if a.MemberID == memberID {
			rows = append(rows, *a)
		}
	}
	return rows, nil
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Серверийн алдаа"})
		},
	})
}

func TestCheckInCheckOutFlow(t *testing.T) {
	app := newTestApp()
	st := &fakeStore{}
	app.Post("/api/attendance/check-in", CheckInHandler(st))
	app.Post("/api/attendance/:id/check-out", CheckOutHandler(st))

	raw, err := json.Marshal(map[string]any{"memberId": "m1"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/check-in", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var created map[string]any
	require.NoError(t, json.Unmarshal(data, &created))
	assert.Equal(t, "b1", created["branchId"])
	assert.Nil(t, created["checkOutTime"])

	req = httptest.NewRequest(http.MethodPost, "/api/attendance/"+created["id"].(string)+"/check-out", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	var closed map[string]any
	require.NoError(t, json.Unmarshal(data, &closed))
	assert.NotNil(t, closed["checkOutTime"])
}

func TestCheckInUnknownMember(t *testing.T) {
	app := newTestApp()
	st := &fakeStore{createErr: storage.ErrInvalidRef}
	app.Post("/api/attendance/check-in", CheckInHandler(st))

	raw, err := json.Marshal(map[string]any{"memberId": "ghost"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/check-in", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCheckOutUnknownRecord(t *testing.T) {
	app := newTestApp()
	app.Post("/api/attendance/:id/check-out", CheckOutHandler(&fakeStore{}))

	req := httptest.NewRequest(http.MethodPost, "/api/attendance/nope/check-out", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
