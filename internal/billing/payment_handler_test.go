package billing

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vegete-backend/internal/models"
	"vegete-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	storage.Store
	payments  []models.Payment
	auditLogs []models.AuditLog
	createErr error
}

func (f *fakeStore) CreatePayment(p *models.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	p.ID = "p-new"
	// Хадгалалтын давхарга гишүүний салбарыг өөрөө бөглөдгийг дуурайна.
	p.BranchID = "b1"
	f.payments = append(f.payments, *p)
	return nil
}

func (f *fakeStore) PaymentList() ([]storage.PaymentListItem, error) {
	items := make([]storage.PaymentListItem, 0, len(f.payments))
	for _, p := range f.payments {
		items = append(items, storage.PaymentListItem{Payment: p, MemberName: "Дорж Бат", BranchName: "Төв салбар"})
	}
	return items, nil
}

func (f *fakeStore) CreateAuditLog(l *models.AuditLog) error {
	f.auditLogs = append(f.auditLogs, *l)
	return nil
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

func postPayment(t *testing.T, app *fiber.App, payload any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	return resp, parsed
}

func TestCreatePaymentSuccess(t *testing.T) {
	app := newTestApp()
	st := &fakeStore{}
	app.Post("/api/payments", CreatePaymentHandler(st))

	resp, body := postPayment(t, app, map[string]any{
		"memberId": "m1",
		"amount":   150000,
		"month":    "2",
		"year":     2026,
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "paid", body["status"])
	// Салбар нь клиентээс биш, гишүүний бичлэгээс ирнэ.
	assert.Equal(t, "b1", body["branchId"])
	require.Len(t, st.auditLogs, 1)
	assert.Equal(t, "payment", st.auditLogs[0].EntityType)
}

func TestCreatePaymentMonthValidation(t *testing.T) {
	app := newTestApp()
	st := &fakeStore{}
	app.Post("/api/payments", CreatePaymentHandler(st))

	resp, body := postPayment(t, app, map[string]any{
		"memberId": "m1",
		"amount":   150000,
		"month":    "13",
		"year":     2026,
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	details := body["details"].(map[string]any)
	assert.Equal(t, "oneof", details["Month"])
	assert.Empty(t, st.payments)
}

func TestCreatePaymentUnknownMember(t *testing.T) {
	app := newTestApp()
	st := &fakeStore{createErr: storage.ErrInvalidRef}
	app.Post("/api/payments", CreatePaymentHandler(st))

	resp, body := postPayment(t, app, map[string]any{
		"memberId": "ghost",
		"amount":   150000,
		"month":    "2",
		"year":     2026,
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Заасан гишүүн байхгүй", body["error"])
}

func TestListPaymentsEnriched(t *testing.T) {
	app := newTestApp()
	st := &fakeStore{payments: []models.Payment{
		{ID: "p1", MemberID: "m1", BranchID: "b1", Amount: 150000, Month: "1", Year: 2026},
	}}
	app.Get("/api/payments", ListPaymentsHandler(st))

	req := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(data, &items))

	require.Len(t, items, 1)
	assert.Equal(t, "Дорж Бат", items[0]["memberName"])
	assert.Equal(t, "Төв салбар", items[0]["branchName"])
}
