package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-closers/internal/application/usecase"
	"github.com/tu-usuario/crm-closers/internal/domain/entity"
	"github.com/tu-usuario/crm-closers/internal/domain/repository"
	apphttp "github.com/tu-usuario/crm-closers/internal/interfaces/http"
)

// stubMeetingRepo repo vacío para ejercer el router sin DB.
type stubMeetingRepo struct{}

var _ repository.MeetingRepository = (*stubMeetingRepo)(nil)

func (stubMeetingRepo) Create(*entity.Meeting) error { return nil }

func (stubMeetingRepo) GetByID(string) (*entity.MeetingDetail, error) { return nil, nil }

func (stubMeetingRepo) ListByCloser(string) ([]*entity.Meeting, error) { return nil, nil }

func (stubMeetingRepo) ListByClient(string) ([]*entity.MeetingDetail, error) { return nil, nil }

func (stubMeetingRepo) Update(string, entity.MeetingUpdate) error { return nil }

func (stubMeetingRepo) Delete(string) error { return nil }

func buildRouterApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		MeetingUC: usecase.NewMeetingUseCase(stubMeetingRepo{}),
		JWTSecret: testJWTSecret,
	})
	return app
}

func getMeetingsCloser(t *testing.T, app *fiber.App, role string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/meetings/closer", nil)
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// GET /api/meetings/closer es "mis reuniones como Closer": un ADMIN no tiene
// reuniones propias y recibe 403, no una lista vacía.
func TestRouter_MeetingsCloser_SoloCloser(t *testing.T) {
	app := buildRouterApp()

	resp := getMeetingsCloser(t, app, entity.RoleAdmin)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"ADMIN no debe poder listar reuniones como Closer")
}

func TestRouter_MeetingsCloser_CloserRecibeLista(t *testing.T) {
	app := buildRouterApp()

	resp := getMeetingsCloser(t, app, entity.RoleCloser)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body, "sin reuniones la lista es [], nunca null")
}

func TestRouter_MeetingsCloser_SinToken401(t *testing.T) {
	app := buildRouterApp()

	req := httptest.NewRequest(http.MethodGet, "/api/meetings/closer", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
