package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-closers/internal/application/dto"
)

// La clave clientId distingue tres casos: ausente (no tocar), null (limpiar)
// y string (reasignar). La actualización parcial depende de esta semántica.
func TestUpdateMeetingRequest_ClientIdPresencia(t *testing.T) {
	t.Run("clave ausente no toca el vínculo", func(t *testing.T) {
		var req dto.UpdateMeetingRequest
		require.NoError(t, json.Unmarshal([]byte(`{"notes": "x"}`), &req))
		assert.False(t, req.ClientID.Set)

		upd := req.ToMeetingUpdate()
		assert.False(t, upd.SetClient)
		require.NotNil(t, req.Notes)
		assert.Equal(t, "x", *req.Notes)
	})

	t.Run("null explícito limpia el vínculo", func(t *testing.T) {
		var req dto.UpdateMeetingRequest
		require.NoError(t, json.Unmarshal([]byte(`{"clientId": null}`), &req))
		assert.True(t, req.ClientID.Set)
		assert.Nil(t, req.ClientID.Value)

		upd := req.ToMeetingUpdate()
		assert.True(t, upd.SetClient)
		assert.Nil(t, upd.ClientID)
	})

	t.Run("string reasigna el cliente", func(t *testing.T) {
		var req dto.UpdateMeetingRequest
		require.NoError(t, json.Unmarshal([]byte(`{"clientId": "cli-9"}`), &req))
		require.True(t, req.ClientID.Set)
		require.NotNil(t, req.ClientID.Value)
		assert.Equal(t, "cli-9", *req.ClientID.Value)
	})

	t.Run("tipo incorrecto es error", func(t *testing.T) {
		var req dto.UpdateMeetingRequest
		assert.Error(t, json.Unmarshal([]byte(`{"clientId": 42}`), &req))
	})
}

func TestUpdateMeetingRequest_BodyVacioEsNoOp(t *testing.T) {
	var req dto.UpdateMeetingRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.True(t, req.ToMeetingUpdate().Empty())
}

func TestUpdateMeetingRequest_FechaParcial(t *testing.T) {
	var req dto.UpdateMeetingRequest
	require.NoError(t, json.Unmarshal([]byte(`{"meetingDate": "2026-03-01T15:00:00Z"}`), &req))
	require.NotNil(t, req.MeetingDate)
	assert.Equal(t, time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC), req.MeetingDate.UTC())
	assert.Nil(t, req.Location)
	assert.Nil(t, req.Notes)
	assert.False(t, req.ClientID.Set)
}
