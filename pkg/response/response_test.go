package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Appointment booked", map[string]string{"id": "a1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Appointment booked", body.Message)
	assert.Equal(t, map[string]interface{}{"id": "a1"}, body.Data)
}

func TestErrorHelpersDefaultMessages(t *testing.T) {
	cases := []struct {
		write   func(http.ResponseWriter)
		code    int
		message string
	}{
		{func(w http.ResponseWriter) { NotFound(w, "") }, http.StatusNotFound, "Resource not found"},
		{func(w http.ResponseWriter) { Unauthorized(w, "") }, http.StatusUnauthorized, "Unauthorized"},
		{func(w http.ResponseWriter) { Forbidden(w, "") }, http.StatusForbidden, "Forbidden"},
		{func(w http.ResponseWriter) { Conflict(w, "taken") }, http.StatusConflict, "taken"},
		{func(w http.ResponseWriter) { BadRequest(w, "") }, http.StatusBadRequest, "Bad request"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		tc.write(rec)
		assert.Equal(t, tc.code, rec.Code)
		body := decode(t, rec)
		assert.False(t, body.Success)
		assert.Equal(t, tc.message, body.Message)
	}
}

func TestAttachment(t *testing.T) {
	rec := httptest.NewRecorder()
	Attachment(rec, "text/plain; charset=utf-8", "record.txt", []byte("hello"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="record.txt"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "5", rec.Header().Get("Content-Length"))
	assert.Equal(t, "hello", rec.Body.String())
}
