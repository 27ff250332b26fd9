package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wahalabot/pkg/roast"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestServer(completer *stubCompleter) *Server {
	return NewServer(roast.NewService(completer, nil))
}

func postRoast(t *testing.T, srv *Server, body string) (*httptest.ResponseRecorder, roastResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/roast", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	var resp roastResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestHandleRoast_Success(t *testing.T) {
	completer := &stubCompleter{reply: "You too slow"}
	srv := newTestServer(completer)

	rec, resp := postRoast(t, srv, `{"user_input": "test", "level": "medium"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "You too slow", resp.Roast)
	assert.Empty(t, resp.Error)
	assert.Equal(t, 1, completer.calls)
}

func TestHandleRoast_InvalidLevel(t *testing.T) {
	completer := &stubCompleter{reply: "never"}
	srv := newTestServer(completer)

	rec, resp := postRoast(t, srv, `{"user_input": "test", "level": "extreme"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Error, "Invalid roast level")
	assert.Empty(t, resp.Roast)
	assert.Equal(t, 0, completer.calls, "provider must not be called for invalid input")
}

func TestHandleRoast_Defaults(t *testing.T) {
	completer := &stubCompleter{reply: "ok"}
	srv := newTestServer(completer)

	// Level and gender omitted: medium/male defaults apply.
	rec, resp := postRoast(t, srv, `{"user_input": "test"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", resp.Roast)
	assert.Equal(t, 1, completer.calls)
}

func TestHandleRoast_EmptyInput(t *testing.T) {
	completer := &stubCompleter{reply: "never"}
	srv := newTestServer(completer)

	rec, resp := postRoast(t, srv, `{"user_input": "   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, resp.Error)
	assert.Equal(t, 0, completer.calls)
}

func TestHandleRoast_DispatchFailure(t *testing.T) {
	completer := &stubCompleter{err: errors.New("provider exploded: key sk-secret")}
	srv := newTestServer(completer)

	rec, resp := postRoast(t, srv, `{"user_input": "test", "level": "mild"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, roast.DispatchUserMessage, resp.Error)
	assert.NotContains(t, resp.Error, "sk-secret")
}

func TestHandleRoast_BadBody(t *testing.T) {
	srv := newTestServer(&stubCompleter{})

	rec, resp := postRoast(t, srv, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, resp.Error)
}

func TestHandleStatus(t *testing.T) {
	srv := newTestServer(&stubCompleter{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Bot is running", body["status"])
}
