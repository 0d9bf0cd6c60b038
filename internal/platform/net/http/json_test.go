package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "github.com/khizar-anjum/courtlistener-mcp/internal/platform/errors"
)

type echoIn struct {
	Token string `json:"token" validate:"required"`
}

func TestJSONHandler_Success(t *testing.T) {
	h := JSONHandler(func(_ *stdhttp.Request, in echoIn) (any, error) {
		return map[string]string{"token": in.Token}, nil
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"token":"ca9"}`))
	h(rec, req)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Data == nil {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestJSONHandler_BindError(t *testing.T) {
	h := JSONHandler(func(_ *stdhttp.Request, in echoIn) (any, error) {
		t.Fatalf("handler must not run on bind failure")
		return nil, nil
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{`))
	h(rec, req)
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestJSONHandler_HandlerError(t *testing.T) {
	h := JSONHandler(func(_ *stdhttp.Request, in echoIn) (any, error) {
		return nil, perr.NotFoundf("nope")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"token":"x"}`))
	h(rec, req)
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

// a handler may return a full Response to pick its own status
func TestJSONHandler_ResponsePassthrough(t *testing.T) {
	h := JSONHandler(func(_ *stdhttp.Request, in echoIn) (any, error) {
		return Response{Status: stdhttp.StatusNotFound, Body: map[string]string{"token": in.Token}}, nil
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"token":"x"}`))
	h(rec, req)
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error != "" || env.Data == nil {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestJSONHandlerNoBody(t *testing.T) {
	h := JSONHandlerNoBody(func(*stdhttp.Request) (any, error) {
		return "pong", nil
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	h(rec, req)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
