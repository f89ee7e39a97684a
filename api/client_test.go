package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/qcutapp/dashboard-v2/config"
	"github.com/qcutapp/dashboard-v2/models"
)

func testClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(config.API{Endpoint: srv.URL, Timeout: 5 * time.Second})
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantMsg  string
		wantMsgs []string
	}{
		{
			name:    "plain string message",
			body:    `{"message":"invalid credentials"}`,
			wantMsg: "invalid credentials",
		},
		{
			name:     "field error list",
			body:     `{"message":[{"message":"name is required"},{"message":"price must be a number"}]}`,
			wantMsgs: []string{"name is required", "price must be a number"},
		},
		{
			name: "unparseable body",
			body: `<html>bad gateway</html>`,
		},
		{
			name: "empty body",
			body: ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := parseError(http.StatusBadRequest, []byte(tt.body))
			if e.Status != http.StatusBadRequest {
				t.Errorf("status = %d", e.Status)
			}
			if e.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", e.Message, tt.wantMsg)
			}
			if len(e.Messages) != len(tt.wantMsgs) {
				t.Fatalf("messages = %v, want %v", e.Messages, tt.wantMsgs)
			}
			for i := range tt.wantMsgs {
				if e.Messages[i] != tt.wantMsgs[i] {
					t.Errorf("messages = %v, want %v", e.Messages, tt.wantMsgs)
				}
			}
		})
	}
}

func TestErrorLines(t *testing.T) {
	e := &Error{Status: http.StatusServiceUnavailable}
	if lines := e.Lines(); len(lines) != 1 || lines[0] != "Service Unavailable" {
		t.Errorf("lines = %v", lines)
	}

	e = &Error{Status: 400, Message: "nope", Messages: []string{"a", "b"}}
	if lines := e.Lines(); len(lines) != 2 || lines[0] != "a" {
		t.Errorf("field messages should win: %v", lines)
	}
}

func TestUserLinesNonAPIError(t *testing.T) {
	lines := UserLines(errors.New("dial tcp: connection refused"))
	if len(lines) != 1 || lines[0] != "dial tcp: connection refused" {
		t.Errorf("lines = %v", lines)
	}
}

func TestLoginSendsCredentialsAndDecodesUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		var in models.LoginInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode: %v", err)
		}
		if in.Email != "op@venue.test" || in.Password != "hunter2" {
			t.Errorf("credentials = %+v", in)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id":"u1","name":"Op","email":"op@venue.test","access_token":"tok"}`))
	})

	c := testClient(t, mux)
	user, err := c.Login(context.Background(), models.LoginInput{
		Email: "op@venue.test", Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != "u1" || user.AccessToken != "tok" {
		t.Errorf("user = %+v", user)
	}
}

func TestBearerTokenSent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/venue/me", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-xyz" {
			t.Errorf("auth header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id":"v1","name":"The Anchor"}`))
	})

	c := testClient(t, mux)
	venue, err := c.VenueMe(context.Background(), "tok-xyz")
	if err != nil {
		t.Fatalf("venue me: %v", err)
	}
	if venue.ID != "v1" {
		t.Errorf("venue = %+v", venue)
	}
}

func TestTakings(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{"numeric total", `{"sum":[{"total":128.5}]}`, 128.5},
		{"string total", `{"sum":[{"total":"42"}]}`, 42},
		{"no takings yet", `{"sum":[]}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/venue/takings", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			})

			got, err := testClient(t, mux).Takings(context.Background(), "tok")
			if err != nil {
				t.Fatalf("takings: %v", err)
			}
			if got != tt.want {
				t.Errorf("takings = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHistoryFilterValues(t *testing.T) {
	f := HistoryFilter{OrderID: "17", From: "2026-08-01"}
	v := f.Values()

	// All four params are always present, set or not.
	for _, key := range []string{"name", "orderID", "from", "to"} {
		if !v.Has(key) {
			t.Errorf("param %q missing", key)
		}
	}
	if v.Get("orderID") != "17" || v.Get("from") != "2026-08-01" {
		t.Errorf("values = %v", v)
	}

	if !f.Active() {
		t.Error("filter with fields set reports inactive")
	}
	if (HistoryFilter{}).Active() {
		t.Error("empty filter reports active")
	}
}
