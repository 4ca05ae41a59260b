package api

import (
	"testing"

	"github.com/dincharya-ai/cli/internal/models"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		opts     []ClientOption
		wantErr  bool
		wantBase string
		wantUser string
		wantLoc  models.Location
	}{
		{
			name:     "defaults",
			wantBase: models.DefaultBaseURL,
			wantUser: models.DefaultUserID,
			wantLoc:  models.DefaultLocation,
		},
		{
			name:     "custom base URL",
			opts:     []ClientOption{WithBaseURL("https://dincharya.example.com")},
			wantBase: "https://dincharya.example.com",
			wantUser: models.DefaultUserID,
			wantLoc:  models.DefaultLocation,
		},
		{
			name:     "custom user and location",
			opts:     []ClientOption{WithUserID("asha"), WithLocation(models.Location{Lat: 19.076, Lon: 72.8777})},
			wantBase: models.DefaultBaseURL,
			wantUser: "asha",
			wantLoc:  models.Location{Lat: 19.076, Lon: 72.8777},
		},
		{
			name:    "empty base URL",
			opts:    []ClientOption{WithBaseURL("")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Inject a mock transport so no real TLS client is built
			opts := append([]ClientOption{WithHTTPClient(&MockHttpClient{})}, tt.opts...)
			client, err := NewClient(opts...)

			if tt.wantErr {
				if err == nil {
					t.Fatal("NewClient() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewClient() error = %v", err)
			}

			if client.BaseURL() != tt.wantBase {
				t.Errorf("BaseURL() = %q, want %q", client.BaseURL(), tt.wantBase)
			}
			if client.UserID() != tt.wantUser {
				t.Errorf("UserID() = %q, want %q", client.UserID(), tt.wantUser)
			}
			if client.Location() != tt.wantLoc {
				t.Errorf("Location() = %v, want %v", client.Location(), tt.wantLoc)
			}
		})
	}
}

func TestRequestHeaders(t *testing.T) {
	mock := NewMockHttpClient([]byte(`{"status":"healthy"}`), 200)
	client := newTestClient(mock)

	if err := client.Ping(); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	if len(mock.Requests) != 1 {
		t.Fatalf("requests = %d, want 1", len(mock.Requests))
	}

	req := mock.Requests[0]
	if got := req.Header.Get("Accept"); got != "application/json" {
		t.Errorf("Accept header = %q", got)
	}
	if got := req.Header.Get("User-Agent"); got != models.UserAgent {
		t.Errorf("User-Agent header = %q", got)
	}
	if req.Header.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header is missing")
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	mock := NewMockHttpClient([]byte(`{"status":"healthy"}`), 200)
	client := newTestClient(mock, WithBaseURL("http://localhost:8000/"))

	if err := client.Ping(); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	want := "http://localhost:8000/api/"
	if got := mock.Requests[0].URL; got != want {
		t.Errorf("request URL = %q, want %q", got, want)
	}
}
