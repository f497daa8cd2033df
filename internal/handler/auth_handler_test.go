package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRegisterLoginLogoutFlow(t *testing.T) {
	server := setupHandlerTest(t)

	if rr := server.do(t, http.MethodGet, "/me", nil); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", rr.Code)
	}

	server.registerAndLogin(t, "alice")

	rr := server.do(t, http.MethodGet, "/me", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 after register, got %d: %s", rr.Code, rr.Body.String())
	}
	var me struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
		Profile struct {
			FirstName    string `json:"first_name"`
			ReminderTime string `json:"reminder_time"`
		} `json:"profile"`
	}
	decodeBody(t, rr, &me)
	if me.User.Username != "alice" || me.Profile.FirstName != "alice" || me.Profile.ReminderTime != "09:00" {
		t.Fatalf("unexpected me payload: %+v", me)
	}

	if rr := server.do(t, http.MethodPost, "/auth/logout", nil); rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on logout, got %d", rr.Code)
	}
	if rr := server.do(t, http.MethodGet, "/me", nil); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rr.Code)
	}

	rr = server.do(t, http.MethodPost, "/auth/login", gin.H{"username": "alice", "password": "secret-pass"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected login to succeed, got %d: %s", rr.Code, rr.Body.String())
	}
	if rr := server.do(t, http.MethodGet, "/me", nil); rr.Code != http.StatusOK {
		t.Fatalf("expected 200 after login, got %d", rr.Code)
	}
}

func TestAuthErrors(t *testing.T) {
	server := setupHandlerTest(t)
	server.registerAndLogin(t, "alice")

	tests := []struct {
		name   string
		path   string
		body   interface{}
		status int
	}{
		{name: "wrong password", path: "/auth/login", body: gin.H{"username": "alice", "password": "nope-nope"}, status: http.StatusUnauthorized},
		{name: "unknown user", path: "/auth/login", body: gin.H{"username": "bob", "password": "secret-pass"}, status: http.StatusUnauthorized},
		{name: "malformed login", path: "/auth/login", body: "{", status: http.StatusBadRequest},
		{name: "duplicate user", path: "/auth/register", body: gin.H{"username": "alice", "password": "secret-pass"}, status: http.StatusConflict},
		{name: "blank credentials", path: "/auth/register", body: gin.H{"username": "", "password": ""}, status: http.StatusBadRequest},
		{name: "short password", path: "/auth/register", body: gin.H{"username": "carol", "password": "abc"}, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := server.do(t, http.MethodPost, tt.path, tt.body)
			if rr.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rr.Code, rr.Body.String())
			}
			var payload map[string]string
			decodeBody(t, rr, &payload)
			if payload["error"] == "" {
				t.Fatalf("expected error message, got %v", payload)
			}
		})
	}
}
