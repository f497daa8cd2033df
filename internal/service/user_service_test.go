package service

import (
	"errors"
	"testing"

	"github.com/zenflow/internal/db"
)

func TestUserServiceRegisterAndAuthenticate(t *testing.T) {
	gdb := setupEnergyTestDB(t)
	svc := NewUserService(gdb)

	user, err := svc.Register(" alice ", "secret-pass")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 || user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.Password == "secret-pass" {
		t.Fatal("password should be hashed")
	}

	var profile db.Profile
	if err := gdb.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		t.Fatalf("expected default profile: %v", err)
	}
	if profile.FirstName != "alice" || profile.ReminderTime != db.DefaultReminderTime {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	authed, err := svc.Authenticate("alice", "secret-pass")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if authed.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, authed.ID)
	}

	found, err := svc.Get(user.ID)
	if err != nil || found.Username != "alice" {
		t.Fatalf("Get returned %+v, %v", found, err)
	}
	if _, err := svc.Get(user.ID + 100); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserServiceRegisterErrors(t *testing.T) {
	gdb := setupEnergyTestDB(t)
	svc := NewUserService(gdb)

	if _, err := svc.Register("alice", "secret-pass"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{name: "duplicate", username: "alice", password: "another-pass", want: ErrUsernameTaken},
		{name: "blank username", username: "  ", password: "secret-pass", want: ErrCredentialsRequired},
		{name: "blank password", username: "bob", password: "", want: ErrCredentialsRequired},
		{name: "short password", username: "bob", password: "abc", want: ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(tt.username, tt.password); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestUserServiceAuthenticateRejectsBadCredentials(t *testing.T) {
	gdb := setupEnergyTestDB(t)
	svc := NewUserService(gdb)

	if _, err := svc.Register("alice", "secret-pass"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if _, err := svc.Authenticate("alice", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate("nobody", "secret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
