package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/zenflow/internal/energy"
)

func TestListPhases(t *testing.T) {
	server := setupHandlerTest(t)

	rr := server.do(t, http.MethodGet, "/phases", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var payload struct {
		Phases []energy.Phase `json:"phases"`
	}
	decodeBody(t, rr, &payload)

	if len(payload.Phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(payload.Phases))
	}
	keys := []string{"morning", "afternoon", "evening"}
	for i, phase := range payload.Phases {
		if phase.Key != keys[i] {
			t.Fatalf("unexpected phase order at %d: %s", i, phase.Key)
		}
	}
}

func TestCurrentPhaseFollowsClock(t *testing.T) {
	server := setupHandlerTest(t)

	tests := []struct {
		hour int
		want string
	}{
		{hour: 9, want: "morning"},
		{hour: 14, want: "afternoon"},
		{hour: 20, want: "evening"},
		{hour: 3, want: "morning"},
	}

	for _, tt := range tests {
		*server.clock = time.Date(2024, 5, 20, tt.hour, 0, 0, 0, time.UTC)
		rr := server.do(t, http.MethodGet, "/phases/current", nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		var payload struct {
			Phase       energy.Phase `json:"phase"`
			Suggestions []string     `json:"suggestions"`
			Hour        int          `json:"hour"`
		}
		decodeBody(t, rr, &payload)

		if payload.Phase.Key != tt.want || payload.Hour != tt.hour {
			t.Fatalf("hour %d: expected %s, got %+v", tt.hour, tt.want, payload.Phase)
		}
		if len(payload.Suggestions) == 0 {
			t.Fatalf("hour %d: expected suggestions", tt.hour)
		}
	}
}

func TestListGuides(t *testing.T) {
	server := setupHandlerTest(t)

	rr := server.do(t, http.MethodGet, "/guides", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var payload struct {
		Guides   []energy.Guide           `json:"guides"`
		Drains   []string                 `json:"drains"`
		Boosters []string                 `json:"boosters"`
		Prompts  energy.ReflectionPrompts `json:"prompts"`
	}
	decodeBody(t, rr, &payload)

	if len(payload.Guides) == 0 || len(payload.Drains) == 0 || len(payload.Boosters) == 0 {
		t.Fatalf("expected guidance library, got %+v", payload)
	}
	if len(payload.Prompts.Morning) == 0 || len(payload.Prompts.Evening) == 0 {
		t.Fatalf("expected reflection prompts, got %+v", payload.Prompts)
	}
}
