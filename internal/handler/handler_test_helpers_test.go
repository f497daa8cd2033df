package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/zenflow/internal/db"
	"github.com/zenflow/internal/metrics"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testServer struct {
	api    *API
	engine *gin.Engine
	clock  *time.Time
	cookie []*http.Cookie
}

func setupHandlerTest(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	clock := time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)
	server := &testServer{clock: &clock}
	server.api = NewAPI(gdb, Options{
		Location:  time.UTC,
		Metrics:   metrics.New(),
		LoginRate: RateLimit{RequestsPerMinute: 600, Burst: 100},
		Now:       func() time.Time { return *server.clock },
	})

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))
	r.POST("/auth/register", server.api.Register)
	r.POST("/auth/login", server.api.Login)
	r.POST("/auth/logout", server.api.Logout)
	r.GET("/phases", server.api.ListPhases)
	r.GET("/phases/current", server.api.CurrentPhase)
	r.GET("/guides", server.api.ListGuides)
	protected := r.Group("")
	protected.Use(AuthRequired())
	protected.GET("/me", server.api.GetMe)
	protected.PUT("/me/profile", server.api.UpdateProfile)
	protected.POST("/logs", server.api.CreateEnergyLog)
	protected.GET("/logs", server.api.ListEnergyLogs)
	protected.GET("/progress", server.api.GetProgress)
	protected.GET("/analytics", server.api.GetAnalytics)
	server.engine = r

	return server
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range s.cookie {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	s.engine.ServeHTTP(rr, req)
	if cookies := rr.Result().Cookies(); len(cookies) > 0 {
		s.cookie = cookies
	}
	return rr
}

func (s *testServer) registerAndLogin(t *testing.T, username string) {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/auth/register", gin.H{"username": username, "password": "secret-pass"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rr.Code, rr.Body.String())
	}
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
}
