package handler

import (
	"log/slog"
	"time"

	"github.com/zenflow/internal/db"
	"github.com/zenflow/internal/energy"
	"github.com/zenflow/internal/metrics"
	"github.com/zenflow/internal/service"
	"gorm.io/gorm"
)

// Options 汇总构造 API 时的可选依赖，零值字段使用默认实现
type Options struct {
	Phases    *energy.PhaseTable
	Location  *time.Location
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
	LoginRate RateLimit
	Now       func() time.Time
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	users    *service.UserService
	profiles *service.ProfileService
	logs     *service.EnergyLogService
	progress *service.ProgressService
	phases   *energy.PhaseTable
	engine   energy.Engine
	metrics  *metrics.Metrics
	limiter  *RateLimiter
	now      func() time.Time
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, opts Options) *API {
	phases := opts.Phases
	if phases == nil {
		phases = energy.DefaultPhases()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	engine := energy.Engine{Location: opts.Location}
	logs := service.NewEnergyLogService(gdb)
	logs.OnAppend(func(entry db.EnergyLog) {
		opts.Metrics.RecordEnergyLog(string(engine.PeriodOf(entry.LoggedAt)))
	})

	return &API{
		users:    service.NewUserService(gdb),
		profiles: service.NewProfileService(gdb),
		logs:     logs,
		progress: service.NewProgressService(logs, engine, opts.Metrics, opts.Logger),
		phases:   phases,
		engine:   engine,
		metrics:  opts.Metrics,
		limiter:  NewRateLimiter(opts.LoginRate),
		now:      now,
	}
}

// LoginLimiter 返回登录接口使用的限流器
func (a *API) LoginLimiter() *RateLimiter {
	return a.limiter
}

// Metrics 返回指标集合，可能为 nil
func (a *API) Metrics() *metrics.Metrics {
	return a.metrics
}
