package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/zenflow/internal/energy"
	"github.com/zenflow/internal/metrics"
)

// ProgressService 每次请求都基于完整历史重新计算快照，不缓存中间结果
type ProgressService struct {
	logs    *EnergyLogService
	engine  energy.Engine
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewProgressService 构造 ProgressService，m 与 logger 可以为 nil
func NewProgressService(logs *EnergyLogService, engine energy.Engine, m *metrics.Metrics, logger *slog.Logger) *ProgressService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressService{logs: logs, engine: engine, metrics: m, logger: logger}
}

// Engine 返回服务使用的引擎
func (s *ProgressService) Engine() energy.Engine {
	return s.engine
}

// History 返回引擎格式的完整历史
func (s *ProgressService) History(userID uint) ([]energy.Log, error) {
	records, err := s.logs.List(userID)
	if err != nil {
		return nil, err
	}
	return ToEngineLogs(records), nil
}

// Snapshot 载入用户全部记录并计算进度快照
func (s *ProgressService) Snapshot(userID uint, now time.Time) (energy.Snapshot, error) {
	if userID == 0 {
		return energy.Snapshot{}, ErrUserRequired
	}

	history, err := s.History(userID)
	if err != nil {
		return energy.Snapshot{}, fmt.Errorf("load progress history: %w", err)
	}

	snapshot := s.engine.Snapshot(history, now)
	s.metrics.RecordSnapshot(snapshot.LogCount, snapshot.CurrentStreak)
	s.logger.Info("snapshot computed",
		slog.Uint64("user_id", uint64(userID)),
		slog.Int("log_count", snapshot.LogCount),
		slog.Int("streak", snapshot.CurrentStreak),
		slog.Int("points", snapshot.TotalPoints),
	)
	return snapshot, nil
}
