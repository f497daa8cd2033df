package service

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zenflow/internal/db"
	"github.com/zenflow/internal/energy"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	// MinEnergyLevel 与 MaxEnergyLevel 为打卡允许的能量区间
	MinEnergyLevel = 1
	MaxEnergyLevel = 10
	// DefaultRecentLimit 为 Recent 未指定条数时的默认值
	DefaultRecentLimit = 20
)

var (
	// ErrInvalidEnergyLevel 在能量值不在 [1,10] 时返回
	ErrInvalidEnergyLevel = errors.New("energy level must be between 1 and 10")
	// ErrUserRequired 在未提供用户时返回
	ErrUserRequired = errors.New("user is required")
)

// EnergyLogInput 描述一次打卡提交的内容
type EnergyLogInput struct {
	EnergyLevel     int
	Symptoms        []string
	PositiveFactors []string
	Activities      []string
	Notes           string
}

// EnergyLogService 是只追加的能量记录存储
// 记录一经写入不再修改，读取时始终按 LoggedAt 升序返回
type EnergyLogService struct {
	db      *gorm.DB
	onWrite func(db.EnergyLog)
}

// NewEnergyLogService 构造 EnergyLogService
func NewEnergyLogService(gdb *gorm.DB) *EnergyLogService {
	return &EnergyLogService{db: gdb}
}

// OnAppend 注册写入成功后的回调，用于指标统计
func (s *EnergyLogService) OnAppend(fn func(db.EnergyLog)) {
	s.onWrite = fn
}

// Append 追加一条记录，LoggedAt 固定为 now 并以 UTC 存储
// Notes 按提交原样保存，展示时再做 Markdown 渲染与清洗
func (s *EnergyLogService) Append(userID uint, input EnergyLogInput, now time.Time) (*db.EnergyLog, error) {
	if userID == 0 {
		return nil, ErrUserRequired
	}
	if input.EnergyLevel < MinEnergyLevel || input.EnergyLevel > MaxEnergyLevel {
		return nil, ErrInvalidEnergyLevel
	}

	entry := db.EnergyLog{
		PublicID:        uuid.NewString(),
		UserID:          userID,
		LoggedAt:        now.UTC(),
		EnergyLevel:     input.EnergyLevel,
		Symptoms:        normalizeTags(input.Symptoms),
		PositiveFactors: normalizeTags(input.PositiveFactors),
		Activities:      normalizeTags(input.Activities),
		Notes:           input.Notes,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("create energy log: %w", err)
	}

	log.Printf("[energy] user %d logged level %d", userID, entry.EnergyLevel)
	if s.onWrite != nil {
		s.onWrite(entry)
	}
	return &entry, nil
}

// List 返回用户的完整历史，按记录时间升序
func (s *EnergyLogService) List(userID uint) ([]db.EnergyLog, error) {
	var logs []db.EnergyLog
	if err := s.db.Where("user_id = ?", userID).
		Order("logged_at ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list energy logs: %w", err)
	}
	return logs, nil
}

// Recent 返回最近 limit 条记录，最新的一条位于末尾
func (s *EnergyLogService) Recent(userID uint, limit int) ([]db.EnergyLog, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	var logs []db.EnergyLog
	if err := s.db.Where("user_id = ?", userID).
		Order("logged_at DESC, id DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list recent energy logs: %w", err)
	}

	slices.Reverse(logs)
	return logs, nil
}

// ToEngineLogs 将持久化记录转换为引擎输入
func ToEngineLogs(records []db.EnergyLog) []energy.Log {
	logs := make([]energy.Log, 0, len(records))
	for _, record := range records {
		logs = append(logs, ToEngineLog(record))
	}
	return logs
}

// ToEngineLog 转换单条记录
func ToEngineLog(record db.EnergyLog) energy.Log {
	return energy.Log{
		Date:            record.LoggedAt,
		EnergyLevel:     record.EnergyLevel,
		Symptoms:        []string(record.Symptoms),
		PositiveFactors: []string(record.PositiveFactors),
		Activities:      []string(record.Activities),
		Notes:           record.Notes,
	}
}

// normalizeTags 去掉首尾空白与空标签，重复项保留
func normalizeTags(tags []string) datatypes.JSONSlice[string] {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		value := strings.TrimSpace(tag)
		if value == "" {
			continue
		}
		cleaned = append(cleaned, value)
	}
	return datatypes.JSONSlice[string](cleaned)
}
