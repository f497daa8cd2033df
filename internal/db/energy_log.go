package db

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnergyLog 记录一次能量打卡
// 只追加不修改：没有更新与删除路径，LoggedAt 为提交时刻
// 标签以 JSON 数组存储，保持用户选择时的顺序
type EnergyLog struct {
	gorm.Model
	PublicID        string                      `gorm:"uniqueIndex;size:36;not null"`
	UserID          uint                        `gorm:"index:idx_energy_logs_user_logged_at,priority:1;not null"`
	LoggedAt        time.Time                   `gorm:"index:idx_energy_logs_user_logged_at,priority:2;not null"`
	EnergyLevel     int                         `gorm:"not null;check:energy_level >= 1 AND energy_level <= 10"`
	Symptoms        datatypes.JSONSlice[string] `gorm:"not null"`
	PositiveFactors datatypes.JSONSlice[string] `gorm:"not null"`
	Activities      datatypes.JSONSlice[string] `gorm:"not null"`
	Notes           string
}

// TableName 固定表名
func (EnergyLog) TableName() string {
	return "energy_logs"
}
