package db

import "gorm.io/gorm"

// Profile 保存用户的称呼与每日提醒时间
// ReminderTime 使用 15:04 格式，默认 09:00
type Profile struct {
	gorm.Model
	UserID       uint   `gorm:"uniqueIndex;not null"`
	User         User   `gorm:"constraint:OnDelete:CASCADE"`
	FirstName    string `gorm:"size:100"`
	ReminderTime string `gorm:"size:5"`
}
