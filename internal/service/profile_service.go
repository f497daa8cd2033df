package service

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/zenflow/internal/db"
	"gorm.io/gorm"
)

const reminderLayout = "15:04"

var plainText = bluemonday.StrictPolicy()

var (
	// ErrInvalidReminderTime 在提醒时间不是 HH:MM 时返回
	ErrInvalidReminderTime = errors.New("reminder time must use HH:MM")
)

// ProfileService 维护用户称呼与每日提醒时间
// 未保存过资料的用户返回默认值：称呼为用户名，提醒 09:00

type ProfileService struct {
	db *gorm.DB
}

// NewProfileService 构造 ProfileService
func NewProfileService(gdb *gorm.DB) *ProfileService {
	return &ProfileService{db: gdb}
}

// ProfileInput 描述可更新的资料字段，指针为 nil 表示保持不变
type ProfileInput struct {
	FirstName    *string
	ReminderTime *string
}

// Get 返回用户资料，不存在时返回未持久化的默认资料
func (s *ProfileService) Get(userID uint) (*db.Profile, error) {
	var profile db.Profile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var user db.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get profile user: %w", err)
	}

	return &db.Profile{UserID: userID, FirstName: user.Username, ReminderTime: db.DefaultReminderTime}, nil
}

// Save 更新资料，首次保存时创建记录
func (s *ProfileService) Save(userID uint, input ProfileInput) (*db.Profile, error) {
	profile, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if input.ReminderTime != nil {
		reminder, err := normalizeReminderTime(*input.ReminderTime)
		if err != nil {
			return nil, err
		}
		profile.ReminderTime = reminder
	}
	if input.FirstName != nil {
		if name := strings.TrimSpace(stripHTML(*input.FirstName)); name != "" {
			profile.FirstName = name
		}
	}

	if err := s.db.Save(profile).Error; err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// normalizeReminderTime 接受 H:MM 与 HH:MM，统一输出 HH:MM
func normalizeReminderTime(raw string) (string, error) {
	parsed, err := time.Parse(reminderLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidReminderTime
	}
	return parsed.Format(reminderLayout), nil
}

// stripHTML 去掉称呼中的标签，保留实体对应的原字符
func stripHTML(value string) string {
	return html.UnescapeString(plainText.Sanitize(value))
}
