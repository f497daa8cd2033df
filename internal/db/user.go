package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultReminderTime 是未设置提醒时间时使用的默认值
const DefaultReminderTime = "09:00"

// User 定义了登录账号，能量记录按 UserID 归属
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
}

// EnsureUser 若用户名与密码均非空且账号不存在，则创建 bcrypt 哈希的用户及默认资料。
// 用于通过环境变量引导首个账号，已存在时不做任何修改。
func EnsureUser(username, password string) error {
	trimmedUser := strings.TrimSpace(username)
	trimmedPassword := strings.TrimSpace(password)
	if trimmedUser == "" || trimmedPassword == "" {
		return nil
	}

	if DB == nil {
		return errors.New("database not initialized")
	}

	var existing User
	err := DB.Where("username = ?", trimmedUser).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		user := User{Username: trimmedUser, Password: string(hashed)}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&Profile{UserID: user.ID, FirstName: trimmedUser, ReminderTime: DefaultReminderTime}).Error
	})
}
