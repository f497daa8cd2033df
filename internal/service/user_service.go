package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zenflow/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrCredentialsRequired 在用户名或密码为空时返回
	ErrCredentialsRequired = errors.New("username and password are required")
	// ErrUsernameTaken 在注册重复用户名时返回
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials 在用户名不存在或密码不匹配时返回
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserNotFound 在按 ID 查询不到用户时返回
	ErrUserNotFound = errors.New("user not found")
)

const minPasswordLength = 6

// ErrPasswordTooShort 在密码少于 6 个字符时返回
var ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", minPasswordLength)

// UserService 负责账号注册与登录校验
type UserService struct {
	db *gorm.DB
}

// NewUserService 构造 UserService
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// Register 创建新账号并附带默认资料
func (s *UserService) Register(username, password string) (*db.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, ErrCredentialsRequired
	}
	if len([]rune(password)) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	var count int64
	if err := s.db.Model(&db.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := db.User{Username: username, Password: string(hashed)}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := db.Profile{UserID: user.ID, FirstName: username, ReminderTime: db.DefaultReminderTime}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Authenticate 校验用户名与密码
func (s *UserService) Authenticate(username, password string) (*db.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var user db.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// Get 根据 ID 获取用户
func (s *UserService) Get(id uint) (*db.User, error) {
	var user db.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}
