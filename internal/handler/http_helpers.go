package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/zenflow/internal/service"
)

const (
	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
	maxRecentLimit     = 200
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// currentUserID 从会话中读取登录用户，cookie 会话里的数值可能被编码为不同整数类型
func currentUserID(c *gin.Context) (uint, bool) {
	raw := sessions.Default(c).Get(sessionUserIDKey)
	switch v := raw.(type) {
	case uint:
		return v, v > 0
	case int:
		return uint(v), v > 0
	case int64:
		return uint(v), v > 0
	case uint64:
		return uint(v), v > 0
	default:
		return 0, false
	}
}

// parseLimitQuery 解析 limit 查询参数，缺省或非法时返回 fallback，并限制上限
func parseLimitQuery(c *gin.Context, fallback int) int {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	return min(limit, maxRecentLimit)
}

// handleServiceError 将服务层的哨兵错误映射为 HTTP 状态码
func handleServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidEnergyLevel),
		errors.Is(err, service.ErrCredentialsRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrInvalidReminderTime):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserRequired):
		respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		c.Error(err)
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
