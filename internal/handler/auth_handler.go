package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/zenflow/internal/db"
)

type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func userPayload(user *db.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"created_at": user.CreatedAt,
	}
}

// Register 注册账号并直接建立会话
func (a *API) Register(c *gin.Context) {
	var payload credentialsPayload
	if !bindJSON(c, &payload, "invalid registration payload") {
		return
	}

	user, err := a.users.Register(payload.Username, payload.Password)
	if err != nil {
		handleServiceError(c, err, "failed to register user")
		return
	}

	if err := startSession(c, user); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": userPayload(user)})
}

// Login 校验用户名密码并写入会话
func (a *API) Login(c *gin.Context) {
	var payload credentialsPayload
	if !bindJSON(c, &payload, "invalid login payload") {
		return
	}

	user, err := a.users.Authenticate(payload.Username, payload.Password)
	if err != nil {
		handleServiceError(c, err, "failed to sign in")
		return
	}

	if err := startSession(c, user); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}

// Logout 清空会话
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to clear session")
		return
	}
	c.Status(http.StatusNoContent)
}

// AuthRequired 要求请求携带已登录会话，否则返回 401
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Set(sessionUserIDKey, userID)
		c.Next()
	}
}

func startSession(c *gin.Context, user *db.User) error {
	session := sessions.Default(c)
	session.Clear()
	session.Set(sessionUserIDKey, user.ID)
	session.Set(sessionUsernameKey, user.Username)
	return session.Save()
}

// mustUserID 读取 AuthRequired 放入上下文的用户 ID
func mustUserID(c *gin.Context) uint {
	if value, ok := c.Get(sessionUserIDKey); ok {
		if id, ok := value.(uint); ok {
			return id
		}
	}
	id, _ := currentUserID(c)
	return id
}
