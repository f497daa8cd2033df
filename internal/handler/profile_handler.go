package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenflow/internal/db"
	"github.com/zenflow/internal/service"
)

type profileRequest struct {
	FirstName    *string `json:"first_name"`
	ReminderTime *string `json:"reminder_time"`
}

func profilePayload(profile *db.Profile) gin.H {
	return gin.H{
		"first_name":    profile.FirstName,
		"reminder_time": profile.ReminderTime,
	}
}

// GetMe 返回当前登录用户及其资料
func (a *API) GetMe(c *gin.Context) {
	userID := mustUserID(c)

	user, err := a.users.Get(userID)
	if err != nil {
		handleServiceError(c, err, "failed to load user")
		return
	}
	profile, err := a.profiles.Get(userID)
	if err != nil {
		handleServiceError(c, err, "failed to load profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    userPayload(user),
		"profile": profilePayload(profile),
	})
}

// UpdateProfile 更新称呼与提醒时间
func (a *API) UpdateProfile(c *gin.Context) {
	var payload profileRequest
	if !bindJSON(c, &payload, "invalid profile payload") {
		return
	}

	profile, err := a.profiles.Save(mustUserID(c), service.ProfileInput{
		FirstName:    payload.FirstName,
		ReminderTime: payload.ReminderTime,
	})
	if err != nil {
		handleServiceError(c, err, "failed to save profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profilePayload(profile)})
}
