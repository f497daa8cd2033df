package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/zenflow/internal/handler"
)

const sessionName = "zenflow_session"

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions(sessionName, store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	r.GET("/metrics", gin.WrapH(api.Metrics().Handler()))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/phases", api.ListPhases)
		apiGroup.GET("/phases/current", api.CurrentPhase)
		apiGroup.GET("/guides", api.ListGuides)

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", api.LoginLimiter().Middleware(), api.Register)
			authGroup.POST("/login", api.LoginLimiter().Middleware(), api.Login)
			authGroup.POST("/logout", api.Logout)
		}

		// 需要登录的路由
		protected := apiGroup.Group("")
		protected.Use(handler.AuthRequired())
		{
			protected.GET("/me", api.GetMe)
			protected.PUT("/me/profile", api.UpdateProfile)

			protected.POST("/logs", api.CreateEnergyLog)
			protected.GET("/logs", api.ListEnergyLogs)
			protected.GET("/progress", api.GetProgress)
			protected.GET("/analytics", api.GetAnalytics)
		}
	}

	return r
}
