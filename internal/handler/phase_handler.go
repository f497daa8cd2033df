package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListPhases 返回三个能量阶段
func (a *API) ListPhases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"phases": a.phases.All()})
}

// CurrentPhase 返回服务器当前时刻所处阶段及对应的建议
func (a *API) CurrentPhase(c *gin.Context) {
	now := a.now().In(a.location())
	phase := a.engine.CurrentPhase(a.phases, now)

	c.JSON(http.StatusOK, gin.H{
		"phase":       phase,
		"suggestions": a.phases.Suggestions(phase.Key),
		"hour":        now.Hour(),
	})
}

// ListGuides 返回能量指南、常见消耗与补给以及反思问题
func (a *API) ListGuides(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"guides":   a.phases.Guides(),
		"drains":   a.phases.Drains(),
		"boosters": a.phases.Boosters(),
		"prompts":  a.phases.Prompts(),
	})
}
