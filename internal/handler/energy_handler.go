package handler

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/zenflow/internal/db"
	"github.com/zenflow/internal/energy"
	"github.com/zenflow/internal/service"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

type energyLogPayload struct {
	EnergyLevel     int      `json:"energy_level"`
	Symptoms        []string `json:"symptoms"`
	PositiveFactors []string `json:"positive_factors"`
	Activities      []string `json:"activities"`
	Notes           string   `json:"notes"`
}

type analyticsPayload struct {
	PreferredPeriod energy.Period           `json:"preferred_period"`
	BestTimeOfDay   energy.Period           `json:"best_time_of_day"`
	BestFactor      string                  `json:"best_factor"`
	EnergyTrend     []energy.TrendPoint     `json:"energy_trend"`
	ActivityImpact  []energy.ActivityImpact `json:"activity_impact"`
	Insights        []string                `json:"insights"`
}

// CreateEnergyLog 追加一条打卡并返回最新快照
func (a *API) CreateEnergyLog(c *gin.Context) {
	var payload energyLogPayload
	if !bindJSON(c, &payload, "invalid energy log payload") {
		return
	}

	userID := mustUserID(c)
	now := a.now()
	entry, err := a.logs.Append(userID, service.EnergyLogInput{
		EnergyLevel:     payload.EnergyLevel,
		Symptoms:        payload.Symptoms,
		PositiveFactors: payload.PositiveFactors,
		Activities:      payload.Activities,
		Notes:           payload.Notes,
	}, now)
	if err != nil {
		handleServiceError(c, err, "failed to save energy log")
		return
	}

	snapshot, err := a.progress.Snapshot(userID, now)
	if err != nil {
		handleServiceError(c, err, "failed to compute progress")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"log":      a.energyLogToPayload(*entry),
		"snapshot": snapshot,
	})
}

// ListEnergyLogs 返回最近的打卡记录，最新的在末尾
func (a *API) ListEnergyLogs(c *gin.Context) {
	limit := parseLimitQuery(c, service.DefaultRecentLimit)
	records, err := a.logs.Recent(mustUserID(c), limit)
	if err != nil {
		handleServiceError(c, err, "failed to list energy logs")
		return
	}

	items := make([]gin.H, 0, len(records))
	for _, record := range records {
		items = append(items, a.energyLogToPayload(record))
	}
	c.JSON(http.StatusOK, gin.H{"logs": items})
}

// GetProgress 返回完整进度快照
func (a *API) GetProgress(c *gin.Context) {
	snapshot, err := a.progress.Snapshot(mustUserID(c), a.now())
	if err != nil {
		handleServiceError(c, err, "failed to compute progress")
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": snapshot})
}

// GetAnalytics 返回趋势、活动影响与洞察，limit 控制趋势包含的记录数
func (a *API) GetAnalytics(c *gin.Context) {
	history, err := a.progress.History(mustUserID(c))
	if err != nil {
		handleServiceError(c, err, "failed to load analytics")
		return
	}

	payload := analyticsPayload{
		PreferredPeriod: a.engine.PreferredPeriod(history),
		EnergyTrend:     a.engine.Trend(history, parseLimitQuery(c, energy.TrendWindow)),
		ActivityImpact:  energy.RankActivityImpact(history),
		Insights:        a.engine.Insights(history),
	}
	if period, ok := a.engine.BestTimeOfDay(history); ok {
		payload.BestTimeOfDay = period
	}
	if factor, ok := energy.BestFactor(history); ok {
		payload.BestFactor = factor
	}

	c.JSON(http.StatusOK, gin.H{"analytics": payload})
}

func (a *API) energyLogToPayload(record db.EnergyLog) gin.H {
	return gin.H{
		"id":               record.PublicID,
		"logged_at":        record.LoggedAt.In(a.location()),
		"period":           a.engine.PeriodOf(record.LoggedAt),
		"energy_level":     record.EnergyLevel,
		"symptoms":         nonNil(record.Symptoms),
		"positive_factors": nonNil(record.PositiveFactors),
		"activities":       nonNil(record.Activities),
		"notes":            record.Notes,
		"notes_html":       renderNotes(record.Notes),
	}
}

func (a *API) location() *time.Location {
	if a.engine.Location == nil {
		return time.Local
	}
	return a.engine.Location
}

func renderNotes(notes string) string {
	if strings.TrimSpace(notes) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(notes), &buf); err != nil {
		return ""
	}
	return string(sanitizer.SanitizeBytes(buf.Bytes()))
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
