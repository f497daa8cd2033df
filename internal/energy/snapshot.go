package energy

import (
	"math"
	"time"
)

const (
	// ChallengeDays 是解锁里程碑所需的不同记录天数
	ChallengeDays   = 7
	batteryCapacity = 30
	// TrendWindow 是快照中能量趋势保留的最近记录数
	TrendWindow = 7
)

// TrendPoint 是能量趋势图中的一个点
type TrendPoint struct {
	Date        time.Time `json:"date"`
	Day         string    `json:"day"`
	EnergyLevel int       `json:"energy_level"`
}

// Snapshot 汇总一次完整重算的全部派生指标，不做持久化
type Snapshot struct {
	LogCount               int               `json:"log_count"`
	UniqueDayCount         int               `json:"unique_day_count"`
	CurrentStreak          int               `json:"current_streak"`
	TotalPoints            int               `json:"total_points"`
	BatteryLevel           int               `json:"battery_level"`
	ChallengeDays          int               `json:"challenge_days"`
	ChallengeProgress      int               `json:"challenge_progress"`
	DaysRemaining          int               `json:"days_remaining"`
	HasUnlockedMilestones  bool              `json:"has_unlocked_milestones"`
	ChallengeJustCompleted bool              `json:"challenge_just_completed"`
	PreferredPeriod        Period            `json:"preferred_period"`
	Achievements           Achievements      `json:"achievements"`
	AchievementCards       []AchievementCard `json:"achievement_cards"`
	UnlockedCount          int               `json:"unlocked_count"`
	MasteryProgress        int               `json:"mastery_progress"`
	Insights               []string          `json:"insights"`
	ActivityImpact         []ActivityImpact  `json:"activity_impact"`
	EnergyTrend            []TrendPoint      `json:"energy_trend"`
}

// Compute 使用默认 Engine 计算快照
func Compute(logs []Log, now time.Time) Snapshot {
	return Engine{}.Snapshot(logs, now)
}

// Snapshot 对完整历史重新计算所有指标
func (e Engine) Snapshot(logs []Log, now time.Time) Snapshot {
	uniqueDays := e.UniqueDays(logs)
	streak := e.Streak(logs, now)
	period := e.PreferredPeriod(logs)
	achievements := e.Achievements(logs, streak, period)
	unlocked := achievements.Unlocked()

	return Snapshot{
		LogCount:               len(logs),
		UniqueDayCount:         uniqueDays,
		CurrentStreak:          streak,
		TotalPoints:            e.Points(logs, streak),
		BatteryLevel:           min(100, percent(len(logs), batteryCapacity)),
		ChallengeDays:          ChallengeDays,
		ChallengeProgress:      min(100, percent(uniqueDays, ChallengeDays)),
		DaysRemaining:          max(0, ChallengeDays-uniqueDays),
		HasUnlockedMilestones:  uniqueDays >= ChallengeDays,
		ChallengeJustCompleted: uniqueDays == ChallengeDays,
		PreferredPeriod:        period,
		Achievements:           achievements,
		AchievementCards:       achievements.Cards(period),
		UnlockedCount:          unlocked,
		MasteryProgress:        percent(unlocked, achievementTotal),
		Insights:               e.Insights(logs),
		ActivityImpact:         RankActivityImpact(logs),
		EnergyTrend:            e.Trend(logs, TrendWindow),
	}
}

// Trend 返回最近 limit 条记录的能量走势，按记录顺序排列
func (e Engine) Trend(logs []Log, limit int) []TrendPoint {
	if limit <= 0 || limit > len(logs) {
		limit = len(logs)
	}

	points := make([]TrendPoint, 0, limit)
	for _, log := range logs[len(logs)-limit:] {
		points = append(points, TrendPoint{
			Date:        log.Date,
			Day:         e.dayKey(log.Date),
			EnergyLevel: log.EnergyLevel,
		})
	}
	return points
}

// percent 对空分母返回 0
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
