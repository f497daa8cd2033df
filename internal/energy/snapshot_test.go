package energy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotEmptyHistory(t *testing.T) {
	snapshot := utcEngine.Snapshot(nil, testNow)

	assert.Zero(t, snapshot.LogCount)
	assert.Zero(t, snapshot.UniqueDayCount)
	assert.Zero(t, snapshot.CurrentStreak)
	assert.Zero(t, snapshot.TotalPoints)
	assert.Zero(t, snapshot.BatteryLevel)
	assert.Zero(t, snapshot.ChallengeProgress)
	assert.Zero(t, snapshot.UnlockedCount)
	assert.Zero(t, snapshot.MasteryProgress)
	assert.Equal(t, ChallengeDays, snapshot.DaysRemaining)
	assert.False(t, snapshot.HasUnlockedMilestones)
	assert.Equal(t, PeriodNone, snapshot.PreferredPeriod)
	assert.Equal(t, Achievements{}, snapshot.Achievements)
	require.NotNil(t, snapshot.Insights)
	assert.Empty(t, snapshot.Insights)
	assert.Empty(t, snapshot.ActivityImpact)
	assert.Empty(t, snapshot.EnergyTrend)
	assert.Equal(t, "Peak Performer", snapshot.AchievementCards[0].Title)
}

func TestComputeUsesDefaultEngine(t *testing.T) {
	snapshot := Compute(nil, time.Now())
	assert.Zero(t, snapshot.CurrentStreak)
	assert.Equal(t, ChallengeDays, snapshot.DaysRemaining)
}

func TestSnapshotSevenDayChallenge(t *testing.T) {
	logs := repeatLog(7, func(i int) Log { return logAt(6-i, 9, 8) })

	snapshot := utcEngine.Snapshot(logs, testNow)

	assert.Equal(t, 7, snapshot.UniqueDayCount)
	assert.Equal(t, 7, snapshot.CurrentStreak)
	assert.True(t, snapshot.HasUnlockedMilestones)
	assert.True(t, snapshot.ChallengeJustCompleted)
	assert.Equal(t, 100, snapshot.ChallengeProgress)
	assert.Zero(t, snapshot.DaysRemaining)
	// 每条：基础 10 + 连续奖励 14 + 同一小时 5
	assert.Equal(t, 7*(10+14+5), snapshot.TotalPoints)
	assert.Equal(t, 23, snapshot.BatteryLevel)
	assert.Equal(t, PeriodMorning, snapshot.PreferredPeriod)
	assert.True(t, snapshot.Achievements.PeakPerformer)
	assert.False(t, snapshot.Achievements.EnergyAlchemist)
}

func TestSnapshotEnergyAlchemistWithMorningMajority(t *testing.T) {
	hours := []int{7, 8, 9, 10, 11, 6, 14, 15, 19, 21}
	logs := make([]Log, 0, len(hours))
	for i, hour := range hours {
		logs = append(logs, logAt(len(hours)-i, hour, 8))
	}

	snapshot := utcEngine.Snapshot(logs, testNow)

	assert.True(t, snapshot.Achievements.EnergyAlchemist)
	assert.Equal(t, PeriodMorning, snapshot.PreferredPeriod)
	assert.True(t, snapshot.Achievements.PeakPerformer, "six morning logs at level 8 fill the morning window")
	assert.Zero(t, snapshot.CurrentStreak, "no log today")
	assert.Equal(t, 2, snapshot.UnlockedCount)
	assert.Equal(t, 33, snapshot.MasteryProgress)
	assert.Contains(t, snapshot.Insights, "You tend to have highest energy levels during the morning")
}

func TestSnapshotBatteryCapsAtHundred(t *testing.T) {
	tests := []struct {
		count   int
		battery int
	}{
		{1, 3},
		{15, 50},
		{30, 100},
		{45, 100},
	}

	for _, tt := range tests {
		logs := repeatLog(tt.count, func(i int) Log { return logAt(i%20, 9, 5) })
		assert.Equal(t, tt.battery, utcEngine.Snapshot(logs, testNow).BatteryLevel, "battery for %d logs", tt.count)
	}
}

func TestSnapshotTrendKeepsLastSevenLogs(t *testing.T) {
	logs := repeatLog(10, func(i int) Log { return logAt(9-i, 9, i+1) })

	trend := utcEngine.Snapshot(logs, testNow).EnergyTrend

	require.Len(t, trend, 7)
	assert.Equal(t, 4, trend[0].EnergyLevel)
	assert.Equal(t, 10, trend[6].EnergyLevel)
	assert.Equal(t, "2024-05-20", trend[6].Day)
}

func TestSnapshotPointsFloor(t *testing.T) {
	logs := []Log{logAt(3, 9, 2), logAt(1, 23, 9), logAt(0, 0, 10), logAt(0, 14, 6)}
	snapshot := utcEngine.Snapshot(logs, testNow)
	assert.GreaterOrEqual(t, snapshot.TotalPoints, 10*len(logs))
	assert.LessOrEqual(t, snapshot.CurrentStreak, snapshot.UniqueDayCount)
}
