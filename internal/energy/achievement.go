package energy

import (
	"strings"
	"unicode/utf8"
)

const (
	peakPerformerLevel     = 7
	peakPerformerCount     = 5
	energyAlchemistLevel   = 8
	energyAlchemistCount   = 10
	balanceKeeperCount     = 7
	consistencyStreakDays  = 14
	reflectionNotesRunes   = 50
	reflectionSageCount    = 5
	mindfulFactorsMinimum  = 3
	mindfulSymptomsMinimum = 2
	mindfulObserverCount   = 5
	achievementTotal       = 6
	balanceBreakMarker     = "Break"
	balanceWorkMarker      = "Work"
)

// Achievements 六项成就的解锁状态
// ConsistencyChampion 与 PeakPerformer 依赖当前连续天数与偏好时段，可能重新变回 false
type Achievements struct {
	PeakPerformer       bool `json:"peak_performer"`
	EnergyAlchemist     bool `json:"energy_alchemist"`
	BalanceKeeper       bool `json:"balance_keeper"`
	ConsistencyChampion bool `json:"consistency_champion"`
	ReflectionSage      bool `json:"reflection_sage"`
	MindfulObserver     bool `json:"mindful_observer"`
}

// AchievementCard 用于展示的成就描述
type AchievementCard struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// Achievements 根据全部历史、当前连续天数与偏好时段评估成就
func (e Engine) Achievements(logs []Log, streak int, period Period) Achievements {
	start, end := PeriodWindow(period)

	var peak, alchemist, balance, reflection, mindful int
	for _, log := range logs {
		hour := e.hour(log.Date)
		if log.EnergyLevel >= peakPerformerLevel && hour >= start && hour <= end {
			peak++
		}
		if log.EnergyLevel >= energyAlchemistLevel {
			alchemist++
		}
		if anyContains(log.Activities, balanceBreakMarker) && anyContains(log.Activities, balanceWorkMarker) {
			balance++
		}
		if utf8.RuneCountInString(log.Notes) > reflectionNotesRunes {
			reflection++
		}
		if len(log.PositiveFactors) >= mindfulFactorsMinimum && len(log.Symptoms) >= mindfulSymptomsMinimum {
			mindful++
		}
	}

	return Achievements{
		PeakPerformer:       peak >= peakPerformerCount,
		EnergyAlchemist:     alchemist >= energyAlchemistCount,
		BalanceKeeper:       balance >= balanceKeeperCount,
		ConsistencyChampion: streak >= consistencyStreakDays,
		ReflectionSage:      reflection >= reflectionSageCount,
		MindfulObserver:     mindful >= mindfulObserverCount,
	}
}

// Unlocked 返回已解锁的成就数量
func (a Achievements) Unlocked() int {
	count := 0
	for _, unlocked := range []bool{
		a.PeakPerformer,
		a.EnergyAlchemist,
		a.BalanceKeeper,
		a.ConsistencyChampion,
		a.ReflectionSage,
		a.MindfulObserver,
	} {
		if unlocked {
			count++
		}
	}
	return count
}

// Cards 生成成就卡片，PeakPerformer 的标题随偏好时段变化
func (a Achievements) Cards(period Period) []AchievementCard {
	peakTitle, peakDescription := peakPerformerCopy(period)

	return []AchievementCard{
		{Key: "peak_performer", Title: peakTitle, Description: peakDescription, Unlocked: a.PeakPerformer},
		{Key: "energy_alchemist", Title: "Energy Alchemist", Description: "Transform your energy: Record 10 days with levels of 8 or higher", Unlocked: a.EnergyAlchemist},
		{Key: "balance_keeper", Title: "Balance Keeper", Description: "Balance work and breaks for 7 days", Unlocked: a.BalanceKeeper},
		{Key: "consistency_champion", Title: "Consistency Champion", Description: "Maintain a 14-day logging streak", Unlocked: a.ConsistencyChampion},
		{Key: "reflection_sage", Title: "Reflection Sage", Description: "Write detailed reflections for 5 days", Unlocked: a.ReflectionSage},
		{Key: "mindful_observer", Title: "Mindful Observer", Description: "Track multiple factors affecting your energy for 5 days", Unlocked: a.MindfulObserver},
	}
}

func peakPerformerCopy(period Period) (title, description string) {
	switch period {
	case PeriodMorning:
		return "Morning Peak Performer", "Maintain high energy (7+) during morning hours for 5 days"
	case PeriodAfternoon:
		return "Afternoon Achiever", "Maintain high energy (7+) during afternoon hours for 5 days"
	case PeriodEvening:
		return "Evening Excellence", "Maintain high energy (7+) during evening hours for 5 days"
	default:
		return "Peak Performer", "Maintain high energy (7+) during your preferred hours for 5 days"
	}
}

func anyContains(tags []string, marker string) bool {
	for _, tag := range tags {
		if strings.Contains(tag, marker) {
			return true
		}
	}
	return false
}
