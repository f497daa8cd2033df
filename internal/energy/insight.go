package energy

import (
	"cmp"
	"fmt"
	"slices"
)

const peakInsightLevel = 8

// ActivityImpact 活动标签对应的平均能量
type ActivityImpact struct {
	Activity string  `json:"activity"`
	Impact   float64 `json:"impact"`
	Samples  int     `json:"samples"`
}

// Insights 生成叙述性洞察：先是高能量时段，再是贡献最大的提升因素
// 没有符合条件的数据时返回空切片
func (e Engine) Insights(logs []Log) []string {
	insights := make([]string, 0, 2)

	if period, ok := e.BestTimeOfDay(logs); ok {
		insights = append(insights, fmt.Sprintf("You tend to have highest energy levels during the %s", period))
	}
	if factor, ok := BestFactor(logs); ok {
		insights = append(insights, fmt.Sprintf("\"%s\" consistently helps improve your energy levels", factor))
	}

	return insights
}

// BestTimeOfDay 统计能量 >= 8 的记录落在哪个时段最多
// 这里的分桶是 <12 上午、<17 下午、其余晚间，与偏好时段的分桶不同
func (e Engine) BestTimeOfDay(logs []Log) (Period, bool) {
	counts := newTally[Period]()
	for _, log := range logs {
		if log.EnergyLevel < peakInsightLevel {
			continue
		}
		hour := e.hour(log.Date)
		switch {
		case hour < 12:
			counts.add(PeriodMorning, 1)
		case hour < 17:
			counts.add(PeriodAfternoon, 1)
		default:
			counts.add(PeriodEvening, 1)
		}
	}
	return counts.top()
}

// BestFactor 按提升因素累加能量值（求和而非平均），返回总和最高的因素
func BestFactor(logs []Log) (string, bool) {
	sums := newTally[string]()
	for _, log := range logs {
		for _, factor := range log.PositiveFactors {
			sums.add(factor, log.EnergyLevel)
		}
	}
	return sums.top()
}

// RankActivityImpact 计算每个活动标签的平均能量并降序排列，并列时保持首次出现顺序
func RankActivityImpact(logs []Log) []ActivityImpact {
	sums := newTally[string]()
	samples := make(map[string]int)
	for _, log := range logs {
		for _, activity := range log.Activities {
			sums.add(activity, log.EnergyLevel)
			samples[activity]++
		}
	}

	ranking := make([]ActivityImpact, 0, len(sums.order))
	for _, activity := range sums.order {
		count := samples[activity]
		ranking = append(ranking, ActivityImpact{
			Activity: activity,
			Impact:   float64(sums.totals[activity]) / float64(count),
			Samples:  count,
		})
	}

	slices.SortStableFunc(ranking, func(a, b ActivityImpact) int {
		return cmp.Compare(b.Impact, a.Impact)
	})

	return ranking
}
