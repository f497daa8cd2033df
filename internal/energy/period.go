package energy

import "time"

// PreferredPeriod 返回记录次数最多的时段，空历史返回 PeriodNone
// 并列时取扫描日志过程中最先出现的时段
func (e Engine) PreferredPeriod(logs []Log) Period {
	counts := newTally[Period]()
	for _, log := range logs {
		counts.add(e.PeriodOf(log.Date), 1)
	}

	period, ok := counts.top()
	if !ok {
		return PeriodNone
	}
	return period
}

// PeriodOf 返回单条记录时刻所属的时段
func (e Engine) PeriodOf(t time.Time) Period {
	return classifyHour(e.hour(t))
}

// PeriodWindow 返回时段对应的个性化小时闭区间，未知时段按 morning 处理
func PeriodWindow(period Period) (start, end int) {
	switch period {
	case PeriodAfternoon:
		return 12, 16
	case PeriodEvening:
		return 17, 23
	default:
		return 5, 11
	}
}

// classifyHour 与阶段建议使用的区间不同：5-11 为上午，12-16 为下午，其余（含凌晨）归入晚间
func classifyHour(hour int) Period {
	switch {
	case hour >= 5 && hour < 12:
		return PeriodMorning
	case hour >= 12 && hour < 17:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}
