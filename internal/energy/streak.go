package energy

import (
	"slices"
	"time"
)

// UniqueDays 返回日志覆盖的不同自然日数量
func (e Engine) UniqueDays(logs []Log) int {
	return len(e.daySet(logs))
}

// Streak 计算截至 now 所在自然日的连续记录天数
// 最近一次记录不在今天时直接归零；同一天多条记录只计一次
func (e Engine) Streak(logs []Log, now time.Time) int {
	days := e.daySet(logs)
	if len(days) == 0 {
		return 0
	}

	keys := make([]string, 0, len(days))
	for day := range days {
		keys = append(keys, day)
	}
	slices.Sort(keys)
	slices.Reverse(keys)

	today := e.local(now)
	if keys[0] != today.Format(dayFormat) {
		return 0
	}

	// 取正午向前回溯，避免夏令时切换日少于 24 小时带来的偏差
	cursor := time.Date(today.Year(), today.Month(), today.Day(), 12, 0, 0, 0, today.Location())
	streak := 1
	for {
		cursor = cursor.AddDate(0, 0, -1)
		if _, ok := days[cursor.Format(dayFormat)]; !ok {
			break
		}
		streak++
	}

	return streak
}

func (e Engine) daySet(logs []Log) map[string]struct{} {
	days := make(map[string]struct{}, len(logs))
	for _, log := range logs {
		days[e.dayKey(log.Date)] = struct{}{}
	}
	return days
}
