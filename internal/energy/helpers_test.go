package energy

import "time"

var (
	utcEngine = Engine{Location: time.UTC}
	testNow   = time.Date(2024, 5, 20, 18, 30, 0, 0, time.UTC)
)

// at 返回 testNow 往前 daysAgo 天、指定小时的时间点
func at(daysAgo, hour int) time.Time {
	day := testNow.AddDate(0, 0, -daysAgo)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
}

func logAt(daysAgo, hour, level int) Log {
	return Log{Date: at(daysAgo, hour), EnergyLevel: level}
}
