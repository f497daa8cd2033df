package energy

import "time"

const dayFormat = "2006-01-02"

// Log 是引擎消费的单条能量记录，创建后不可变
// Date 同时用于推导自然日与小时；EnergyLevel 的取值范围 [1,10] 由日志存储层负责校验
type Log struct {
	Date            time.Time
	EnergyLevel     int
	Symptoms        []string
	PositiveFactors []string
	Activities      []string
	Notes           string
}

// Period 表示一天中的时段
type Period string

const (
	PeriodNone      Period = ""
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

// Engine 计算连续打卡、积分、成就与洞察
// 所有方法都是纯函数，只依赖传入的日志序列与 now；Location 为空时使用 time.Local
type Engine struct {
	Location *time.Location
}

func (e Engine) location() *time.Location {
	if e.Location == nil {
		return time.Local
	}
	return e.Location
}

func (e Engine) local(t time.Time) time.Time {
	return t.In(e.location())
}

func (e Engine) dayKey(t time.Time) string {
	return e.local(t).Format(dayFormat)
}

func (e Engine) hour(t time.Time) int {
	return e.local(t).Hour()
}

// tally 按首次出现的顺序累计权重，top 在并列时返回最早出现的键
type tally[K comparable] struct {
	order  []K
	totals map[K]int
}

func newTally[K comparable]() *tally[K] {
	return &tally[K]{totals: make(map[K]int)}
}

func (t *tally[K]) add(key K, weight int) {
	if _, seen := t.totals[key]; !seen {
		t.order = append(t.order, key)
	}
	t.totals[key] += weight
}

func (t *tally[K]) top() (K, bool) {
	var best K
	found := false
	bestTotal := 0
	for _, key := range t.order {
		total := t.totals[key]
		if !found || total > bestTotal {
			best = key
			bestTotal = total
			found = true
		}
	}
	return best, found
}
