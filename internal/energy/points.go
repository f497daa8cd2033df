package energy

const (
	basePoints          = 10
	streakBonusPerDay   = 2
	notesBonus          = 2
	activitiesBonus     = 3
	factorsBonus        = 3
	consistentHourBonus = 5
)

// Points 汇总全部历史记录的积分
// 连续天数奖励按条计算：streak>1 时每条记录都加 2*streak，因此随记录数线性放大
func (e Engine) Points(logs []Log, streak int) int {
	hourCounts := make(map[int]int, 24)
	for _, log := range logs {
		hourCounts[e.hour(log.Date)]++
	}

	total := 0
	for _, log := range logs {
		points := basePoints
		if streak > 1 {
			points += streakBonusPerDay * streak
		}
		if log.Notes != "" {
			points += notesBonus
		}
		if len(log.Activities) > 0 {
			points += activitiesBonus
		}
		if len(log.PositiveFactors) > 0 {
			points += factorsBonus
		}
		// 同一小时出现过不止一次
		if hourCounts[e.hour(log.Date)] > 1 {
			points += consistentHourBonus
		}
		total += points
	}

	return total
}
