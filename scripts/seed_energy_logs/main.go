package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/zenflow/internal/config"
	"github.com/zenflow/internal/db"
	"github.com/zenflow/internal/energy"
	"github.com/zenflow/internal/service"
	"gorm.io/gorm"
)

// 演示数据生成器：为指定用户写入最近若干天的能量记录
func main() {
	cfg := config.Load()

	var dbPath, username string
	var days, perDay int
	var seed int64
	flag.StringVar(&dbPath, "db", cfg.DatabasePath, "sqlite db path")
	flag.StringVar(&username, "user", "demo", "user to seed logs for")
	flag.IntVar(&days, "days", 10, "number of days ending today")
	flag.IntVar(&perDay, "per-day", 2, "logs per day")
	flag.Int64Var(&seed, "seed", 42, "random seed")
	flag.Parse()

	if err := db.Init(dbPath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	var user db.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		log.Fatalf("找不到用户 %s: %v", username, err)
	}

	phases, err := energy.LoadPhasesFile(cfg.PhasesFile)
	if err != nil {
		log.Fatalf("加载阶段配置失败: %v", err)
	}

	now := time.Now().In(cfg.Location())
	created, err := seedLogs(db.DB, user.ID, phases, now, days, perDay, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatalf("生成记录失败: %v", err)
	}

	fmt.Printf("已为 %s 生成 %d 条能量记录\n", username, created)
}

// seedLogs 从最早一天开始按时间顺序写入，每天的记录分布在三个阶段的中点附近
func seedLogs(gdb *gorm.DB, userID uint, phases *energy.PhaseTable, now time.Time, days, perDay int, rng *rand.Rand) (int, error) {
	if days <= 0 || perDay <= 0 {
		return 0, nil
	}

	svc := service.NewEnergyLogService(gdb)
	all := phases.All()
	drains := phases.Drains()
	boosters := phases.Boosters()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	created := 0
	for offset := days - 1; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		for i := 0; i < perDay; i++ {
			phase := all[i%len(all)]
			at := day.Add(time.Duration((phase.Start+phase.End)/2) * time.Hour).
				Add(time.Duration(rng.Intn(60)) * time.Minute)
			if at.After(now) {
				continue
			}

			input := service.EnergyLogInput{
				EnergyLevel:     service.MinEnergyLevel + rng.Intn(service.MaxEnergyLevel),
				PositiveFactors: pick(rng, boosters, 1+rng.Intn(3)),
				Symptoms:        pick(rng, drains, rng.Intn(3)),
				Activities:      pick(rng, phases.Suggestions(phase.Key), 1+rng.Intn(2)),
			}
			if rng.Intn(2) == 0 {
				input.Notes = fmt.Sprintf("Seeded %s check-in: focus felt %s.", phase.Key, phase.EnergyLevel)
			}

			if _, err := svc.Append(userID, input, at); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

func pick(rng *rand.Rand, items []string, n int) []string {
	if n <= 0 || len(items) == 0 {
		return nil
	}
	n = min(n, len(items))
	picked := make([]string, 0, n)
	for _, idx := range rng.Perm(len(items))[:n] {
		picked = append(picked, items[idx])
	}
	return picked
}
