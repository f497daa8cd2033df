package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/zenflow/internal/config"
	"github.com/zenflow/internal/db"
)

func main() {
	cfg := config.Load()

	var dbPath, username, password string
	flag.StringVar(&dbPath, "db", cfg.DatabasePath, "sqlite db path")
	flag.StringVar(&username, "user", "demo", "username to create")
	flag.StringVar(&password, "password", "demo1234", "password for the new user")
	flag.Parse()

	// 初始化数据库
	if err := db.Init(dbPath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	// 检查是否已存在用户
	var count int64
	db.DB.Model(&db.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		fmt.Println("用户已存在，无需初始化")
		return
	}

	if err := db.EnsureUser(username, password); err != nil {
		log.Fatal("创建用户失败:", err)
	}

	fmt.Println("用户创建成功")
	fmt.Println("用户名:", username)
	fmt.Println("密码:", password)
}
