package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
)

// 独立的维护工具：清空全部业务表，供本地开发重置数据用
// 用法：go run ./tools/reset_db

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
		Charset  string `yaml:"charset"`
	} `yaml:"database"`
}

func main() {
	config := loadConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		config.Database.Username,
		config.Database.Password,
		config.Database.Host,
		config.Database.Port,
		config.Database.Database,
		config.Database.Charset,
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("连接数据库失败: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("数据库不可达: %v", err)
	}

	// 先删关系表再删实体表，避免外键阻塞
	tables := []string{"favorite", "likes", "followship", "comment", "restaurant", "user"}
	for _, table := range tables {
		if _, err := db.Exec("DROP TABLE IF EXISTS `" + table + "`"); err != nil {
			log.Fatalf("删除表 %s 失败: %v", table, err)
		}
		log.Printf("已删除表 %s", table)
	}

	log.Println("数据库已重置，重启服务后自动迁移将重建表结构")
}

func loadConfig() *Config {
	config := &Config{}
	config.Database.Host = "localhost"
	config.Database.Port = 3306
	config.Database.Username = "foodmap"
	config.Database.Password = "foodmap"
	config.Database.Database = "foodmap"
	config.Database.Charset = "utf8mb4"

	data, err := os.ReadFile("config/config.yaml")
	if err != nil {
		return config
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return config
	}
	return config
}
