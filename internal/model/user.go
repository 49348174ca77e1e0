package model

import (
	"time"

	"gorm.io/gorm"
)

// User 用户模型
// 索引与唯一约束：邮箱唯一
// 说明：密码仅存储哈希（PasswordHash），不存储明文
// Image 为头像图片的存储引用（URL或相对路径）

type User struct {
	ID           uint           `gorm:"primaryKey"`
	Name         string         `gorm:"type:varchar(64);not null;comment:用户名"`
	Email        string         `gorm:"type:varchar(128);not null;uniqueIndex;comment:邮箱"`
	PasswordHash string         `gorm:"type:varchar(255);not null;comment:密码哈希"`
	Image        string         `gorm:"type:varchar(255);comment:头像引用"`
	IsAdmin      bool           `gorm:"default:false;comment:是否管理员"`
	CreatedAt    time.Time      `gorm:"comment:创建时间"`
	UpdatedAt    time.Time      `gorm:"comment:更新时间"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName 指定表名（全局配置使用单数表名）
func (User) TableName() string { return "user" }
