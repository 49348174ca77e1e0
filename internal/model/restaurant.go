package model

import (
	"time"

	"gorm.io/gorm"
)

// Restaurant 餐厅模型
// 本服务只负责关系维护，餐厅目录本身由外部组件维护，这里保留最小字段

type Restaurant struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"type:varchar(128);not null;comment:餐厅名称"`
	Tel         string         `gorm:"type:varchar(32);comment:电话"`
	Address     string         `gorm:"type:varchar(255);comment:地址"`
	Description string         `gorm:"type:text;comment:简介"`
	Image       string         `gorm:"type:varchar(255);comment:封面图引用"`
	CreatedAt   time.Time      `gorm:"comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Restaurant) TableName() string { return "restaurant" }
