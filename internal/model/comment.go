package model

import (
	"time"

	"gorm.io/gorm"
)

// Comment 评论模型
// 本服务只做只读聚合（按作者查询评论过的餐厅），写入由外部评论组件负责

type Comment struct {
	ID           uint           `gorm:"primaryKey"`
	UserID       uint           `gorm:"not null;index;comment:作者ID"`
	RestaurantID uint           `gorm:"not null;index;comment:餐厅ID"`
	Text         string         `gorm:"type:text;not null;comment:评论内容"`
	CreatedAt    time.Time      `gorm:"comment:创建时间"`
	UpdatedAt    time.Time      `gorm:"comment:更新时间"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Restaurant Restaurant `gorm:"foreignKey:RestaurantID"`
}

func (Comment) TableName() string { return "comment" }
