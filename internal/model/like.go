package model

import "time"

// Like 点赞关系
// 与 Favorite 同构但语义独立，各自维护唯一索引

type Like struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_like_pair;comment:用户ID"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_like_pair;index;comment:餐厅ID"`
	CreatedAt    time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名（like 是SQL保留字，这里用复数避开）
func (Like) TableName() string { return "likes" }
