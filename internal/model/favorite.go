package model

import "time"

// Favorite 收藏关系
// (UserID, RestaurantID) 组合唯一，重复插入由数据库唯一索引拒绝

type Favorite struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_favorite_pair;comment:用户ID"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_favorite_pair;index;comment:餐厅ID"`
	CreatedAt    time.Time `gorm:"comment:创建时间"`
}

func (Favorite) TableName() string { return "favorite" }
