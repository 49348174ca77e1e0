package model

import "time"

// Followship 关注关系（有向边：follower 关注 following）
// (FollowerID, FollowingID) 组合唯一；自关注在服务层拒绝

type Followship struct {
	ID          uint      `gorm:"primaryKey"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_followship_pair;comment:关注者ID"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_followship_pair;index;comment:被关注者ID"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
}

func (Followship) TableName() string { return "followship" }
