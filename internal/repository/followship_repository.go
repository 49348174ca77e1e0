package repository

import (
	"foodmap/internal/model"

	"gorm.io/gorm"
)

// FollowshipRepository 关注关系仓储（有向边）
type FollowshipRepository struct {
	orm *gorm.DB
}

// NewFollowshipRepository 创建FollowshipRepository实例
func NewFollowshipRepository(orm *gorm.DB) *FollowshipRepository {
	return &FollowshipRepository{orm: orm}
}

// Create 插入关注关系
func (r *FollowshipRepository) Create(followerID, followingID uint) error {
	return r.orm.Create(&model.Followship{
		FollowerID:  followerID,
		FollowingID: followingID,
	}).Error
}

// Delete 删除关注关系，返回实际删除的行数
func (r *FollowshipRepository) Delete(followerID, followingID uint) (int64, error) {
	res := r.orm.
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Followship{})
	return res.RowsAffected, res.Error
}

// Exists 判断关注关系是否存在
func (r *FollowshipRepository) Exists(followerID, followingID uint) (bool, error) {
	var count int64
	err := r.orm.Model(&model.Followship{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// ListFollowingIDs 查询 followerID 关注的全部用户ID
func (r *FollowshipRepository) ListFollowingIDs(followerID uint) ([]uint, error) {
	var ids []uint
	err := r.orm.Model(&model.Followship{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error
	return ids, err
}

// CountFollowers 统计 userID 的粉丝数
func (r *FollowshipRepository) CountFollowers(userID uint) (int64, error) {
	var count int64
	err := r.orm.Model(&model.Followship{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	return count, err
}
