package repository

import (
	"foodmap/internal/model"

	"gorm.io/gorm"
)

// LikeRepository 点赞关系仓储
// 与收藏同构但独立成表，语义互不影响
type LikeRepository struct {
	orm *gorm.DB
}

// NewLikeRepository 创建LikeRepository实例
func NewLikeRepository(orm *gorm.DB) *LikeRepository {
	return &LikeRepository{orm: orm}
}

// Create 插入点赞关系
func (r *LikeRepository) Create(userID, restaurantID uint) error {
	return r.orm.Create(&model.Like{
		UserID:       userID,
		RestaurantID: restaurantID,
	}).Error
}

// Delete 删除点赞关系，返回实际删除的行数
func (r *LikeRepository) Delete(userID, restaurantID uint) (int64, error) {
	res := r.orm.
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&model.Like{})
	return res.RowsAffected, res.Error
}

// CountByRestaurant 统计餐厅被点赞次数
func (r *LikeRepository) CountByRestaurant(restaurantID uint) (int64, error) {
	var count int64
	err := r.orm.Model(&model.Like{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count).Error
	return count, err
}
