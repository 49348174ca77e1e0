package repository

import (
	"foodmap/internal/model"

	"gorm.io/gorm"
)

// FavoriteRepository 收藏关系仓储
// 唯一性由 favorite 表的组合唯一索引保证，重复插入返回 gorm.ErrDuplicatedKey
type FavoriteRepository struct {
	orm *gorm.DB
}

// NewFavoriteRepository 创建FavoriteRepository实例
func NewFavoriteRepository(orm *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{orm: orm}
}

// Create 插入收藏关系
func (r *FavoriteRepository) Create(userID, restaurantID uint) error {
	return r.orm.Create(&model.Favorite{
		UserID:       userID,
		RestaurantID: restaurantID,
	}).Error
}

// Delete 删除收藏关系，返回实际删除的行数
func (r *FavoriteRepository) Delete(userID, restaurantID uint) (int64, error) {
	res := r.orm.
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&model.Favorite{})
	return res.RowsAffected, res.Error
}

// Exists 判断收藏关系是否存在
func (r *FavoriteRepository) Exists(userID, restaurantID uint) (bool, error) {
	var count int64
	err := r.orm.Model(&model.Favorite{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&count).Error
	return count > 0, err
}

// CountByRestaurant 统计餐厅被收藏次数
func (r *FavoriteRepository) CountByRestaurant(restaurantID uint) (int64, error) {
	var count int64
	err := r.orm.Model(&model.Favorite{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count).Error
	return count, err
}
