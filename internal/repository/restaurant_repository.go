package repository

import (
	"foodmap/internal/model"

	"gorm.io/gorm"
)

// RestaurantRepository 餐厅数据仓储（目录只读 + 管理端创建）
type RestaurantRepository struct {
	orm *gorm.DB
}

// NewRestaurantRepository 创建RestaurantRepository实例
func NewRestaurantRepository(orm *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{orm: orm}
}

// Create 创建餐厅
func (r *RestaurantRepository) Create(restaurant *model.Restaurant) error {
	return r.orm.Create(restaurant).Error
}

// GetByID 根据ID获取餐厅
func (r *RestaurantRepository) GetByID(id uint) (*model.Restaurant, error) {
	var rest model.Restaurant
	if err := r.orm.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// List 获取餐厅列表
func (r *RestaurantRepository) List() ([]*model.Restaurant, error) {
	var restaurants []*model.Restaurant
	err := r.orm.Order("id ASC").Find(&restaurants).Error
	return restaurants, err
}

// ListFavoritedBy 查询 userID 收藏的餐厅列表
func (r *RestaurantRepository) ListFavoritedBy(userID uint) ([]*model.Restaurant, error) {
	var restaurants []*model.Restaurant
	err := r.orm.Model(&model.Restaurant{}).
		Joins("JOIN favorite ON favorite.restaurant_id = restaurant.id").
		Where("favorite.user_id = ?", userID).
		Order("favorite.created_at DESC").
		Find(&restaurants).Error
	return restaurants, err
}
