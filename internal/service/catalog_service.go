package service

import (
	"errors"
	"strings"

	"foodmap/internal/model"
	"foodmap/internal/repository"

	"gorm.io/gorm"
)

// CatalogService 餐厅目录服务
// 目录主体由外部组件维护，这里提供只读浏览和管理端录入
type CatalogService struct {
	restaurantRepo *repository.RestaurantRepository
	favoriteRepo   *repository.FavoriteRepository
	likeRepo       *repository.LikeRepository
}

// NewCatalogService 创建CatalogService实例
func NewCatalogService(
	restaurantRepo *repository.RestaurantRepository,
	favoriteRepo *repository.FavoriteRepository,
	likeRepo *repository.LikeRepository,
) *CatalogService {
	return &CatalogService{
		restaurantRepo: restaurantRepo,
		favoriteRepo:   favoriteRepo,
		likeRepo:       likeRepo,
	}
}

// List 餐厅列表
func (s *CatalogService) List() ([]*model.Restaurant, error) {
	return s.restaurantRepo.List()
}

// RestaurantDetail 餐厅详情（附带互动计数）
type RestaurantDetail struct {
	Restaurant    *model.Restaurant
	FavoriteCount int64
	LikeCount     int64
}

// Get 餐厅详情
func (s *CatalogService) Get(restaurantID uint) (*RestaurantDetail, error) {
	rest, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	favoriteCount, err := s.favoriteRepo.CountByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	likeCount, err := s.likeRepo.CountByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}

	return &RestaurantDetail{
		Restaurant:    rest,
		FavoriteCount: favoriteCount,
		LikeCount:     likeCount,
	}, nil
}

// Create 管理端录入餐厅
func (s *CatalogService) Create(name, tel, address, description, image string) (*model.Restaurant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidOperation
	}

	rest := &model.Restaurant{
		Name:        name,
		Tel:         tel,
		Address:     address,
		Description: description,
		Image:       image,
	}
	if err := s.restaurantRepo.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}
