package service

import (
	"errors"

	"foodmap/internal/repository"

	"gorm.io/gorm"
)

// EngagementService 收藏/点赞服务
// 两种关系都是纯存在性开关：目标必须存在，关系至多一行，
// 重复插入由数据库唯一索引拒绝并翻译为 ErrConflict
type EngagementService struct {
	restaurantRepo *repository.RestaurantRepository
	favoriteRepo   *repository.FavoriteRepository
	likeRepo       *repository.LikeRepository
}

// NewEngagementService 创建EngagementService实例
func NewEngagementService(
	restaurantRepo *repository.RestaurantRepository,
	favoriteRepo *repository.FavoriteRepository,
	likeRepo *repository.LikeRepository,
) *EngagementService {
	return &EngagementService{
		restaurantRepo: restaurantRepo,
		favoriteRepo:   favoriteRepo,
		likeRepo:       likeRepo,
	}
}

// AddFavorite 收藏餐厅
func (s *EngagementService) AddFavorite(userID, restaurantID uint) error {
	if err := s.checkRestaurant(restaurantID); err != nil {
		return err
	}
	return translateDBError(s.favoriteRepo.Create(userID, restaurantID))
}

// RemoveFavorite 取消收藏
func (s *EngagementService) RemoveFavorite(userID, restaurantID uint) error {
	affected, err := s.favoriteRepo.Delete(userID, restaurantID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddLike 点赞餐厅
func (s *EngagementService) AddLike(userID, restaurantID uint) error {
	if err := s.checkRestaurant(restaurantID); err != nil {
		return err
	}
	return translateDBError(s.likeRepo.Create(userID, restaurantID))
}

// RemoveLike 取消点赞
func (s *EngagementService) RemoveLike(userID, restaurantID uint) error {
	affected, err := s.likeRepo.Delete(userID, restaurantID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// checkRestaurant 确认目标餐厅存在
func (s *EngagementService) checkRestaurant(restaurantID uint) error {
	if _, err := s.restaurantRepo.GetByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
