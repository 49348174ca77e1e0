package service_test

import (
	"errors"
	"testing"

	"foodmap/internal/model"
	"foodmap/internal/repository"
	"foodmap/internal/service"

	"gorm.io/gorm"
)

func newEngagementService(db *gorm.DB) *service.EngagementService {
	return service.NewEngagementService(
		repository.NewRestaurantRepository(db),
		repository.NewFavoriteRepository(db),
		repository.NewLikeRepository(db),
	)
}

func TestAddFavoriteRestaurantMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := newEngagementService(db)
	user := createUser(t, db, "alice")

	err := svc.AddFavorite(user.ID, 999)
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("期望 ErrNotFound，得到: %v", err)
	}

	// 不应产生任何行
	if n := countRows(t, db, &model.Favorite{}, "user_id = ?", user.ID); n != 0 {
		t.Errorf("期望收藏行数为0，得到 %d", n)
	}
}

func TestAddFavoriteTwice(t *testing.T) {
	db := setupTestDB(t)
	svc := newEngagementService(db)
	user := createUser(t, db, "alice")
	rest := createRestaurant(t, db, "面屋一灯")

	if err := svc.AddFavorite(user.ID, rest.ID); err != nil {
		t.Fatalf("首次收藏失败: %v", err)
	}

	// 重复收藏：冲突，且行数保持1
	err := svc.AddFavorite(user.ID, rest.ID)
	if !errors.Is(err, service.ErrConflict) {
		t.Fatalf("期望 ErrConflict，得到: %v", err)
	}
	if n := countRows(t, db, &model.Favorite{}, "user_id = ? AND restaurant_id = ?", user.ID, rest.ID); n != 1 {
		t.Errorf("期望收藏行数为1，得到 %d", n)
	}
}

func TestRemoveFavoriteMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := newEngagementService(db)
	user := createUser(t, db, "alice")
	rest := createRestaurant(t, db, "鼎泰丰")

	err := svc.RemoveFavorite(user.ID, rest.ID)
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("期望 ErrNotFound，得到: %v", err)
	}
}

func TestFavoriteRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := newEngagementService(db)
	user := createUser(t, db, "alice")
	rest := createRestaurant(t, db, "添好运")

	// 添加-删除-添加：最终状态等价于单次添加
	if err := svc.AddFavorite(user.ID, rest.ID); err != nil {
		t.Fatalf("第一次收藏失败: %v", err)
	}
	if err := svc.RemoveFavorite(user.ID, rest.ID); err != nil {
		t.Fatalf("取消收藏失败: %v", err)
	}
	if err := svc.AddFavorite(user.ID, rest.ID); err != nil {
		t.Fatalf("再次收藏失败: %v", err)
	}

	if n := countRows(t, db, &model.Favorite{}, "user_id = ? AND restaurant_id = ?", user.ID, rest.ID); n != 1 {
		t.Errorf("期望收藏行数为1，得到 %d", n)
	}
}

func TestLikeToggle(t *testing.T) {
	db := setupTestDB(t)
	svc := newEngagementService(db)
	user := createUser(t, db, "bob")
	rest := createRestaurant(t, db, "一兰拉面")

	if err := svc.AddLike(user.ID, 999); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("期望 ErrNotFound，得到: %v", err)
	}

	if err := svc.AddLike(user.ID, rest.ID); err != nil {
		t.Fatalf("点赞失败: %v", err)
	}
	if err := svc.AddLike(user.ID, rest.ID); !errors.Is(err, service.ErrConflict) {
		t.Fatalf("期望 ErrConflict，得到: %v", err)
	}

	if err := svc.RemoveLike(user.ID, rest.ID); err != nil {
		t.Fatalf("取消点赞失败: %v", err)
	}
	if err := svc.RemoveLike(user.ID, rest.ID); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("期望 ErrNotFound，得到: %v", err)
	}

	// 点赞与收藏互不影响
	if err := svc.AddFavorite(user.ID, rest.ID); err != nil {
		t.Fatalf("收藏失败: %v", err)
	}
	if n := countRows(t, db, &model.Like{}, "user_id = ?", user.ID); n != 0 {
		t.Errorf("期望点赞行数为0，得到 %d", n)
	}
}
