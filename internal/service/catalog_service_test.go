package service_test

import (
	"errors"
	"testing"

	"foodmap/internal/model"
	"foodmap/internal/repository"
	"foodmap/internal/service"

	"gorm.io/gorm"
)

func newCatalogService(db *gorm.DB) *service.CatalogService {
	return service.NewCatalogService(
		repository.NewRestaurantRepository(db),
		repository.NewFavoriteRepository(db),
		repository.NewLikeRepository(db),
	)
}

func TestCatalogGetMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	if _, err := svc.Get(999); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("期望 ErrNotFound，得到: %v", err)
	}
}

func TestCatalogCreateAndCounts(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	if _, err := svc.Create("  ", "", "", "", ""); !errors.Is(err, service.ErrInvalidOperation) {
		t.Fatalf("期望 ErrInvalidOperation，得到: %v", err)
	}

	rest, err := svc.Create("春水堂", "02-12345678", "台北", "珍珠奶茶创始店", "")
	if err != nil {
		t.Fatalf("创建餐厅失败: %v", err)
	}

	u1 := createUser(t, db, "alice")
	u2 := createUser(t, db, "bob")
	for _, uid := range []uint{u1.ID, u2.ID} {
		if err := db.Create(&model.Favorite{UserID: uid, RestaurantID: rest.ID}).Error; err != nil {
			t.Fatalf("创建收藏失败: %v", err)
		}
	}
	if err := db.Create(&model.Like{UserID: u1.ID, RestaurantID: rest.ID}).Error; err != nil {
		t.Fatalf("创建点赞失败: %v", err)
	}

	detail, err := svc.Get(rest.ID)
	if err != nil {
		t.Fatalf("获取详情失败: %v", err)
	}
	if detail.FavoriteCount != 2 {
		t.Errorf("期望收藏数2，得到 %d", detail.FavoriteCount)
	}
	if detail.LikeCount != 1 {
		t.Errorf("期望点赞数1，得到 %d", detail.LikeCount)
	}
}
