package service_test

import (
	"errors"
	"testing"

	"foodmap/internal/model"
	"foodmap/internal/repository"
	"foodmap/internal/service"

	"gorm.io/gorm"
)

func newFollowshipService(db *gorm.DB) *service.FollowshipService {
	return service.NewFollowshipService(
		repository.NewUserRepository(db),
		repository.NewFollowshipRepository(db),
	)
}

func TestSelfFollowAlwaysRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newFollowshipService(db)
	user := createUser(t, db, "alice")

	// 无论用户状态如何，自关注永远拒绝
	if err := svc.AddFollowing(user.ID, user.ID); !errors.Is(err, service.ErrInvalidOperation) {
		t.Fatalf("期望 ErrInvalidOperation，得到: %v", err)
	}

	other := createUser(t, db, "bob")
	if err := svc.AddFollowing(user.ID, other.ID); err != nil {
		t.Fatalf("关注失败: %v", err)
	}
	if err := svc.AddFollowing(user.ID, user.ID); !errors.Is(err, service.ErrInvalidOperation) {
		t.Fatalf("期望 ErrInvalidOperation，得到: %v", err)
	}

	if n := countRows(t, db, &model.Followship{}, "follower_id = ? AND following_id = ?", user.ID, user.ID); n != 0 {
		t.Errorf("自关注不应产生任何行，得到 %d", n)
	}
}

func TestAddFollowingTargetMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := newFollowshipService(db)
	user := createUser(t, db, "alice")

	if err := svc.AddFollowing(user.ID, 999); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("期望 ErrNotFound，得到: %v", err)
	}
}

func TestAddFollowingDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := newFollowshipService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	if err := svc.AddFollowing(alice.ID, bob.ID); err != nil {
		t.Fatalf("关注失败: %v", err)
	}
	if err := svc.AddFollowing(alice.ID, bob.ID); !errors.Is(err, service.ErrConflict) {
		t.Fatalf("期望 ErrConflict，得到: %v", err)
	}
	if n := countRows(t, db, &model.Followship{}, "follower_id = ? AND following_id = ?", alice.ID, bob.ID); n != 1 {
		t.Errorf("期望关注行数为1，得到 %d", n)
	}
}

func TestRemoveFollowingMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := newFollowshipService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	if err := svc.RemoveFollowing(alice.ID, bob.ID); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("期望 ErrNotFound，得到: %v", err)
	}
}

func TestFollowDirectionIsAsymmetric(t *testing.T) {
	db := setupTestDB(t)
	svc := newFollowshipService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	if err := svc.AddFollowing(alice.ID, bob.ID); err != nil {
		t.Fatalf("关注失败: %v", err)
	}

	// 反向边不存在，取消反向关注应报 NotFound
	if err := svc.RemoveFollowing(bob.ID, alice.ID); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("期望 ErrNotFound，得到: %v", err)
	}

	// 反向关注是独立的一条边
	if err := svc.AddFollowing(bob.ID, alice.ID); err != nil {
		t.Fatalf("反向关注失败: %v", err)
	}
	if n := countRows(t, db, &model.Followship{}, "1 = 1"); n != 2 {
		t.Errorf("期望关注行数为2，得到 %d", n)
	}
}

func TestFollowThenProfileIsFollowed(t *testing.T) {
	db := setupTestDB(t)
	followSvc := newFollowshipService(db)
	userSvc := newUserService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	// 关注前：isFollowed为false
	profile, err := userSvc.GetProfile(bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("聚合资料页失败: %v", err)
	}
	if profile.IsFollowed {
		t.Error("关注前 isFollowed 应为 false")
	}

	if err := followSvc.AddFollowing(alice.ID, bob.ID); err != nil {
		t.Fatalf("关注失败: %v", err)
	}

	// 关注后：isFollowed为true，且出现在粉丝列表中
	profile, err = userSvc.GetProfile(bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("聚合资料页失败: %v", err)
	}
	if !profile.IsFollowed {
		t.Error("关注后 isFollowed 应为 true")
	}
	found := false
	for _, f := range profile.Followers {
		if f.ID == alice.ID {
			found = true
		}
	}
	if !found {
		t.Error("粉丝列表中应包含关注者")
	}
}
