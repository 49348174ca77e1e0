package repository_test

import (
	"testing"

	"foodmap/internal/model"
	"foodmap/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Followship{}, &model.Restaurant{}, &model.Favorite{}); err != nil {
		t.Fatalf("迁移测试表失败: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()

	u := &model.User{Name: name, Email: name + "@example.com", PasswordHash: "x"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return u
}

func TestFollowshipExistsAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewFollowshipRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	exists, err := repo.Exists(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("Exists 查询失败: %v", err)
	}
	if exists {
		t.Error("未关注时 Exists 应为 false")
	}

	if err := repo.Create(alice.ID, bob.ID); err != nil {
		t.Fatalf("创建关注失败: %v", err)
	}

	exists, err = repo.Exists(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("Exists 查询失败: %v", err)
	}
	if !exists {
		t.Error("关注后 Exists 应为 true")
	}

	count, err := repo.CountFollowers(bob.ID)
	if err != nil {
		t.Fatalf("CountFollowers 查询失败: %v", err)
	}
	if count != 1 {
		t.Errorf("期望粉丝数1，得到 %d", count)
	}
}

func TestListFollowingIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewFollowshipRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	if err := repo.Create(alice.ID, bob.ID); err != nil {
		t.Fatalf("创建关注失败: %v", err)
	}
	if err := repo.Create(alice.ID, carol.ID); err != nil {
		t.Fatalf("创建关注失败: %v", err)
	}

	ids, err := repo.ListFollowingIDs(alice.ID)
	if err != nil {
		t.Fatalf("ListFollowingIDs 查询失败: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("期望2个关注对象，得到 %d", len(ids))
	}

	got := map[uint]bool{}
	for _, id := range ids {
		got[id] = true
	}
	if !got[bob.ID] || !got[carol.ID] {
		t.Errorf("关注列表应包含 bob 和 carol，得到 %v", ids)
	}
}

func TestDeleteReportsAffectedRows(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewFollowshipRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	affected, err := repo.Delete(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if affected != 0 {
		t.Errorf("删除不存在的边应影响0行，得到 %d", affected)
	}

	if err := repo.Create(alice.ID, bob.ID); err != nil {
		t.Fatalf("创建关注失败: %v", err)
	}
	affected, err = repo.Delete(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if affected != 1 {
		t.Errorf("期望影响1行，得到 %d", affected)
	}
}
