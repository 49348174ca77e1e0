package service_test

import (
	"mime/multipart"
	"testing"
	"time"

	"foodmap/config"
	"foodmap/internal/model"
	"foodmap/internal/repository"
	"foodmap/internal/service"
	"foodmap/pkg/jwt"
	"foodmap/pkg/upload"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// setupTestDB 创建内存sqlite数据库并迁移全部表
// 与生产配置保持一致：单数表名 + 错误翻译（唯一索引冲突 → gorm.ErrDuplicatedKey）
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

	if err := db.AutoMigrate(
		&model.User{},
		&model.Restaurant{},
		&model.Comment{},
		&model.Favorite{},
		&model.Like{},
		&model.Followship{},
	); err != nil {
		t.Fatalf("迁移测试表失败: %v", err)
	}

	return db
}

// nopUploader 测试用上传器：永远返回空引用（等价于未上传）
type nopUploader struct{}

func (nopUploader) Save(file *multipart.FileHeader) (string, error) { return "", nil }

// fixedUploader 测试用上传器：固定返回一个引用
type fixedUploader struct{ ref string }

func (u fixedUploader) Save(file *multipart.FileHeader) (string, error) { return u.ref, nil }

// newUserService 组装测试用UserService
func newUserService(db *gorm.DB) *service.UserService {
	return newUserServiceWith(db, nopUploader{})
}

func newUserServiceWith(db *gorm.DB, uploader upload.Uploader) *service.UserService {
	jwtSvc := jwt.NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "foodmap-test",
	})
	return service.NewUserService(
		repository.NewUserRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewCommentRepository(db),
		repository.NewFollowshipRepository(db),
		jwtSvc,
		uploader,
	)
}

// createUser 插入测试用户
func createUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()

	u := &model.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "test-hash",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return u
}

// createRestaurant 插入测试餐厅
func createRestaurant(t *testing.T, db *gorm.DB, name string) *model.Restaurant {
	t.Helper()

	r := &model.Restaurant{Name: name}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("创建测试餐厅失败: %v", err)
	}
	return r
}

// createComment 插入测试评论
func createComment(t *testing.T, db *gorm.DB, userID, restaurantID uint, text string) {
	t.Helper()

	c := &model.Comment{UserID: userID, RestaurantID: restaurantID, Text: text}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("创建测试评论失败: %v", err)
	}
}

// countRows 统计表中满足条件的行数
func countRows(t *testing.T, db *gorm.DB, m interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var count int64
	if err := db.Model(m).Where(query, args...).Count(&count).Error; err != nil {
		t.Fatalf("统计行数失败: %v", err)
	}
	return count
}
