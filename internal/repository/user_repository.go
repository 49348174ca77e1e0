package repository

import (
	"foodmap/internal/model"

	"gorm.io/gorm"
)

// UserRepository 用户数据仓储
type UserRepository struct {
	orm *gorm.DB
}

// NewUserRepository 创建UserRepository实例
func NewUserRepository(orm *gorm.DB) *UserRepository {
	return &UserRepository{orm: orm}
}

// Create 创建用户
func (r *UserRepository) Create(user *model.User) error {
	return r.orm.Create(user).Error
}

// GetByID 根据ID获取用户
func (r *UserRepository) GetByID(id uint) (*model.User, error) {
	var u model.User
	if err := r.orm.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail 根据邮箱获取用户
func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var u model.User
	if err := r.orm.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile 更新用户资料（仅 name 与 image 两个字段可经此路径修改）
func (r *UserRepository) UpdateProfile(id uint, name, image string) error {
	return r.orm.Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":  name,
			"image": image,
		}).Error
}

// ListFollowers 查询关注 userID 的用户列表
func (r *UserRepository) ListFollowers(userID uint) ([]*model.User, error) {
	var users []*model.User
	err := r.orm.Model(&model.User{}).
		Joins("JOIN followship ON followship.follower_id = user.id").
		Where("followship.following_id = ?", userID).
		Order("followship.created_at DESC").
		Find(&users).Error
	return users, err
}

// ListFollowings 查询 userID 关注的用户列表
func (r *UserRepository) ListFollowings(userID uint) ([]*model.User, error) {
	var users []*model.User
	err := r.orm.Model(&model.User{}).
		Joins("JOIN followship ON followship.following_id = user.id").
		Where("followship.follower_id = ?", userID).
		Order("followship.created_at DESC").
		Find(&users).Error
	return users, err
}

// RankedUser 带粉丝数的用户行（top-users排行查询结果）
type RankedUser struct {
	model.User    `gorm:"embedded"`
	FollowerCount int64
}

// ListByFollowerCount 查询全部用户及其粉丝数
// 排序：粉丝数降序，并以用户ID升序打破平局，保证结果确定
func (r *UserRepository) ListByFollowerCount() ([]*RankedUser, error) {
	var rows []*RankedUser
	err := r.orm.Model(&model.User{}).
		Select("user.*, COUNT(followship.id) AS follower_count").
		Joins("LEFT JOIN followship ON followship.following_id = user.id").
		Group("user.id").
		Order("follower_count DESC, user.id ASC").
		Scan(&rows).Error
	return rows, err
}
