package repository

import (
	"foodmap/internal/model"

	"gorm.io/gorm"
)

// CommentRepository 评论数据仓储（本服务内只读，用于资料页聚合）
type CommentRepository struct {
	orm *gorm.DB
}

// NewCommentRepository 创建CommentRepository实例
func NewCommentRepository(orm *gorm.DB) *CommentRepository {
	return &CommentRepository{orm: orm}
}

// ListByAuthor 查询用户发表的全部评论（携带餐厅信息）
func (r *CommentRepository) ListByAuthor(userID uint) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.orm.Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}
