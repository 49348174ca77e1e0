package service

import (
	"errors"

	"gorm.io/gorm"
)

// 业务错误分类。服务层只抛出这四类逻辑错误，
// 其余后端错误原样向上传递，由调用方决定展示方式。
var (
	// ErrNotFound 被引用的实体不存在
	ErrNotFound = errors.New("resource not found")
	// ErrConflict 关系已存在（唯一索引冲突）
	ErrConflict = errors.New("relation already exists")
	// ErrInvalidOperation 非法操作（自关注、缺少必填字段等）
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrPermissionDenied 当前用户无权执行该操作
	ErrPermissionDenied = errors.New("permission denied")
)

// translateDBError 把gorm错误翻译为业务错误
// 唯一索引冲突即视为关系已存在，不依赖插入前的存在性检查（避免并发竞态）
func translateDBError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}
