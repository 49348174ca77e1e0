package handler

import (
	"errors"
	"strconv"

	"foodmap/internal/service"
	"foodmap/pkg/logger"
	"foodmap/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError 把服务层业务错误映射为统一响应
// 四类业务错误之外的错误一律按内部错误处理并记录日志
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrConflict):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidOperation):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("内部错误",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		response.InternalError(c, "internal error")
	}
}

// parseIDParam 解析路径中的数字ID参数
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
