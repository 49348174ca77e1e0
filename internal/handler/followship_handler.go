package handler

import (
	"foodmap/internal/service"
	"foodmap/pkg/jwt"
	"foodmap/pkg/response"

	"github.com/gin-gonic/gin"
)

// FollowshipHandler 关注接口处理器
type FollowshipHandler struct {
	service *service.FollowshipService
}

// NewFollowshipHandler 创建FollowshipHandler实例
func NewFollowshipHandler(s *service.FollowshipService) *FollowshipHandler {
	return &FollowshipHandler{service: s}
}

// AddFollowing 关注用户
func (h *FollowshipHandler) AddFollowing(c *gin.Context) {
	followingID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	followerID := jwt.GetUserID(c)

	if err := h.service.AddFollowing(followerID, followingID); err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMessage(c, "关注成功", nil)
}

// RemoveFollowing 取消关注
func (h *FollowshipHandler) RemoveFollowing(c *gin.Context) {
	followingID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	followerID := jwt.GetUserID(c)

	if err := h.service.RemoveFollowing(followerID, followingID); err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMessage(c, "已取消关注", nil)
}
