package handler

import (
	"foodmap/internal/service"
	"foodmap/pkg/jwt"
	"foodmap/pkg/response"

	"github.com/gin-gonic/gin"
)

// EngagementHandler 收藏/点赞接口处理器
type EngagementHandler struct {
	service *service.EngagementService
}

// NewEngagementHandler 创建EngagementHandler实例
func NewEngagementHandler(s *service.EngagementService) *EngagementHandler {
	return &EngagementHandler{service: s}
}

// AddFavorite 收藏餐厅
func (h *EngagementHandler) AddFavorite(c *gin.Context) {
	restaurantID, ok := parseIDParam(c, "restaurant_id")
	if !ok {
		return
	}
	userID := jwt.GetUserID(c)

	if err := h.service.AddFavorite(userID, restaurantID); err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMessage(c, "收藏成功", nil)
}

// RemoveFavorite 取消收藏
func (h *EngagementHandler) RemoveFavorite(c *gin.Context) {
	restaurantID, ok := parseIDParam(c, "restaurant_id")
	if !ok {
		return
	}
	userID := jwt.GetUserID(c)

	if err := h.service.RemoveFavorite(userID, restaurantID); err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMessage(c, "已取消收藏", nil)
}

// AddLike 点赞餐厅
func (h *EngagementHandler) AddLike(c *gin.Context) {
	restaurantID, ok := parseIDParam(c, "restaurant_id")
	if !ok {
		return
	}
	userID := jwt.GetUserID(c)

	if err := h.service.AddLike(userID, restaurantID); err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMessage(c, "点赞成功", nil)
}

// RemoveLike 取消点赞
func (h *EngagementHandler) RemoveLike(c *gin.Context) {
	restaurantID, ok := parseIDParam(c, "restaurant_id")
	if !ok {
		return
	}
	userID := jwt.GetUserID(c)

	if err := h.service.RemoveLike(userID, restaurantID); err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMessage(c, "已取消点赞", nil)
}
