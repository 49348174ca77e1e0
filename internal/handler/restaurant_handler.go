package handler

import (
	"foodmap/internal/service"
	"foodmap/pkg/response"

	"github.com/gin-gonic/gin"
)

// RestaurantHandler 餐厅目录接口处理器（只读浏览）
type RestaurantHandler struct {
	service *service.CatalogService
}

// NewRestaurantHandler 创建RestaurantHandler实例
func NewRestaurantHandler(s *service.CatalogService) *RestaurantHandler {
	return &RestaurantHandler{service: s}
}

// List 餐厅列表
func (h *RestaurantHandler) List(c *gin.Context) {
	restaurants, err := h.service.List()
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, response.FilterRestaurantList(restaurants))
}

// Get 餐厅详情（附带收藏/点赞计数）
func (h *RestaurantHandler) Get(c *gin.Context) {
	restaurantID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.service.Get(restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, gin.H{
		"restaurant":     response.FilterRestaurantInfo(detail.Restaurant),
		"favorite_count": detail.FavoriteCount,
		"like_count":     detail.LikeCount,
	})
}
