package handler

import (
	"foodmap/internal/service"
	"foodmap/pkg/jwt"
	"foodmap/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler 管理端接口处理器（餐厅目录维护）
type AdminHandler struct {
	catalog *service.CatalogService
	users   *service.UserService
}

// NewAdminHandler 创建AdminHandler实例
func NewAdminHandler(catalog *service.CatalogService, users *service.UserService) *AdminHandler {
	return &AdminHandler{catalog: catalog, users: users}
}

// requireAdmin 校验当前用户是否管理员
func (h *AdminHandler) requireAdmin(c *gin.Context) bool {
	isAdmin, err := h.users.IsAdmin(jwt.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return false
	}
	if !isAdmin {
		response.Forbidden(c, "需要管理员权限")
		return false
	}
	return true
}

// ListRestaurants 管理端餐厅列表
func (h *AdminHandler) ListRestaurants(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	restaurants, err := h.catalog.List()
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, response.FilterRestaurantList(restaurants))
}

// CreateRestaurant 管理端录入餐厅
func (h *AdminHandler) CreateRestaurant(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	type req struct {
		Name        string `json:"name" binding:"required"`
		Tel         string `json:"tel"`
		Address     string `json:"address"`
		Description string `json:"description"`
		Image       string `json:"image"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rest, err := h.catalog.Create(r.Name, r.Tel, r.Address, r.Description, r.Image)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMessage(c, "餐厅创建成功", response.FilterRestaurantInfo(rest))
}
