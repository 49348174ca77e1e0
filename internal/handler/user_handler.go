package handler

import (
	"foodmap/internal/service"
	"foodmap/pkg/jwt"
	"foodmap/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户接口处理器
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler 创建UserHandler实例
func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Register 用户注册
func (h *UserHandler) Register(c *gin.Context) {
	type req struct {
		Name          string `json:"name" binding:"required"`
		Email         string `json:"email" binding:"required,email"`
		Password      string `json:"password" binding:"required"`
		PasswordCheck string `json:"passwordCheck" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, token, err := h.service.Register(r.Name, r.Email, r.Password, r.PasswordCheck)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMessage(c, "注册成功", &response.AuthResponse{
		User:        response.FilterUserInfo(user),
		AccessToken: token,
	})
}

// Login 用户登录
func (h *UserHandler) Login(c *gin.Context) {
	type req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, token, err := h.service.Login(r.Email, r.Password)
	if err != nil {
		response.Unauthorized(c, "邮箱或密码错误")
		return
	}

	response.SuccessWithMessage(c, "登录成功", &response.AuthResponse{
		User:        response.FilterUserInfo(user),
		AccessToken: token,
	})
}

// GetProfile 用户资料页（含社交关系与互动列表）
func (h *UserHandler) GetProfile(c *gin.Context) {
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	viewerID := jwt.GetUserID(c)

	profile, err := h.service.GetProfile(targetID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, &response.ProfileResponse{
		User:                 response.FilterUserInfo(profile.User),
		IsFollowed:           profile.IsFollowed,
		FollowerCount:        len(profile.Followers),
		FollowingCount:       len(profile.Followings),
		Followers:            response.FilterUserList(profile.Followers),
		Followings:           response.FilterUserList(profile.Followings),
		FavoritedRestaurants: response.FilterRestaurantList(profile.FavoritedRestaurants),
		CommentedRestaurants: response.FilterRestaurantList(profile.CommentedRestaurants),
	})
}

// GetTopUsers 用户排行（按粉丝数降序）
func (h *UserHandler) GetTopUsers(c *gin.Context) {
	viewerID := jwt.GetUserID(c)

	topUsers, err := h.service.GetTopUsers(viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	result := make([]*response.TopUserInfo, 0, len(topUsers))
	for _, u := range topUsers {
		result = append(result, &response.TopUserInfo{
			ID:            u.ID,
			Name:          u.Name,
			Image:         u.Image,
			FollowerCount: u.FollowerCount,
			IsFollowed:    u.IsFollowed,
		})
	}

	response.Success(c, result)
}

// EditProfile 编辑用户资料（multipart表单：name必填，image可选）
func (h *UserHandler) EditProfile(c *gin.Context) {
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actorID := jwt.GetUserID(c)

	name := c.PostForm("name")
	// image 可以不上传，此时保留原头像
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	user, err := h.service.EditProfile(actorID, targetID, name, image)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMessage(c, "资料编辑成功", response.FilterUserInfo(user))
}
