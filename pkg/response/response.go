package response

import (
	"net/http"

	"foodmap/internal/model"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`           // 状态码：0表示成功，其他表示错误
	Message string      `json:"message"`        // 响应消息
	Data    interface{} `json:"data,omitempty"` // 响应数据
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 带自定义消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400错误
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// Unauthorized 401错误
func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

// Forbidden 403错误
func Forbidden(c *gin.Context, message string) {
	Error(c, 403, message)
}

// NotFound 404错误
func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

// Conflict 409错误
func Conflict(c *gin.Context, message string) {
	Error(c, 409, message)
}

// InternalError 500错误
func InternalError(c *gin.Context, message string) {
	Error(c, 500, message)
}

// UserInfo 用户信息（隐藏敏感字段）
type UserInfo struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Image     string `json:"image"`
	CreatedAt string `json:"created_at"`
}

// FilterUserInfo 过滤用户信息，隐藏敏感字段
func FilterUserInfo(user *model.User) *UserInfo {
	if user == nil {
		return nil
	}

	return &UserInfo{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Image:     user.Image,
		CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// FilterUserList 批量过滤用户信息
func FilterUserList(users []*model.User) []*UserInfo {
	result := make([]*UserInfo, 0, len(users))
	for _, u := range users {
		result = append(result, FilterUserInfo(u))
	}
	return result
}

// RestaurantInfo 餐厅信息
type RestaurantInfo struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Tel         string `json:"tel,omitempty"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// FilterRestaurantInfo 过滤餐厅信息
func FilterRestaurantInfo(r *model.Restaurant) *RestaurantInfo {
	if r == nil {
		return nil
	}

	return &RestaurantInfo{
		ID:          r.ID,
		Name:        r.Name,
		Tel:         r.Tel,
		Address:     r.Address,
		Description: r.Description,
		Image:       r.Image,
	}
}

// FilterRestaurantList 批量过滤餐厅信息
func FilterRestaurantList(restaurants []*model.Restaurant) []*RestaurantInfo {
	result := make([]*RestaurantInfo, 0, len(restaurants))
	for _, r := range restaurants {
		result = append(result, FilterRestaurantInfo(r))
	}
	return result
}

// AuthResponse 注册/登录响应
type AuthResponse struct {
	User        *UserInfo `json:"user"`
	AccessToken string    `json:"access_token"`
}

// ProfileResponse 用户资料页响应
type ProfileResponse struct {
	User                 *UserInfo         `json:"user"`
	IsFollowed           bool              `json:"is_followed"`
	FollowerCount        int               `json:"follower_count"`
	FollowingCount       int               `json:"following_count"`
	Followers            []*UserInfo       `json:"followers"`
	Followings           []*UserInfo       `json:"followings"`
	FavoritedRestaurants []*RestaurantInfo `json:"favorited_restaurants"`
	CommentedRestaurants []*RestaurantInfo `json:"commented_restaurants"`
}

// TopUserInfo 排行条目响应
type TopUserInfo struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	FollowerCount int64  `json:"follower_count"`
	IsFollowed    bool   `json:"is_followed"`
}
