package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"sort"
	"strings"

	"foodmap/internal/model"
	"foodmap/internal/repository"
	"foodmap/pkg/jwt"
	"foodmap/pkg/password"
	"foodmap/pkg/redis"
	"foodmap/pkg/upload"

	"gorm.io/gorm"
)

// ErrInvalidCredentials 登录凭证错误
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService 用户服务：注册登录、资料页聚合、排行、资料编辑
type UserService struct {
	userRepo       *repository.UserRepository
	restaurantRepo *repository.RestaurantRepository
	commentRepo    *repository.CommentRepository
	followRepo     *repository.FollowshipRepository
	jwtService     *jwt.JWTService
	uploader       upload.Uploader
}

// NewUserService 创建UserService实例
func NewUserService(
	userRepo *repository.UserRepository,
	restaurantRepo *repository.RestaurantRepository,
	commentRepo *repository.CommentRepository,
	followRepo *repository.FollowshipRepository,
	jwtService *jwt.JWTService,
	uploader upload.Uploader,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		commentRepo:    commentRepo,
		followRepo:     followRepo,
		jwtService:     jwtService,
		uploader:       uploader,
	}
}

// Register 注册
// 两次密码不一致或缺少必填字段返回 ErrInvalidOperation，邮箱已存在返回 ErrConflict
func (s *UserService) Register(name, email, plainPassword, passwordCheck string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || plainPassword == "" {
		return nil, "", ErrInvalidOperation
	}
	if plainPassword != passwordCheck {
		return nil, "", ErrInvalidOperation
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, "", err
	}
	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	// 邮箱唯一靠数据库唯一索引保证，冲突翻译为 ErrConflict
	if err := translateDBError(s.userRepo.Create(user)); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login 登录
func (s *UserService) Login(email, plainPassword string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || plainPassword == "" {
		return nil, "", ErrInvalidCredentials
	}
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !password.Verify(plainPassword, u.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// issueToken 为用户签发访问令牌
func (s *UserService) issueToken(u *model.User) (string, error) {
	return s.jwtService.GenerateToken(
		fmt.Sprintf("%d", u.ID),
		map[string]interface{}{"name": u.Name},
	)
}

// IsAdmin 判断用户是否管理员
func (s *UserService) IsAdmin(userID uint) (bool, error) {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	return u.IsAdmin, nil
}

// Profile 用户资料页聚合结果
type Profile struct {
	User                 *model.User
	IsFollowed           bool // 查看者是否已关注该用户
	Followers            []*model.User
	Followings           []*model.User
	FavoritedRestaurants []*model.Restaurant
	CommentedRestaurants []*model.Restaurant
}

// GetProfile 聚合用户资料页
// 评论过的餐厅按餐厅ID去重，保留首次出现的顺序
func (s *UserService) GetProfile(targetID, viewerID uint) (*Profile, error) {
	user, err := s.userRepo.GetByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	followers, err := s.userRepo.ListFollowers(targetID)
	if err != nil {
		return nil, err
	}
	followings, err := s.userRepo.ListFollowings(targetID)
	if err != nil {
		return nil, err
	}
	favorited, err := s.restaurantRepo.ListFavoritedBy(targetID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByAuthor(targetID)
	if err != nil {
		return nil, err
	}

	// 同一家餐厅可能被多次评论，按餐厅ID去重
	seen := make(map[uint]bool, len(comments))
	commented := make([]*model.Restaurant, 0, len(comments))
	for _, c := range comments {
		if seen[c.RestaurantID] {
			continue
		}
		seen[c.RestaurantID] = true
		rest := c.Restaurant
		commented = append(commented, &rest)
	}

	isFollowed := false
	for _, f := range followers {
		if f.ID == viewerID {
			isFollowed = true
			break
		}
	}

	return &Profile{
		User:                 user,
		IsFollowed:           isFollowed,
		Followers:            followers,
		Followings:           followings,
		FavoritedRestaurants: favorited,
		CommentedRestaurants: commented,
	}, nil
}

// TopUser 排行条目
type TopUser struct {
	ID            uint
	Name          string
	Image         string
	FollowerCount int64
	IsFollowed    bool // 查看者是否已关注
}

// GetTopUsers 用户排行：按粉丝数降序的完整列表
// 与查看者无关的部分走Redis缓存，isFollowed 每次按查看者计算
func (s *UserService) GetTopUsers(viewerID uint) ([]*TopUser, error) {
	ranked, err := s.loadRanked()
	if err != nil {
		return nil, err
	}

	followingIDs, err := s.followRepo.ListFollowingIDs(viewerID)
	if err != nil {
		return nil, err
	}
	followed := make(map[uint]bool, len(followingIDs))
	for _, id := range followingIDs {
		followed[id] = true
	}

	result := make([]*TopUser, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, &TopUser{
			ID:            r.ID,
			Name:          r.Name,
			Image:         r.Image,
			FollowerCount: r.FollowerCount,
			IsFollowed:    followed[r.ID],
		})
	}
	return result, nil
}

// loadRanked 读取（或重建）与查看者无关的排行数据
func (s *UserService) loadRanked() ([]redis.CachedRankedUser, error) {
	if cached, err := redis.GetCachedTopUsers(); err == nil && cached != nil {
		return cached, nil
	}

	rows, err := s.userRepo.ListByFollowerCount()
	if err != nil {
		return nil, err
	}

	ranked := make([]redis.CachedRankedUser, 0, len(rows))
	for _, row := range rows {
		ranked = append(ranked, redis.CachedRankedUser{
			ID:            row.ID,
			Name:          row.Name,
			Image:         row.Image,
			FollowerCount: row.FollowerCount,
		})
	}

	// SQL已按粉丝数降序、ID升序排好，这里兜底保证顺序确定
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].FollowerCount != ranked[j].FollowerCount {
			return ranked[i].FollowerCount > ranked[j].FollowerCount
		}
		return ranked[i].ID < ranked[j].ID
	})

	_ = redis.CacheTopUsers(ranked)

	return ranked, nil
}

// EditProfile 编辑用户资料
// 只有本人可以编辑；name 必填；image 为可选的替换图片，
// 未上传新图片时保留原引用
func (s *UserService) EditProfile(actorID, targetID uint, name string, image *multipart.FileHeader) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidOperation
	}

	user, err := s.userRepo.GetByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actorID != user.ID {
		return nil, ErrPermissionDenied
	}

	imageRef, err := s.uploader.Save(image)
	if err != nil {
		return nil, err
	}
	if imageRef == "" {
		imageRef = user.Image
	}

	if err := s.userRepo.UpdateProfile(user.ID, name, imageRef); err != nil {
		return nil, err
	}

	user.Name = name
	user.Image = imageRef
	return user, nil
}
