package service

import (
	"encoding/json"
	"errors"
	"time"

	"foodmap/internal/repository"
	"foodmap/pkg/redis"
	"foodmap/pkg/websocket"

	"gorm.io/gorm"
)

// FollowshipService 关注关系服务
// 关注成功后推送通知给被关注者，并使排行缓存失效
type FollowshipService struct {
	userRepo   *repository.UserRepository
	followRepo *repository.FollowshipRepository
}

// NewFollowshipService 创建FollowshipService实例
func NewFollowshipService(
	userRepo *repository.UserRepository,
	followRepo *repository.FollowshipRepository,
) *FollowshipService {
	return &FollowshipService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// AddFollowing 关注用户
// 自关注永远拒绝；目标不存在返回 ErrNotFound；重复关注返回 ErrConflict
func (s *FollowshipService) AddFollowing(followerID, followingID uint) error {
	if followerID == followingID {
		return ErrInvalidOperation
	}

	if _, err := s.userRepo.GetByID(followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := translateDBError(s.followRepo.Create(followerID, followingID)); err != nil {
		return err
	}

	// 排行依赖粉丝数，关注变更后主动失效缓存
	_ = redis.InvalidateTopUsers()

	// 推送关注通知（尽力而为，失败不影响主流程）
	s.notifyFollowed(followerID, followingID)

	return nil
}

// RemoveFollowing 取消关注
func (s *FollowshipService) RemoveFollowing(followerID, followingID uint) error {
	affected, err := s.followRepo.Delete(followerID, followingID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	_ = redis.InvalidateTopUsers()

	return nil
}

// notifyFollowed 向被关注者推送关注事件
func (s *FollowshipService) notifyFollowed(followerID, followingID uint) {
	follower, err := s.userRepo.GetByID(followerID)
	if err != nil {
		return
	}

	payload, err := json.Marshal(&redis.OfflineNotification{
		Type:       "follow",
		FromUserID: follower.ID,
		FromName:   follower.Name,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return
	}

	websocket.GetManager().SendToUser(followingID, payload)
}
