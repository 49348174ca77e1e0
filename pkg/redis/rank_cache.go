package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

// CachedRankedUser 排行缓存条目
// 缓存与查看者无关的部分（isFollowed 每次请求单独计算）
type CachedRankedUser struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	FollowerCount int64  `json:"follower_count"`
}

// 排行缓存相关常量
const (
	TopUsersKey = "foodmap:rank:top_users" // 排行缓存key
	TopUsersTTL = time.Minute              // 缓存有效期，follow变更时主动失效
)

// CacheTopUsers 缓存用户排行
func CacheTopUsers(users []CachedRankedUser) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("序列化排行数据失败: %w", err)
	}

	if err := client.Set(ctx, TopUsersKey, data, TopUsersTTL).Err(); err != nil {
		return fmt.Errorf("写入排行缓存失败: %w", err)
	}

	return nil
}

// GetCachedTopUsers 读取用户排行缓存
// 缓存未命中时返回 (nil, nil)
func GetCachedTopUsers() ([]CachedRankedUser, error) {
	if client == nil {
		return nil, fmt.Errorf("redis客户端未初始化")
	}

	data, err := client.Get(ctx, TopUsersKey).Result()
	if err != nil {
		if err.Error() == "redis: nil" {
			return nil, nil
		}
		return nil, fmt.Errorf("读取排行缓存失败: %w", err)
	}

	var users []CachedRankedUser
	if err := json.Unmarshal([]byte(data), &users); err != nil {
		return nil, fmt.Errorf("解析排行缓存失败: %w", err)
	}

	return users, nil
}

// InvalidateTopUsers 主动失效排行缓存（follow/unfollow成功后调用）
func InvalidateTopUsers() error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	return client.Del(ctx, TopUsersKey).Err()
}
