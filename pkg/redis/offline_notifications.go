package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

// OfflineNotification 离线通知结构（用户不在线时暂存）
type OfflineNotification struct {
	Type       string    `json:"type"` // 目前仅 follow
	FromUserID uint      `json:"from_user_id"`
	FromName   string    `json:"from_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// 离线通知相关常量
const (
	OfflineNotifyKeyPrefix = "foodmap:notify:offline:" // 离线通知key前缀
	OfflineNotifyTTL       = 7 * 24 * time.Hour        // 7天过期
	MaxOfflineNotify       = 100                       // 每个用户最多暂存100条
)

// AddOfflineNotification 暂存离线通知
func AddOfflineNotification(userID uint, n *OfflineNotification) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", OfflineNotifyKeyPrefix, userID)

	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("序列化离线通知失败: %w", err)
	}

	// LPUSH到列表头部（最新的在前面）
	if err := client.LPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("暂存离线通知失败: %w", err)
	}

	if err := client.Expire(ctx, key, OfflineNotifyTTL).Err(); err != nil {
		return fmt.Errorf("设置离线通知TTL失败: %w", err)
	}

	// 限制暂存数量
	if err := client.LTrim(ctx, key, 0, MaxOfflineNotify-1).Err(); err != nil {
		return fmt.Errorf("限制离线通知数量失败: %w", err)
	}

	return nil
}

// GetOfflineNotifications 获取用户的离线通知
func GetOfflineNotifications(userID uint, limit int) ([]*OfflineNotification, error) {
	if client == nil {
		return nil, fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", OfflineNotifyKeyPrefix, userID)

	results, err := client.LRange(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("获取离线通知失败: %w", err)
	}

	var notifications []*OfflineNotification
	for _, result := range results {
		var n OfflineNotification
		if err := json.Unmarshal([]byte(result), &n); err != nil {
			continue
		}
		notifications = append(notifications, &n)
	}

	return notifications, nil
}

// ClearOfflineNotifications 清空用户的离线通知（推送完成后调用）
func ClearOfflineNotifications(userID uint) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", OfflineNotifyKeyPrefix, userID)
	return client.Del(ctx, key).Err()
}
