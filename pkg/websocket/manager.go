package websocket

import (
	"encoding/json"
	"sync"

	"foodmap/pkg/redis"

	"github.com/gorilla/websocket"
)

// Client 代表一个已建立通知连接的用户
type Client struct {
	UserID uint
	Conn   *websocket.Conn
	Send   chan []byte

	mu     sync.Mutex
	closed bool
}

// trySend 投递一条通知。连接已关闭时返回false；缓冲已满时丢弃
func (c *Client) trySend(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Send <- msg:
	default:
		// 发送缓冲已满，可能连接已断开
	}
	return true
}

// close 关闭发送通道，幂等
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.Send)
	}
}

// Manager 管理所有在线用户的通知连接
// 用户不在线时通知落入Redis离线队列，上线后补推

type Manager struct {
	clients map[uint]*Client
	lock    sync.RWMutex
}

// NewManager 创建连接管理器
func NewManager() *Manager {
	return &Manager{
		clients: make(map[uint]*Client),
	}
}

var manager = NewManager()

// GetManager 获取全局连接管理器
func GetManager() *Manager {
	return manager
}

// AddClient 添加新连接，并补推离线通知
// 同一用户重复连接时，旧连接被顶替并关闭
func (m *Manager) AddClient(userID uint, client *Client) {
	m.lock.Lock()
	old := m.clients[userID]
	m.clients[userID] = client
	m.lock.Unlock()

	if old != nil && old != client {
		old.close()
	}

	go m.pushOfflineNotifications(userID, client)
}

// RemoveClient 移除连接
// 仅当注册的仍是该连接时才注销，避免误删顶替后的新连接
func (m *Manager) RemoveClient(userID uint, client *Client) {
	m.lock.Lock()
	if m.clients[userID] == client {
		delete(m.clients, userID)
	}
	m.lock.Unlock()

	client.close()
}

// SendToUser 推送通知给指定用户
// 若用户不在线则暂存到Redis离线通知队列
func (m *Manager) SendToUser(userID uint, msg []byte) {
	m.lock.RLock()
	client, ok := m.clients[userID]
	m.lock.RUnlock()
	if ok && client.trySend(msg) {
		return
	}

	// 不在线，解析后暂存
	var n redis.OfflineNotification
	if err := json.Unmarshal(msg, &n); err != nil {
		return
	}
	go func() {
		_ = redis.AddOfflineNotification(userID, &n)
	}()
}

// IsOnline 判断用户是否在线
func (m *Manager) IsOnline(userID uint) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	_, ok := m.clients[userID]
	return ok
}

// pushOfflineNotifications 上线后补推离线通知
func (m *Manager) pushOfflineNotifications(userID uint, client *Client) {
	notifications, err := redis.GetOfflineNotifications(userID, 50)
	if err != nil {
		return
	}

	for _, n := range notifications {
		data, err := json.Marshal(n)
		if err != nil {
			continue
		}

		if !client.trySend(data) {
			// 连接已关闭，停止补推
			return
		}
	}

	if len(notifications) > 0 {
		_ = redis.ClearOfflineNotifications(userID)
	}
}
