package websocket_test

import (
	"sync"
	"testing"
	"time"

	"foodmap/pkg/websocket"
)

// Redis离线通知队列依赖真实Redis实例，由集成环境验证；
// 这里只覆盖连接管理器的在线推送与连接生命周期。

func newTestClient(userID uint) *websocket.Client {
	return &websocket.Client{
		UserID: userID,
		Send:   make(chan []byte, 16),
	}
}

func recvMessage(t *testing.T, ch chan []byte) []byte {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("等待通知超时")
		return nil
	}
}

func TestSendToUserDeliversToOnlineClient(t *testing.T) {
	m := websocket.NewManager()
	client := newTestClient(1)
	m.AddClient(1, client)

	m.SendToUser(1, []byte(`{"type":"follow","from_user_id":2}`))

	msg := recvMessage(t, client.Send)
	if string(msg) != `{"type":"follow","from_user_id":2}` {
		t.Errorf("收到的通知内容不符: %s", msg)
	}
}

func TestRemoveClientClosesAndAllowsReconnect(t *testing.T) {
	m := websocket.NewManager()
	client := newTestClient(1)
	m.AddClient(1, client)
	if !m.IsOnline(1) {
		t.Fatal("添加后用户应在线")
	}

	m.RemoveClient(1, client)
	if m.IsOnline(1) {
		t.Error("移除后用户不应在线")
	}
	if _, ok := <-client.Send; ok {
		t.Error("移除后发送通道应已关闭")
	}

	// 重新连接后推送恢复
	again := newTestClient(1)
	m.AddClient(1, again)
	m.SendToUser(1, []byte(`{"type":"follow"}`))
	recvMessage(t, again.Send)
}

func TestDuplicateConnectionReplacesOld(t *testing.T) {
	m := websocket.NewManager()
	first := newTestClient(1)
	second := newTestClient(1)
	m.AddClient(1, first)
	m.AddClient(1, second)

	// 旧连接被顶替并关闭
	if _, ok := <-first.Send; ok {
		t.Error("被顶替的旧连接应已关闭")
	}

	// 旧连接的注销不应误删新连接
	m.RemoveClient(1, first)
	if !m.IsOnline(1) {
		t.Fatal("注销旧连接后新连接应仍在线")
	}

	m.SendToUser(1, []byte(`{"type":"follow"}`))
	recvMessage(t, second.Send)
}

func TestSendRacingDisconnectDoesNotPanic(t *testing.T) {
	m := websocket.NewManager()
	const userID uint = 1

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				m.SendToUser(userID, []byte("not-json"))
			}
		}
	}()

	for i := 0; i < 2000; i++ {
		client := newTestClient(userID)
		m.AddClient(userID, client)
		m.RemoveClient(userID, client)
	}

	close(stop)
	wg.Wait()
}
