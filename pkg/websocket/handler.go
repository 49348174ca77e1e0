package websocket

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"foodmap/config"
	"foodmap/pkg/jwt"
	"foodmap/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许跨域
	},
}

// NewHandler 创建通知推送的WebSocket处理函数
// 连接方式：GET /ws?token=<jwt> 或 Sec-WebSocket-Protocol: Bearer <jwt>
func NewHandler(jwtSvc *jwt.JWTService, cfg config.NotifyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			token = strings.TrimPrefix(c.GetHeader("Sec-WebSocket-Protocol"), "Bearer ")
		}
		if token == "" {
			response.Unauthorized(c, "缺少token")
			return
		}

		claims, err := jwtSvc.ValidateToken(token)
		if err != nil {
			response.Unauthorized(c, "token无效或已过期")
			return
		}
		userID, _ := strconv.ParseUint(claims.Subject, 10, 32)
		if userID == 0 {
			response.Unauthorized(c, "token无效")
			return
		}

		// 回显子协议，避免客户端提示 "Server sent no subprotocol"
		respHeader := http.Header{}
		if protocol := c.GetHeader("Sec-WebSocket-Protocol"); protocol != "" {
			respHeader.Set("Sec-WebSocket-Protocol", protocol)
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, respHeader)
		if err != nil {
			return
		}

		client := &Client{
			UserID: uint(userID),
			Conn:   conn,
			Send:   make(chan []byte, 256),
		}
		GetManager().AddClient(uint(userID), client)
		defer GetManager().RemoveClient(uint(userID), client)

		// 写协程 + 定时发送ping心跳
		go func() {
			ticker := time.NewTicker(cfg.PingInterval)
			defer ticker.Stop()
			for {
				select {
				case msg, ok := <-client.Send:
					if !ok {
						return
					}
					_ = conn.WriteMessage(websocket.TextMessage, msg)
				case <-ticker.C:
					if err := conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(5*time.Second)); err != nil {
						return
					}
				}
			}
		}()

		// 读协程只用于探测断开。若超时未收到任何读事件则断开
		_ = conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))
		conn.SetPongHandler(func(appData string) error {
			return conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
			_ = conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))
		}
	}
}
