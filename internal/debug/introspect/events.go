package introspect

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// eventBufferSize 每个连接的待发送事件缓冲，满时丢弃新事件
const eventBufferSize = 64

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// 仅本地调试使用
	CheckOrigin: func(*http.Request) bool { return true },
}

// EventMessage 推送给客户端的事件
type EventMessage struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data,omitempty"`
	Time time.Time       `json:"time"`
}

// newEventMessage 构造事件消息，data 无法序列化时退化为字符串
func newEventMessage(name string, data any) EventMessage {
	msg := EventMessage{Name: name, Time: time.Now()}
	if data == nil {
		return msg
	}
	raw, err := json.Marshal(data)
	if err != nil {
		raw, _ = json.Marshal(fmt.Sprint(data))
	}
	msg.Data = raw
	return msg
}

// handleEvents 把事件总线的分发推送到 WebSocket
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if s.config.Bus == nil {
		http.Error(w, "event bus not available", http.StatusNotFound)
		return
	}

	filter := r.URL.Query().Get("name")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Debug("WebSocket 升级失败", "error", err)
		return
	}

	s.streams.Add(1)
	defer s.streams.Done()
	defer conn.Close()

	events := make(chan EventMessage, eventBufferSize)
	cancel := s.config.Bus.Observe(func(name string, data any) {
		if filter != "" && name != filter {
			return
		}
		select {
		case events <- newEventMessage(name, data):
		default:
			logger.Debug("事件流缓冲已满，丢弃事件", "event", name)
		}
	})
	defer cancel()

	// 读循环只用于感知客户端关闭
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	logger.Debug("事件流已连接", "remote", r.RemoteAddr, "filter", filter)

	done := s.doneCh()
	for {
		select {
		case <-closed:
			return
		case <-done:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server stopping"),
				time.Now().Add(time.Second))
			return
		case msg := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteJSON(msg); err != nil {
				logger.Debug("事件推送失败", "error", err)
				return
			}
		}
	}
}

// doneCh 返回停止信号，服务未通过 Start 启动时返回 nil（永不就绪）
func (s *Server) doneCh() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}
