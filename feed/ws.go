package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"quote-engine-go/strategy"
)

// Client 连接行情快照 WS 流，收到的每条消息都是一个完整 tick。
// 仅提供最小骨架：连接 + 读取 + 解析；重连由调用方控制。
type Client struct {
	URL    string
	Dialer *websocket.Dialer
}

func NewClient(url string) *Client {
	return &Client{
		URL:    url,
		Dialer: websocket.DefaultDialer,
	}
}

// Run 读取快照并逐条回调，直到 ctx 取消或连接断开。
func (c *Client) Run(ctx context.Context, handler func(strategy.TickState)) error {
	if c.URL == "" {
		return fmt.Errorf("feed url required")
	}
	dialer := c.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	conn, _, err := dialer.DialContext(ctx, c.URL, nil)
	if err != nil {
		return fmt.Errorf("dial feed: %w", err)
	}
	defer conn.Close()

	// ctx 取消时强制中断阻塞中的读操作
	go func() {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		_ = conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read feed: %w", err)
		}
		state, err := ParseTickState(raw)
		if err != nil {
			// 单条坏消息跳过，不断流
			continue
		}
		handler(state)
	}
}
