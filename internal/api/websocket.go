package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/warelabel/label-engine/internal/render"
	"github.com/warelabel/label-engine/pkg/labelformat"
)

// WebSocket event types for the live label preview channel
const (
	EventPreview  = "preview"
	EventResponse = "response"
	EventError    = "error"
)

// WSMessage represents a WebSocket message
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// wsClient is one connected preview client
type wsClient struct {
	conn   *websocket.Conn
	send   chan interface{}
	server *Server
}

// handleWebSocket upgrades the connection and serves preview events.
// A label-designer client streams payload/config drafts and gets back
// the readability report plus a rendered PNG for each draft.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &wsClient{
		conn:   conn,
		send:   make(chan interface{}, 16),
		server: s,
	}

	s.log.Debug().Msg("preview client connected")

	go client.writePump()
	client.readPump()
}

func (c *wsClient) readPump() {
	defer func() {
		close(c.send)
		c.conn.Close()
		c.server.log.Debug().Msg("preview client disconnected")
	}()

	for {
		var msg WSMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.server.log.Warn().Err(err).Msg("websocket read error")
			}
			return
		}

		switch msg.Event {
		case EventPreview:
			c.handlePreview(msg.Data)
		default:
			c.sendError("unknown event: " + msg.Event)
		}
	}
}

func (c *wsClient) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			c.server.log.Warn().Err(err).Msg("websocket write error")
			return
		}
	}
}

var previewBufPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

func (c *wsClient) handlePreview(data json.RawMessage) {
	var req GenerateRequest
	if err := json.Unmarshal(data, &req); err != nil || req.Payload == "" {
		c.sendError("preview requires a payload")
		return
	}

	cfg, ok := req.resolveConfig()
	if !ok {
		c.sendError("unknown preset: " + req.Preset)
		return
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		c.sendError("config width and height must be positive")
		return
	}

	canvas := render.NewCanvas(cfg.Width, cfg.Height)
	result := c.server.generator.Generate(canvas, req.Payload, cfg)
	readability := labelformat.TestReadability(cfg, req.Payload)

	buf := previewBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer previewBufPool.Put(buf)

	if err := png.Encode(buf, canvas.Image()); err != nil {
		c.sendError("failed to encode preview image")
		return
	}

	c.send <- gin.H{
		"event": EventResponse,
		"data": gin.H{
			"result":      result,
			"readability": readability,
			"image_png":   base64.StdEncoding.EncodeToString(buf.Bytes()),
		},
	}
}

func (c *wsClient) sendError(message string) {
	c.send <- gin.H{
		"event": EventError,
		"data":  gin.H{"error": message},
	}
}
