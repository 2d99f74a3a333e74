package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"portfolio.dev/internal/background"
	"portfolio.dev/internal/middleware"
	"portfolio.dev/internal/services"
)

const (
	writeWait      = 5 * time.Second
	maxClientFrame = 1 << 10
)

// BackgroundHandler serves the starfield as PNG stills and as a live
// stream of draw operations
type BackgroundHandler struct {
	bg       *services.BackgroundService
	log      *zap.Logger
	upgrader websocket.Upgrader
}

// NewBackgroundHandler creates a new BackgroundHandler
func NewBackgroundHandler(bg *services.BackgroundService, log *zap.Logger) *BackgroundHandler {
	return &BackgroundHandler{
		bg:  bg,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 << 10,
		},
	}
}

// Snapshot handles GET /api/background.png?width=&height=&frames=&seed=
func (h *BackgroundHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	req := services.SnapshotRequest{
		Width:  parseIntParam(r, "width", 0),
		Height: parseIntParam(r, "height", 0),
		Frames: parseIntParam(r, "frames", 1),
		Seed:   parseSeedParam(r),
	}

	var buf bytes.Buffer
	if err := h.bg.Snapshot(r.Context(), &buf, req); err != nil {
		if r.Context().Err() != nil {
			h.log.Debug("background snapshot abandoned by client", zap.Error(err))
			return
		}
		h.log.Error("failed to render background", zap.Error(err))
		respondError(w, r, http.StatusInternalServerError, "Failed to render background")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// Stream handles GET /api/background/ws. Each tick is sent as one JSON frame;
// the client reports viewport changes with resize messages.
func (h *BackgroundHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied
		h.log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxClientFrame)

	width, height := h.bg.ClampSize(parseIntParam(r, "width", 0), parseIntParam(r, "height", 0))
	host := newStreamHost(conn, width, height)

	log := h.log.With(zap.String("request_id", middleware.GetRequestID(r.Context())))
	log.Debug("background stream opened", zap.Int("width", width), zap.Int("height", height))

	anim := h.bg.NewAnimator(parseSeedParam(r))
	anim.Mount(r.Context(), host)
	defer anim.Unmount()

	// unblock the read loop once the session ends on its own
	done := anim.Done()
	go func() {
		<-done
		conn.Close()
	}()

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			log.Debug("background stream closed", zap.Error(err))
			return
		}
		if msg.Type != "resize" {
			continue
		}
		host.resize(h.bg.ClampSize(msg.Width, msg.Height))
	}
}

// clientMessage is sent by the browser over the stream
type clientMessage struct {
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// streamHost adapts a websocket connection to background.Host
type streamHost struct {
	conn     *websocket.Conn
	recorder *background.Recorder

	mu     sync.Mutex
	width  int
	height int
	fn     func(int, int)
}

func newStreamHost(conn *websocket.Conn, width, height int) *streamHost {
	h := &streamHost{conn: conn, width: width, height: height}
	h.recorder = background.NewRecorder(h.send)
	return h
}

func (h *streamHost) Surface() background.Surface {
	return h.recorder
}

func (h *streamHost) Viewport() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.width, h.height
}

func (h *streamHost) OnResize(fn func(int, int)) func() {
	h.mu.Lock()
	h.fn = fn
	h.mu.Unlock()
	return func() {
		h.mu.Lock()
		h.fn = nil
		h.mu.Unlock()
	}
}

func (h *streamHost) resize(width, height int) {
	h.mu.Lock()
	h.width, h.height = width, height
	fn := h.fn
	h.mu.Unlock()
	if fn != nil {
		fn(width, height)
	}
}

// send writes one frame; only the animator goroutine calls it
func (h *streamHost) send(f background.Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	if err := h.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return h.conn.WriteMessage(websocket.TextMessage, data)
}
