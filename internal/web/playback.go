package web

import (
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/azkar/internal/audio"
	"github.com/ziadkadry99/azkar/internal/content"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Message types exchanged on /ws/playback.
const (
	// client -> server
	msgHello   = "hello"
	msgPlay    = "play"
	msgStop    = "stop"
	msgStarted = "started"
	msgEnded   = "ended"
	msgError   = "error"

	// server -> client
	msgSpeak  = "speak"
	msgCancel = "cancel"
	msgState  = "state"
	msgNotice = "notice"
)

// clientMessage is the incoming WebSocket message format.
type clientMessage struct {
	Type    string `json:"type"`
	Speech  bool   `json:"speech,omitempty"`
	ID      string `json:"id,omitempty"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// serverMessage is the outgoing WebSocket message format.
type serverMessage struct {
	Type    string `json:"type"`
	Token   string `json:"token,omitempty"`
	ID      string `json:"id,omitempty"`
	Text    string `json:"text,omitempty"`
	Lang    string `json:"lang,omitempty"`
	Active  string `json:"active,omitempty"`
	Message string `json:"message,omitempty"`
}

// session is one browser tab. It owns the tab's playback coordinator.
type session struct {
	id      string
	conn    *websocket.Conn
	store   *content.Store
	logger  *zap.Logger
	speaker *BrowserSpeaker
	coord   *audio.Coordinator

	writeMu sync.Mutex
}

func (h *Handler) handlePlayback(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	s := &session{
		id:     uuid.NewString(),
		conn:   conn,
		store:  h.store,
		logger: h.logger,
	}
	s.logger = s.logger.With(zap.String("session", s.id))
	s.speaker = NewBrowserSpeaker(s.send, h.lang)
	s.coord = audio.NewCoordinator(s.speaker,
		audio.WithOnChange(func(active string) {
			s.send(serverMessage{Type: msgState, Active: active})
		}),
		audio.WithOnError(func(id string, err error) {
			s.logger.Warn("playback failed", zap.String("item", id), zap.Error(err))
		}),
	)

	s.logger.Debug("playback session opened")
	s.run()
	s.coord.Stop()
	s.logger.Debug("playback session closed")
}

func (s *session) run() {
	for {
		var msg clientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read", zap.Error(err))
			}
			return
		}

		switch msg.Type {
		case msgHello:
			s.speaker.SetAvailable(msg.Speech)
		case msgPlay:
			s.play(msg.ID)
		case msgStop:
			s.coord.Stop()
		case msgStarted:
			s.speaker.Started(msg.Token)
		case msgEnded:
			s.speaker.Ended(msg.Token)
		case msgError:
			s.speaker.Failed(msg.Token, errors.New(msg.Message))
		default:
			s.notice("unknown message type: " + msg.Type)
		}
	}
}

func (s *session) play(id string) {
	ref, err := s.store.Item(id)
	if err != nil {
		s.notice("العنصر غير موجود")
		return
	}
	if err := s.coord.Play(ref.ID, ref.Text); err != nil {
		if errors.Is(err, audio.ErrSpeechUnavailable) {
			s.notice("القراءة الصوتية غير مدعومة في هذا المتصفح")
			return
		}
		s.logger.Warn("play", zap.String("item", id), zap.Error(err))
	}
}

func (s *session) notice(message string) {
	s.send(serverMessage{Type: msgNotice, Message: message})
}

func (s *session) send(msg serverMessage) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteJSON(msg); err != nil {
		s.logger.Debug("websocket write", zap.String("type", msg.Type), zap.Error(err))
		return err
	}
	return nil
}
