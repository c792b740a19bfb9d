// Package voice exposes the voice-command capability over a websocket. The
// browser does the actual audio capture and speech recognition; it sends
// recognized transcripts (and recognizer errors) here and receives routing
// decisions plus localized feedback to speak back.
package voice

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/Herve02/portfolio-secretary/internal/service/speech"
	"github.com/Herve02/portfolio-secretary/pkg/utils"
)

const readTimeout = 60 * time.Second

// Handler upgrades voice connections and routes transcripts through the
// speech service.
type Handler struct {
	speechSvc *speech.Service
	upgrader  websocket.Upgrader
}

// New creates a voice handler.
func New(speechSvc *speech.Service) *Handler {
	return &Handler{
		speechSvc: speechSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the voice endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/voice/commands", h.handleCommands)
	r.Post("/voice/interpret", h.handleInterpret)
	r.Get("/voice/ws", h.handleWebSocket)
}

type inboundMessage struct {
	Type       string  `json:"type"`
	Transcript string  `json:"transcript,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Error      string  `json:"error,omitempty"`
	Language   string  `json:"language,omitempty"`
	Timestamp  int64   `json:"timestamp,omitempty"`
}

type outgoingMessage struct {
	Type      string `json:"type"`
	Data      any    `json:"data,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// handleCommands returns the full multilingual command and feedback tables so
// the client can render a help overlay without a round trip per language.
func (h *Handler) handleCommands(w http.ResponseWriter, r *http.Request) {
	languages := make(map[speech.Language]speech.LanguageConfig, len(speech.Languages()))
	for _, lang := range speech.Languages() {
		languages[lang] = speech.Config(lang)
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"commands":  speech.Commands(),
		"languages": languages,
	})
}

// handleInterpret is the non-websocket path for one-shot transcripts.
func (h *Handler) handleInterpret(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Transcript string `json:"transcript"`
		Language   string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Transcript == "" {
		utils.RespondError(w, http.StatusBadRequest, "transcript is required")
		return
	}
	lang := speech.ParseLanguage(req.Language)
	utils.RespondJSON(w, http.StatusOK, h.speechSvc.Interpret(lang, req.Transcript))
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	lang := speech.ParseLanguage(r.URL.Query().Get("language"))

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[voice] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[voice] new connection language=%s", lang)

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	h.send(conn, "ready", map[string]any{
		"language": lang,
		"feedback": speech.Config(lang).VoiceReady,
	})

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[voice] read error: %v", err)
			}
			return
		}

		conn.SetReadDeadline(time.Now().Add(readTimeout))

		if msg.Language != "" {
			lang = speech.ParseLanguage(msg.Language)
		}

		switch msg.Type {
		case "transcript":
			h.handleTranscript(conn, lang, msg.Transcript)
		case "error":
			h.handleRecognitionError(conn, lang, msg.Error)
		case "config":
			h.send(conn, "config", map[string]any{"language": lang, "config": speech.Config(lang)})
		default:
			h.sendError(conn, "unsupported message type: "+msg.Type)
		}
	}
}

func (h *Handler) handleTranscript(conn *websocket.Conn, lang speech.Language, transcript string) {
	if transcript == "" {
		h.sendError(conn, "transcript is required")
		return
	}
	result := h.speechSvc.Interpret(lang, transcript)
	h.send(conn, "interpretation", result)
}

func (h *Handler) handleRecognitionError(conn *websocket.Conn, lang speech.Language, code string) {
	feedback := h.speechSvc.FeedbackForError(lang, speech.ErrorCode(code))
	h.send(conn, "feedback", map[string]any{"code": code, "feedback": feedback})
}

func (h *Handler) send(conn *websocket.Conn, msgType string, data any) {
	out := outgoingMessage{Type: msgType, Data: data, Timestamp: time.Now().UnixMilli()}
	if err := conn.WriteJSON(out); err != nil {
		log.Printf("[voice] write failed: %v", err)
	}
}

func (h *Handler) sendError(conn *websocket.Conn, message string) {
	h.send(conn, "error", map[string]string{"message": message})
}
