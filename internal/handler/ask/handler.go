// Package ask streams free-form Q&A replies about the owner over SSE. Unlike
// the scripted secretary flows, answers here come from the reply-generation
// capability; when that capability is missing or failing, the handler falls
// back to a static localized apology instead of an error page.
package ask

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/cloudwego/eino/schema"

	"github.com/Herve02/portfolio-secretary/internal/model/conversation"
	aiService "github.com/Herve02/portfolio-secretary/internal/service/ai"
	secretaryService "github.com/Herve02/portfolio-secretary/internal/service/secretary"
	"github.com/Herve02/portfolio-secretary/pkg/utils"
)

// Handler manages streaming AI responses via Server-Sent Events.
type Handler struct {
	aiSvc     *aiService.Service
	secretary *secretaryService.Service
}

// New creates a new ask handler. aiSvc may be nil when no model is
// configured; every request then receives the fallback reply.
func New(aiSvc *aiService.Service, secretary *secretaryService.Service) *Handler {
	return &Handler{aiSvc: aiSvc, secretary: secretary}
}

// StreamResponse is the data payload of one SSE frame; the frame's event
// name (start, chunk, done, error) carries the kind.
type StreamResponse struct {
	Content   string `json:"content,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HandleStreamRequest answers one question against the session transcript.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, sessionID, question, language string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	history, err := h.secretary.Transcript(ctx, sessionID)
	if err != nil {
		h.sendError(w, flusher, err.Error())
		return err
	}

	utils.SendSSEEvent(w, flusher, "start", StreamResponse{SessionID: sessionID})

	if h.aiSvc == nil {
		// Capability unavailable: static fallback, no retry.
		h.finish(w, flusher, sessionID, aiService.FallbackReply(language))
		return nil
	}

	if h.aiSvc.StreamingEnabled() {
		if err := h.streamReply(ctx, w, flusher, sessionID, history, question, language); err == nil {
			return nil
		} else if !errors.Is(err, context.Canceled) {
			log.Printf("[ask] stream failed for session=%s: %v", sessionID, err)
		}
		// Fall through to the fallback reply on capability failure.
		h.finish(w, flusher, sessionID, aiService.FallbackReply(language))
		return nil
	}

	reply, err := h.aiSvc.GenerateReply(ctx, sessionID, history, question, language)
	if err != nil {
		log.Printf("[ask] generation failed for session=%s: %v", sessionID, err)
		reply = aiService.FallbackReply(language)
	}
	h.finish(w, flusher, sessionID, reply)
	return nil
}

func (h *Handler) streamReply(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, sessionID string, history []conversation.Turn, question, language string) error {
	stream, err := h.aiSvc.StreamReply(ctx, history, question, language)
	if err != nil {
		return err
	}
	defer stream.Close()

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		h.sendChunk(w, flusher, sessionID, chunk)
	}

	utils.SendSSEEvent(w, flusher, "done", StreamResponse{SessionID: sessionID, Finished: true})
	return nil
}

func (h *Handler) sendChunk(w http.ResponseWriter, flusher http.Flusher, sessionID string, chunk *schema.Message) {
	if chunk == nil || chunk.Content == "" {
		return
	}
	utils.SendSSEEvent(w, flusher, "chunk", StreamResponse{SessionID: sessionID, Content: chunk.Content})
}

func (h *Handler) finish(w http.ResponseWriter, flusher http.Flusher, sessionID, reply string) {
	utils.SendSSEEvent(w, flusher, "chunk", StreamResponse{SessionID: sessionID, Content: reply})
	utils.SendSSEEvent(w, flusher, "done", StreamResponse{SessionID: sessionID, Finished: true})
}

func (h *Handler) sendError(w http.ResponseWriter, flusher http.Flusher, message string) {
	utils.SendSSEEvent(w, flusher, "error", StreamResponse{Error: message})
}
