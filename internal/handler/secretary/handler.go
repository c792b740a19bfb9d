package secretary

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Herve02/portfolio-secretary/internal/model/conversation"
	secretaryService "github.com/Herve02/portfolio-secretary/internal/service/secretary"
	"github.com/Herve02/portfolio-secretary/pkg/utils"
)

// Handler exposes the conversation engine over HTTP.
type Handler struct {
	secretary *secretaryService.Service
}

// New creates the secretary handler.
func New(secretary *secretaryService.Service) *Handler {
	return &Handler{secretary: secretary}
}

// RegisterRoutes mounts the session routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Route("/session/{sessionID}", func(r chi.Router) {
		r.Get("/", h.handleGetSession)
		r.Get("/transcript", h.handleTranscript)
		r.Post("/messages", h.handleMessage)
		r.Post("/actions", h.handleQuickAction)
		r.Post("/mood", h.handleMood)
		r.Post("/cancel", h.handleCancel)
		r.Patch("/scheduling", h.handleSchedulingField)
		r.Post("/scheduling/availability", h.handleCheckAvailability)
		r.Post("/scheduling/slot", h.handleSelectSlot)
		r.Post("/scheduling/confirm", h.handleConfirmBooking)
		r.Patch("/message", h.handleMessageField)
		r.Post("/message/submit", h.handleSubmitMessage)
	})
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session := h.secretary.CreateSession(r.Context())
	utils.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.secretary.Session(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	turns, err := h.secretary.Transcript(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"turns": turns})
}

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	turn, err := h.secretary.ProcessMessage(r.Context(), chi.URLParam(r, "sessionID"), payload.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	// The agent reply lands in the transcript after the typing delay.
	utils.RespondJSON(w, http.StatusAccepted, turn)
}

func (h *Handler) handleQuickAction(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	turn, err := h.secretary.QuickAction(r.Context(), chi.URLParam(r, "sessionID"), payload.Action)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusAccepted, turn)
}

func (h *Handler) handleMood(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Mood string `json:"mood"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mood, ok := conversation.ParseMood(payload.Mood)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "unknown mood")
		return
	}

	if err := h.secretary.SetMood(r.Context(), chi.URLParam(r, "sessionID"), mood); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"mood": string(mood)})
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	if err := h.secretary.Cancel(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"state": string(conversation.StateIdle)})
}

func (h *Handler) handleSchedulingField(w http.ResponseWriter, r *http.Request) {
	field, value, ok := decodeFieldUpdate(w, r)
	if !ok {
		return
	}
	form, err := h.secretary.UpdateSchedulingField(r.Context(), chi.URLParam(r, "sessionID"), field, value)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, form)
}

func (h *Handler) handleMessageField(w http.ResponseWriter, r *http.Request) {
	field, value, ok := decodeFieldUpdate(w, r)
	if !ok {
		return
	}
	form, err := h.secretary.UpdateMessageField(r.Context(), chi.URLParam(r, "sessionID"), field, value)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, form)
}

func (h *Handler) handleCheckAvailability(w http.ResponseWriter, r *http.Request) {
	if err := h.secretary.CheckAvailability(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "checking"})
}

func (h *Handler) handleSelectSlot(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SlotID string `json:"slotId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.secretary.SelectSlot(r.Context(), chi.URLParam(r, "sessionID"), payload.SlotID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"selectedSlotId": payload.SlotID})
}

func (h *Handler) handleConfirmBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.secretary.ConfirmBooking(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "booking"})
}

func (h *Handler) handleSubmitMessage(w http.ResponseWriter, r *http.Request) {
	if err := h.secretary.SubmitMessage(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "sending"})
}

func decodeFieldUpdate(w http.ResponseWriter, r *http.Request) (field, value string, ok bool) {
	var payload struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return "", "", false
	}
	if payload.Field == "" {
		utils.RespondError(w, http.StatusBadRequest, "field is required")
		return "", "", false
	}
	return payload.Field, payload.Value, true
}

func respondServiceError(w http.ResponseWriter, err error) {
	var validation *conversation.ValidationError
	switch {
	case errors.Is(err, conversation.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &validation):
		utils.RespondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, conversation.ErrInvalidState),
		errors.Is(err, conversation.ErrNoSlotSelected),
		errors.Is(err, conversation.ErrSlotNotOffered):
		utils.RespondError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
	}
}
