package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Herve02/portfolio-secretary/internal/model/conversation"
	"github.com/Herve02/portfolio-secretary/internal/model/profile"
	"github.com/Herve02/portfolio-secretary/pkg/utils"
)

// quickActions are the buttons the chat widget renders under the transcript.
var quickActions = []map[string]string{
	{"id": "about", "label": "About Herve", "action": "about"},
	{"id": "projects", "label": "Projects", "action": "projects"},
	{"id": "services", "label": "Services", "action": "services"},
	{"id": "schedule", "label": "Book Meeting", "action": "schedule"},
	{"id": "message", "label": "Leave Message", "action": "message"},
}

// Handler serves the owner profile and the widget's option lists.
type Handler struct {
	store profile.Store
}

// New creates the profile handler.
func New(store profile.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the profile routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/profile", h.handleProfile)
	r.Get("/profile/options", h.handleOptions)
}

func (h *Handler) handleProfile(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Owner())
}

func (h *Handler) handleOptions(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"durations":    conversation.DurationOptions,
		"meetingTypes": conversation.MeetingTypes,
		"moods": []conversation.Mood{
			conversation.MoodProfessional,
			conversation.MoodFriendly,
			conversation.MoodEnergetic,
			conversation.MoodCalm,
		},
		"quickActions": quickActions,
	})
}
