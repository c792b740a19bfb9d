package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Herve02/portfolio-secretary/internal/handler/ask"
	profileHandler "github.com/Herve02/portfolio-secretary/internal/handler/profile"
	secretaryHandler "github.com/Herve02/portfolio-secretary/internal/handler/secretary"
	"github.com/Herve02/portfolio-secretary/internal/handler/voice"
	middlewarePkg "github.com/Herve02/portfolio-secretary/internal/middleware"
	profileModel "github.com/Herve02/portfolio-secretary/internal/model/profile"
	aiService "github.com/Herve02/portfolio-secretary/internal/service/ai"
	secretaryService "github.com/Herve02/portfolio-secretary/internal/service/secretary"
	speechService "github.com/Herve02/portfolio-secretary/internal/service/speech"
	"github.com/Herve02/portfolio-secretary/pkg/utils"
)

// NewRouter wires HTTP routes to core services. aiSvc may be nil when no
// model is configured; the ask endpoint then serves static fallback replies.
func NewRouter(profiles profileModel.Store, secretarySvc *secretaryService.Service, aiSvc *aiService.Service, speechSvc *speechService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	askHandler := ask.New(aiSvc, secretarySvc)

	r.Route("/api", func(api chi.Router) {
		profileHandler.New(profiles).RegisterRoutes(api)
		secretaryHandler.New(secretarySvc).RegisterRoutes(api)

		// Free-form Q&A streamed over SSE.
		api.Get("/ask/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, "sessionID")
			question := r.URL.Query().Get("question")
			language := r.URL.Query().Get("language")

			if question == "" {
				utils.RespondError(w, http.StatusBadRequest, "question query parameter is required")
				return
			}

			if err := askHandler.HandleStreamRequest(r.Context(), w, sessionID, question, language); err != nil {
				log.Printf("[ask] error handling request: %v", err)
			}
		})

		if speechSvc != nil {
			voice.New(speechSvc).RegisterRoutes(api)
		}
	})

	return r
}
