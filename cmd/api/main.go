package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Herve02/portfolio-secretary/internal/analysis/intent"
	"github.com/Herve02/portfolio-secretary/internal/config"
	"github.com/Herve02/portfolio-secretary/internal/handler"
	"github.com/Herve02/portfolio-secretary/internal/model/profile"
	"github.com/Herve02/portfolio-secretary/internal/render"
	"github.com/Herve02/portfolio-secretary/internal/schedule"
	"github.com/Herve02/portfolio-secretary/internal/service/ai"
	"github.com/Herve02/portfolio-secretary/internal/service/delivery"
	"github.com/Herve02/portfolio-secretary/internal/service/secretary"
	"github.com/Herve02/portfolio-secretary/internal/service/speech"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	location, err := cfg.Assistant.Location()
	if err != nil {
		log.Fatalf("failed to load timezone %q: %v", cfg.Assistant.Timezone, err)
	}

	profileStore := profile.NewMemoryStore(profile.Seed())
	owner := profileStore.Owner()

	clock := schedule.SystemClock{}
	renderer := render.New(owner, location)
	classifier := intent.New(owner.ShortName)
	machine := secretary.NewMachine(classifier, renderer, clock.Now)
	slots := secretary.NewSlotGenerator(clock, location)
	submitter := delivery.NewSimulated(cfg.Assistant.SubmissionSuccessRate, time.Now().UnixNano())

	delays := secretary.Delays{
		Typing:       cfg.Assistant.TypingDelay,
		Availability: cfg.Assistant.AvailabilityDelay,
		Booking:      cfg.Assistant.BookingDelay,
		Message:      cfg.Assistant.MessageDelay,
	}
	secretarySvc := secretary.NewService(machine, slots, submitter, schedule.TimerScheduler{}, delays)

	// Initialize AI service
	var aiSvc *ai.Service
	if cfg.AI.Enabled() {
		aiSvc, err = ai.NewService(ctx, profileStore, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing with fallback replies only - check the Ark model environment variables")
		} else {
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("Ark credentials not configured, ask endpoint will serve fallback replies")
	}

	speechSvc := speech.NewService()

	router := handler.NewRouter(profileStore, secretarySvc, aiSvc, speechSvc)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Portfolio secretary backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
