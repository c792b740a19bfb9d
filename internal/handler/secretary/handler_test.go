package secretary

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Herve02/portfolio-secretary/internal/analysis/intent"
	"github.com/Herve02/portfolio-secretary/internal/model/conversation"
	"github.com/Herve02/portfolio-secretary/internal/model/profile"
	"github.com/Herve02/portfolio-secretary/internal/render"
	"github.com/Herve02/portfolio-secretary/internal/schedule"
	"github.com/Herve02/portfolio-secretary/internal/service/delivery"
	secretaryService "github.com/Herve02/portfolio-secretary/internal/service/secretary"
)

func setupRouter() (*chi.Mux, *schedule.ManualScheduler) {
	clock := schedule.NewManualClock(time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC))
	sched := schedule.NewManualScheduler(clock)

	owner := profile.Seed()
	renderer := render.New(owner, time.UTC)
	machine := secretaryService.NewMachine(intent.New(owner.ShortName), renderer, clock.Now)
	slots := secretaryService.NewSlotGenerator(clock, time.UTC)
	submitter := delivery.NewSimulated(1, 11)
	svc := secretaryService.NewService(machine, slots, submitter, sched, secretaryService.DefaultDelays())

	handler := New(svc)
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, sched
}

func createSession(t *testing.T, r *chi.Mux) conversation.Session {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/session", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var session conversation.Session
	if err := json.Unmarshal(resp.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	return session
}

func postJSON(t *testing.T, r *chi.Mux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func patchJSON(t *testing.T, r *chi.Mux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestCreateSessionReturnsGreeting(t *testing.T) {
	r, _ := setupRouter()
	session := createSession(t, r)

	if session.ID == "" {
		t.Fatal("session ID is empty")
	}
	if len(session.Transcript) != 1 {
		t.Fatalf("transcript has %d turns, want 1", len(session.Transcript))
	}
}

func TestGetSessionNotFound(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/session/missing", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestPostMessageAccepted(t *testing.T) {
	r, sched := setupRouter()
	session := createSession(t, r)

	resp := postJSON(t, r, "/session/"+session.ID+"/messages", map[string]string{"content": "What services does Herve offer?"})
	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", resp.Code, resp.Body.String())
	}

	var turn conversation.Turn
	if err := json.Unmarshal(resp.Body.Bytes(), &turn); err != nil {
		t.Fatalf("decode turn: %v", err)
	}
	if turn.Sender != conversation.SenderUser {
		t.Fatalf("returned sender = %s, want user", turn.Sender)
	}

	sched.Advance(time.Second)

	req := httptest.NewRequest(http.MethodGet, "/session/"+session.ID+"/transcript", nil)
	get := httptest.NewRecorder()
	r.ServeHTTP(get, req)
	if get.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", get.Code)
	}

	var payload struct {
		Turns []conversation.Turn `json:"turns"`
	}
	if err := json.Unmarshal(get.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode transcript: %v", err)
	}
	if len(payload.Turns) != 3 {
		t.Fatalf("transcript has %d turns, want 3", len(payload.Turns))
	}
	if payload.Turns[2].Sender != conversation.SenderAgent {
		t.Fatalf("last sender = %s, want agent", payload.Turns[2].Sender)
	}
}

func TestPostEmptyMessageRejected(t *testing.T) {
	r, _ := setupRouter()
	session := createSession(t, r)

	resp := postJSON(t, r, "/session/"+session.ID+"/messages", map[string]string{"content": ""})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}

func TestMoodEndpoint(t *testing.T) {
	r, _ := setupRouter()
	session := createSession(t, r)

	resp := postJSON(t, r, "/session/"+session.ID+"/mood", map[string]string{"mood": "friendly"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	bad := postJSON(t, r, "/session/"+session.ID+"/mood", map[string]string{"mood": "grumpy"})
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown mood, got %d", bad.Code)
	}
}

func TestSchedulingEndpoints(t *testing.T) {
	r, sched := setupRouter()
	session := createSession(t, r)

	// Field updates are rejected until the scheduling flow is open.
	early := patchJSON(t, r, "/session/"+session.ID+"/scheduling", map[string]string{"field": "name", "value": "Alice"})
	if early.Code != http.StatusConflict {
		t.Fatalf("expected 409 while idle, got %d", early.Code)
	}

	postJSON(t, r, "/session/"+session.ID+"/messages", map[string]string{"content": "book a meeting"})
	sched.Advance(time.Second)

	for _, update := range [][2]string{
		{"name", "Alice"},
		{"email", "alice@example.com"},
		{"purpose", "Kickoff"},
	} {
		resp := patchJSON(t, r, "/session/"+session.ID+"/scheduling", map[string]string{"field": update[0], "value": update[1]})
		if resp.Code != http.StatusOK {
			t.Fatalf("field %s: expected 200, got %d: %s", update[0], resp.Code, resp.Body.String())
		}
	}

	avail := postJSON(t, r, "/session/"+session.ID+"/scheduling/availability", nil)
	if avail.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", avail.Code, avail.Body.String())
	}
	sched.Advance(2 * time.Second)

	req := httptest.NewRequest(http.MethodGet, "/session/"+session.ID, nil)
	get := httptest.NewRecorder()
	r.ServeHTTP(get, req)
	var current conversation.Session
	if err := json.Unmarshal(get.Body.Bytes(), &current); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if len(current.OfferedSlots) != 3 {
		t.Fatalf("got %d offered slots, want 3", len(current.OfferedSlots))
	}

	slot := postJSON(t, r, "/session/"+session.ID+"/scheduling/slot", map[string]string{"slotId": current.OfferedSlots[0].ID})
	if slot.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", slot.Code, slot.Body.String())
	}

	confirm := postJSON(t, r, "/session/"+session.ID+"/scheduling/confirm", nil)
	if confirm.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", confirm.Code, confirm.Body.String())
	}
	sched.Advance(2 * time.Second)

	get = httptest.NewRecorder()
	r.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/session/"+session.ID, nil))
	if err := json.Unmarshal(get.Body.Bytes(), &current); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if current.State != conversation.StateIdle {
		t.Fatalf("state after booking = %s, want idle", current.State)
	}
}

func TestConfirmWithoutSlotConflicts(t *testing.T) {
	r, sched := setupRouter()
	session := createSession(t, r)

	postJSON(t, r, "/session/"+session.ID+"/messages", map[string]string{"content": "book a meeting"})
	sched.Advance(time.Second)

	resp := postJSON(t, r, "/session/"+session.ID+"/scheduling/confirm", nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}

func TestAvailabilityValidationError(t *testing.T) {
	r, sched := setupRouter()
	session := createSession(t, r)

	postJSON(t, r, "/session/"+session.ID+"/messages", map[string]string{"content": "book a meeting"})
	sched.Advance(time.Second)

	resp := postJSON(t, r, "/session/"+session.ID+"/scheduling/availability", nil)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for empty form, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCancelEndpoint(t *testing.T) {
	r, sched := setupRouter()
	session := createSession(t, r)

	postJSON(t, r, "/session/"+session.ID+"/messages", map[string]string{"content": "book a meeting"})
	sched.Advance(time.Second)

	resp := postJSON(t, r, "/session/"+session.ID+"/cancel", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	// Cancelling again while idle is a state conflict.
	again := postJSON(t, r, "/session/"+session.ID+"/cancel", nil)
	if again.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", again.Code)
	}
}

func TestQuickActionEndpoint(t *testing.T) {
	r, _ := setupRouter()
	session := createSession(t, r)

	resp := postJSON(t, r, "/session/"+session.ID+"/actions", map[string]string{"action": "projects"})
	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", resp.Code, resp.Body.String())
	}

	bad := postJSON(t, r, "/session/"+session.ID+"/actions", map[string]string{"action": "moonwalk"})
	if bad.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", bad.Code)
	}
}

func TestMessageFlowEndpoints(t *testing.T) {
	r, sched := setupRouter()
	session := createSession(t, r)

	postJSON(t, r, "/session/"+session.ID+"/messages", map[string]string{"content": "I'd like to leave a message"})
	sched.Advance(time.Second)

	for _, update := range [][2]string{
		{"name", "Bob"},
		{"email", "bob@example.com"},
		{"topic", "Collaboration"},
		{"body", "I would like to discuss a project with you."},
		{"consentGiven", "true"},
	} {
		resp := patchJSON(t, r, "/session/"+session.ID+"/message", map[string]string{"field": update[0], "value": update[1]})
		if resp.Code != http.StatusOK {
			t.Fatalf("field %s: expected 200, got %d: %s", update[0], resp.Code, resp.Body.String())
		}
	}

	submit := postJSON(t, r, "/session/"+session.ID+"/message/submit", nil)
	if submit.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", submit.Code, submit.Body.String())
	}
	sched.Advance(2 * time.Second)

	get := httptest.NewRecorder()
	r.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/session/"+session.ID, nil))
	var current conversation.Session
	if err := json.Unmarshal(get.Body.Bytes(), &current); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if current.State != conversation.StateIdle {
		t.Fatalf("state after delivery = %s, want idle", current.State)
	}
}
