package ai

import (
	"strings"
	"testing"

	"github.com/Herve02/portfolio-secretary/internal/model/profile"
)

func TestSystemPromptPerLanguage(t *testing.T) {
	owner := profile.Seed()

	en := SystemPrompt(owner, "en")
	if !strings.Contains(en, "Herve's professional AI assistant") {
		t.Fatalf("english prompt missing intro:\n%s", en)
	}
	if !strings.Contains(en, "Herve Twubahimana") || !strings.Contains(en, "Kigali, Rwanda") {
		t.Fatalf("english prompt missing profile facts:\n%s", en)
	}

	fr := SystemPrompt(owner, "fr")
	if !strings.Contains(fr, "l'assistant IA professionnel") {
		t.Fatalf("french prompt missing intro:\n%s", fr)
	}

	rw := SystemPrompt(owner, "rw")
	if !strings.Contains(rw, "umufasha w'ikoranabuhanga") {
		t.Fatalf("kinyarwanda prompt missing intro:\n%s", rw)
	}

	es := SystemPrompt(owner, "es")
	if !strings.Contains(es, "asistente de IA profesional") {
		t.Fatalf("spanish prompt missing intro:\n%s", es)
	}
}

func TestSystemPromptUnknownLanguageUsesEnglish(t *testing.T) {
	owner := profile.Seed()
	if got := SystemPrompt(owner, "de"); got != SystemPrompt(owner, "en") {
		t.Fatal("unknown language should fall back to the english prompt")
	}
}

func TestFallbackReply(t *testing.T) {
	for _, lang := range []string{"en", "fr", "rw", "es"} {
		if FallbackReply(lang) == "" {
			t.Fatalf("empty fallback for %s", lang)
		}
	}
	if FallbackReply("de") != FallbackReply("en") {
		t.Fatal("unknown language should fall back to english")
	}
}
