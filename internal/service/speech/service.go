// Package speech is the voice capability boundary. Audio capture and
// synthesis live in the browser; this side consumes recognized transcripts,
// routes navigation commands, and maps recognizer failures to localized
// feedback. The Recognizer/Synthesizer interfaces exist so a server-side
// speech backend can be plugged in without touching the command router.
package speech

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// ErrorCode classifies a recognizer failure.
type ErrorCode string

const (
	ErrNoSpeech         ErrorCode = "no-speech"
	ErrPermissionDenied ErrorCode = "permission-denied"
	ErrDeviceError      ErrorCode = "device-error"
	ErrOther            ErrorCode = "other"
)

// RecognitionError is returned by a Recognizer when capture fails.
type RecognitionError struct {
	Code ErrorCode
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("speech recognition failed: %s", e.Code)
}

// Recognizer converts audio to text in the given language.
type Recognizer interface {
	Transcribe(ctx context.Context, audio io.Reader, lang Language) (string, error)
}

// Synthesizer converts text to playable audio in the given language.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, lang Language) ([]byte, error)
}

// InterpretationKind distinguishes what a transcript resolved to.
type InterpretationKind string

const (
	KindNavigate     InterpretationKind = "navigate"
	KindHelp         InterpretationKind = "help"
	KindUnrecognized InterpretationKind = "unrecognized"
)

// Interpretation is the routing decision for one transcript.
type Interpretation struct {
	Kind     InterpretationKind `json:"kind"`
	Route    string             `json:"route,omitempty"`
	Feedback string             `json:"feedback"`
}

// Service routes voice transcripts against the multilingual command tables.
type Service struct{}

// NewService returns the command router.
func NewService() *Service {
	return &Service{}
}

// Interpret matches a transcript against the navigation commands for the
// language, then the help phrases. Matching is case-insensitive substring in
// table order; no match yields localized "not recognized" feedback.
func (s *Service) Interpret(lang Language, transcript string) Interpretation {
	normalized := strings.ToLower(strings.TrimSpace(transcript))
	cfg := Config(lang)

	for _, command := range navigationCommands {
		for _, phrase := range command.Phrases[lang] {
			if strings.Contains(normalized, strings.ToLower(phrase)) {
				return Interpretation{
					Kind:     KindNavigate,
					Route:    command.Route,
					Feedback: fmt.Sprintf("%s %s...", cfg.NavigatingTo, command.Description[lang]),
				}
			}
		}
	}

	for _, phrase := range helpPhrases[lang] {
		if strings.Contains(normalized, phrase) {
			quoted := make([]string, 0, len(navigationCommands))
			for _, command := range navigationCommands {
				quoted = append(quoted, fmt.Sprintf("%q", command.Phrases[lang][0]))
			}
			return Interpretation{
				Kind:     KindHelp,
				Feedback: fmt.Sprintf("%s %s", cfg.AvailableCommands, strings.Join(quoted, ", ")),
			}
		}
	}

	return Interpretation{Kind: KindUnrecognized, Feedback: cfg.CommandNotRecognized}
}

// FeedbackForError maps a recognizer error code to the localized message the
// voice UI should show.
func (s *Service) FeedbackForError(lang Language, code ErrorCode) string {
	cfg := Config(lang)
	switch code {
	case ErrNoSpeech:
		return cfg.NoSpeech
	case ErrPermissionDenied:
		return cfg.PermissionDenied
	case ErrDeviceError:
		return cfg.MicrophoneError
	default:
		return cfg.VoiceError
	}
}
