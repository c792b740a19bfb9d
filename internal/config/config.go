package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates every setting of the service.
type Config struct {
	Server    ServerConfig
	AI        AIConfig
	Assistant AssistantConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	assistant, err := loadAssistantConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Assistant: assistant}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the reply-generation model.
type AIConfig struct {
	APIKey         string
	AccessKey      string
	SecretKey      string
	Model          string
	BaseURL        string
	Region         string
	Temperature    *float64
	TopP           *float64
	MaxTokens      *int
	StreamResponse bool
}

// Enabled reports whether the required credentials were provided.
func (c AIConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewChatModel creates a model instance from the configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("model credentials missing: provide ARK_API_KEY + ARK_MODEL or an AK/SK pair")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("ARK_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	stream, err := parseBoolEnv("ARK_STREAM", true)
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		APIKey:         strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:      strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:      strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:          strings.TrimSpace(os.Getenv("ARK_MODEL")),
		BaseURL:        getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:         getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature:    temperature,
		TopP:           topP,
		MaxTokens:      maxTokens,
		StreamResponse: stream,
	}, nil
}

// AssistantConfig tunes the conversation engine.
type AssistantConfig struct {
	// Timezone is the business timezone slots are generated and labelled in.
	Timezone string
	// TypingDelay is how long the typing indicator shows before a reply.
	TypingDelay time.Duration
	// AvailabilityDelay simulates the availability check round trip.
	AvailabilityDelay time.Duration
	// BookingDelay simulates the booking submission round trip.
	BookingDelay time.Duration
	// MessageDelay simulates the message delivery round trip.
	MessageDelay time.Duration
	// SubmissionSuccessRate is the simulated delivery success rate in [0,1].
	SubmissionSuccessRate float64
}

// Location resolves the configured business timezone.
func (c AssistantConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func loadAssistantConfig() (AssistantConfig, error) {
	typing, err := parseDurationEnv("ASSISTANT_TYPING_DELAY", time.Second)
	if err != nil {
		return AssistantConfig{}, err
	}
	availability, err := parseDurationEnv("ASSISTANT_AVAILABILITY_DELAY", 1500*time.Millisecond)
	if err != nil {
		return AssistantConfig{}, err
	}
	booking, err := parseDurationEnv("ASSISTANT_BOOKING_DELAY", 2*time.Second)
	if err != nil {
		return AssistantConfig{}, err
	}
	message, err := parseDurationEnv("ASSISTANT_MESSAGE_DELAY", 1500*time.Millisecond)
	if err != nil {
		return AssistantConfig{}, err
	}

	rate := 0.9
	if override, err := parseOptionalFloatEnv("ASSISTANT_SUCCESS_RATE"); err != nil {
		return AssistantConfig{}, err
	} else if override != nil {
		if *override < 0 || *override > 1 {
			return AssistantConfig{}, fmt.Errorf("ASSISTANT_SUCCESS_RATE must be between 0 and 1, got %v", *override)
		}
		rate = *override
	}

	return AssistantConfig{
		Timezone:              getEnvOrDefault("ASSISTANT_TIMEZONE", "Africa/Kigali"),
		TypingDelay:           typing,
		AvailabilityDelay:     availability,
		BookingDelay:          booking,
		MessageDelay:          message,
		SubmissionSuccessRate: rate,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	if val < 0 {
		return 0, fmt.Errorf("invalid %s value %q: must not be negative", key, raw)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
