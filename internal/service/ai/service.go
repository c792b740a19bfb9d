// Package ai is the external reply-generation capability: given a
// conversation history, return a reply string. It backs the free-form Q&A
// surface; the scripted secretary never depends on it.
package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/Herve02/portfolio-secretary/internal/config"
	"github.com/Herve02/portfolio-secretary/internal/model/conversation"
	"github.com/Herve02/portfolio-secretary/internal/model/profile"
)

// Service encapsulates the LLM-backed reply generation.
type Service struct {
	chatModel model.ChatModel
	profiles  profile.Store
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the prompt+model chain for the owner profile.
func NewService(ctx context.Context, profiles profile.Store, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		profiles:  profiles,
		cfg:       cfg,
		chain:     runnable,
	}, nil
}

// StreamingEnabled indicates whether SSE streaming output is configured.
func (s *Service) StreamingEnabled() bool {
	return s.cfg.StreamResponse
}

// GenerateReply runs the chain over the transcript and returns the reply.
func (s *Service) GenerateReply(ctx context.Context, sessionID string, history []conversation.Turn, userMessage, language string) (string, error) {
	input := s.buildChainInput(history, userMessage, language)

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run AI chain: %w", err)
	}

	log.Printf("[ai] generated reply for session=%s, length=%d", sessionID, len(response.Content))
	return response.Content, nil
}

// StreamReply streams reply chunks via the configured chain.
func (s *Service) StreamReply(ctx context.Context, history []conversation.Turn, userMessage, language string) (*schema.StreamReader[*schema.Message], error) {
	if !s.StreamingEnabled() {
		return nil, fmt.Errorf("streaming disabled in configuration")
	}

	stream, err := s.chain.Stream(ctx, s.buildChainInput(history, userMessage, language))
	if err != nil {
		return nil, fmt.Errorf("failed to stream AI chain output: %w", err)
	}
	return stream, nil
}

func (s *Service) buildChainInput(history []conversation.Turn, userMessage, language string) map[string]any {
	return map[string]any{
		"system":  SystemPrompt(s.profiles.Owner(), language),
		"history": buildHistoryMessages(history),
		"query":   userMessage,
	}
}

func buildHistoryMessages(turns []conversation.Turn) []*schema.Message {
	const historyLimit = 10

	if len(turns) == 0 {
		return nil
	}

	startIdx := 0
	if len(turns) > historyLimit {
		startIdx = len(turns) - historyLimit
	}

	history := make([]*schema.Message, 0, len(turns)-startIdx)
	for _, turn := range turns[startIdx:] {
		switch turn.Sender {
		case conversation.SenderUser:
			history = append(history, schema.UserMessage(turn.Content))
		case conversation.SenderAgent:
			history = append(history, schema.AssistantMessage(turn.Content, nil))
		}
	}
	return history
}
