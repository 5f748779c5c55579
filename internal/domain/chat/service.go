// Package chat orchestrates conversational exchanges with the model backend.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"lifenav-server/navigator-api/internal/domain/conversation"
	"lifenav-server/navigator-api/internal/domain/genai"
	"lifenav-server/navigator-api/internal/infrastructure/metrics"
	"lifenav-server/navigator-api/internal/utils/platformerrors"
)

// systemInstruction frames every model call with the advisor persona. The
// wording is fixed; it is not configurable per request.
const systemInstruction = "You are a thoughtful life navigation assistant. " +
	"You help people reflect on their goals, decisions, habits, and wellbeing. " +
	"Be supportive and concrete, ask a clarifying question when the situation is ambiguous, " +
	"and keep replies focused on what the person can actually do next. " +
	"You are not a substitute for professional medical, legal, or financial advice, " +
	"and you say so when a topic calls for it."

// fallbackReply is served verbatim when the model backend reports capacity
// exhaustion. It is persisted as an ordinary assistant message.
const fallbackReply = "I'm receiving more requests than I can handle right now, " +
	"so I can't give your message the attention it deserves. " +
	"Please try again in a few minutes. " +
	"In the meantime, it can help to jot down what's on your mind so we can pick it up from there."

// Params carries one inbound chat request.
type Params struct {
	Message        string
	ConversationID *string
}

// Result is the outcome of a handled chat exchange.
type Result struct {
	Reply          string
	ConversationID string
	// Created reports whether this exchange started a new conversation.
	Created bool
	// Degraded reports whether the reply is the canned fallback.
	Degraded bool
}

// Service handles chat exchanges and conversation history reads.
type Service interface {
	HandleChat(ctx context.Context, actorID string, params Params) (*Result, error)
	ListMessages(ctx context.Context, actorID, conversationPublicID string) ([]conversation.Message, error)
}

// ServiceImpl implements Service.
type ServiceImpl struct {
	conversations conversation.Repository
	messages      conversation.MessageRepository
	model         genai.Client
	logger        zerolog.Logger
}

// NewService creates a chat service.
func NewService(
	conversations conversation.Repository,
	messages conversation.MessageRepository,
	model genai.Client,
	logger zerolog.Logger,
) *ServiceImpl {
	return &ServiceImpl{
		conversations: conversations,
		messages:      messages,
		model:         model,
		logger:        logger.With().Str("component", "chat_service").Logger(),
	}
}

// HandleChat runs one full exchange: it resolves the conversation, persists
// the user turn, assembles history for the model, and persists the reply.
// Capacity exhaustion at the model never fails the exchange; the canned
// fallback is stored and returned instead.
func (s *ServiceImpl) HandleChat(ctx context.Context, actorID string, params Params) (*Result, error) {
	message := strings.TrimSpace(params.Message)
	if message == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "message is required", nil, "chat-message-required")
	}

	conv, created, err := s.resolveConversation(ctx, actorID, params.ConversationID, message)
	if err != nil {
		return nil, err
	}

	userTurn := conversation.NewMessage(conversation.NewMessagePublicID(), conv.ID, conversation.RoleUser, message)
	if err := s.messages.Append(ctx, userTurn); err != nil {
		return nil, err
	}

	history, err := s.messages.ListByConversationID(ctx, conv.ID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	reply, err := s.model.GenerateText(ctx, genai.GenerateRequest{
		SystemInstruction: systemInstruction,
		Contents:          conversation.AssembleHistory(history),
	})
	degraded := false
	switch {
	case err == nil:
		metrics.RecordModelCall(metrics.FlowChat, metrics.OutcomeOK, time.Since(start))
	case genai.IsCapacityExhausted(err):
		metrics.RecordModelCall(metrics.FlowChat, metrics.OutcomeCapacityExhausted, time.Since(start))
		metrics.RecordFallback(metrics.FlowChat)
		s.logger.Warn().
			Str("conversation_id", conv.PublicID).
			Err(err).
			Msg("model capacity exhausted, serving degraded chat reply")
		reply = fallbackReply
		degraded = true
	default:
		metrics.RecordModelCall(metrics.FlowChat, metrics.OutcomeError, time.Since(start))
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeExternal, "chat completion failed", err, "chat-completion-failed")
	}

	assistantTurn := conversation.NewMessage(conversation.NewMessagePublicID(), conv.ID, conversation.RoleAssistant, reply)
	if err := s.messages.Append(ctx, assistantTurn); err != nil {
		return nil, err
	}

	return &Result{
		Reply:          reply,
		ConversationID: conv.PublicID,
		Created:        created,
		Degraded:       degraded,
	}, nil
}

// ListMessages returns the full history of a conversation owned by the actor,
// in sequence order. Conversations owned by other actors read as not found.
func (s *ServiceImpl) ListMessages(ctx context.Context, actorID, conversationPublicID string) ([]conversation.Message, error) {
	conv, err := s.conversations.FindByPublicID(ctx, conversationPublicID)
	if err != nil {
		return nil, err
	}
	if conv.ActorID != actorID {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound, "conversation not found", nil, "chat-conversation-not-owned")
	}
	return s.messages.ListByConversationID(ctx, conv.ID)
}

func (s *ServiceImpl) resolveConversation(ctx context.Context, actorID string, requestedID *string, message string) (*conversation.Conversation, bool, error) {
	requested := ""
	if requestedID != nil {
		requested = strings.TrimSpace(*requestedID)
	}

	var fresh *conversation.Conversation
	if requested == "" {
		title := conversation.TitleFromMessage(message)
		fresh = conversation.NewConversation(conversation.NewPublicID(), actorID, &title)
	}

	conv, created, err := s.conversations.GetOrCreate(ctx, requested, fresh)
	if err != nil {
		return nil, false, err
	}
	if conv.ActorID != actorID {
		return nil, false, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound, "conversation not found", nil, "chat-conversation-not-owned")
	}
	return conv, created, nil
}
