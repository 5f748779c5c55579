package chat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"lifenav-server/navigator-api/internal/domain/chat"
	"lifenav-server/navigator-api/internal/domain/conversation"
	"lifenav-server/navigator-api/internal/domain/genai"
	"lifenav-server/navigator-api/internal/utils/platformerrors"
)

// MockConversationRepository is a func-field mock of conversation.Repository.
type MockConversationRepository struct {
	CreateFunc         func(ctx context.Context, conv *conversation.Conversation) error
	FindByPublicIDFunc func(ctx context.Context, publicID string) (*conversation.Conversation, error)
	GetOrCreateFunc    func(ctx context.Context, publicID string, fresh *conversation.Conversation) (*conversation.Conversation, bool, error)
}

func (m *MockConversationRepository) Create(ctx context.Context, conv *conversation.Conversation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, conv)
	}
	return nil
}

func (m *MockConversationRepository) FindByPublicID(ctx context.Context, publicID string) (*conversation.Conversation, error) {
	if m.FindByPublicIDFunc != nil {
		return m.FindByPublicIDFunc(ctx, publicID)
	}
	return nil, nil
}

func (m *MockConversationRepository) GetOrCreate(ctx context.Context, publicID string, fresh *conversation.Conversation) (*conversation.Conversation, bool, error) {
	if m.GetOrCreateFunc != nil {
		return m.GetOrCreateFunc(ctx, publicID, fresh)
	}
	return fresh, true, nil
}

// MockMessageRepository is a func-field mock of conversation.MessageRepository.
type MockMessageRepository struct {
	AppendFunc               func(ctx context.Context, message *conversation.Message) error
	ListByConversationIDFunc func(ctx context.Context, conversationID uint) ([]conversation.Message, error)

	appended []conversation.Message
}

func (m *MockMessageRepository) Append(ctx context.Context, message *conversation.Message) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, message)
	}
	message.Sequence = len(m.appended) + 1
	m.appended = append(m.appended, *message)
	return nil
}

func (m *MockMessageRepository) ListByConversationID(ctx context.Context, conversationID uint) ([]conversation.Message, error) {
	if m.ListByConversationIDFunc != nil {
		return m.ListByConversationIDFunc(ctx, conversationID)
	}
	return m.appended, nil
}

// MockModelClient is a func-field mock of genai.Client.
type MockModelClient struct {
	GenerateTextFunc func(ctx context.Context, req genai.GenerateRequest) (string, error)
	lastRequest      *genai.GenerateRequest
}

func (m *MockModelClient) GenerateText(ctx context.Context, req genai.GenerateRequest) (string, error) {
	m.lastRequest = &req
	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, req)
	}
	return "", errors.New("no GenerateTextFunc configured")
}

func newTestService(convs *MockConversationRepository, msgs *MockMessageRepository, model *MockModelClient) chat.Service {
	return chat.NewService(convs, msgs, model, zerolog.Nop())
}

func TestHandleChat_EmptyMessage(t *testing.T) {
	convs := &MockConversationRepository{
		GetOrCreateFunc: func(ctx context.Context, publicID string, fresh *conversation.Conversation) (*conversation.Conversation, bool, error) {
			t.Fatal("GetOrCreate should not be called for an empty message")
			return nil, false, nil
		},
	}
	service := newTestService(convs, &MockMessageRepository{}, &MockModelClient{})

	_, err := service.HandleChat(context.Background(), "user-1", chat.Params{Message: "   "})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Fatalf("Expected validation error, got %v", err)
	}
}

func TestHandleChat_NewConversation(t *testing.T) {
	var created *conversation.Conversation
	convs := &MockConversationRepository{
		GetOrCreateFunc: func(ctx context.Context, publicID string, fresh *conversation.Conversation) (*conversation.Conversation, bool, error) {
			if publicID != "" {
				t.Errorf("Expected empty requested ID, got %q", publicID)
			}
			if fresh == nil {
				t.Fatal("Expected a fresh conversation to be proposed")
			}
			fresh.ID = 7
			created = fresh
			return fresh, true, nil
		},
	}
	msgs := &MockMessageRepository{}
	model := &MockModelClient{
		GenerateTextFunc: func(ctx context.Context, req genai.GenerateRequest) (string, error) {
			return "Tell me more about what feels stuck.", nil
		},
	}
	service := newTestService(convs, msgs, model)

	result, err := service.HandleChat(context.Background(), "user-1", chat.Params{Message: "I feel stuck in my job"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !result.Created {
		t.Error("Expected Created to be true for a new conversation")
	}
	if result.Degraded {
		t.Error("Expected a non-degraded result")
	}
	if result.ConversationID != created.PublicID {
		t.Errorf("Expected conversation ID %q, got %q", created.PublicID, result.ConversationID)
	}
	if created.Title == nil || *created.Title != "I feel stuck in my job..." {
		t.Errorf("Unexpected derived title: %v", created.Title)
	}
	if created.ActorID != "user-1" {
		t.Errorf("Expected actor user-1, got %q", created.ActorID)
	}

	if len(msgs.appended) != 2 {
		t.Fatalf("Expected user and assistant messages persisted, got %d", len(msgs.appended))
	}
	if msgs.appended[0].Role != conversation.RoleUser || msgs.appended[0].Content != "I feel stuck in my job" {
		t.Errorf("Unexpected user message: %+v", msgs.appended[0])
	}
	if msgs.appended[1].Role != conversation.RoleAssistant || msgs.appended[1].Content != result.Reply {
		t.Errorf("Unexpected assistant message: %+v", msgs.appended[1])
	}
}

func TestHandleChat_ExistingConversationHistory(t *testing.T) {
	existing := &conversation.Conversation{ID: 3, PublicID: "conv_existing", ActorID: "user-1"}
	convs := &MockConversationRepository{
		GetOrCreateFunc: func(ctx context.Context, publicID string, fresh *conversation.Conversation) (*conversation.Conversation, bool, error) {
			if publicID != "conv_existing" {
				t.Errorf("Expected lookup of conv_existing, got %q", publicID)
			}
			if fresh != nil {
				t.Error("No fresh conversation should be proposed when an ID is given")
			}
			return existing, false, nil
		},
	}
	msgs := &MockMessageRepository{
		appended: []conversation.Message{
			{Role: conversation.RoleUser, Content: "earlier question", Sequence: 1},
			{Role: conversation.RoleAssistant, Content: "earlier answer", Sequence: 2},
		},
	}
	model := &MockModelClient{
		GenerateTextFunc: func(ctx context.Context, req genai.GenerateRequest) (string, error) {
			return "Here is a follow-up thought.", nil
		},
	}
	service := newTestService(convs, msgs, model)

	id := "conv_existing"
	result, err := service.HandleChat(context.Background(), "user-1", chat.Params{
		Message:        "what next?",
		ConversationID: &id,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Created {
		t.Error("Expected Created to be false for an existing conversation")
	}

	// The model call must see the full ordered history including the new
	// user turn, with assistant turns re-tagged to the model role.
	if model.lastRequest == nil {
		t.Fatal("Model was not invoked")
	}
	contents := model.lastRequest.Contents
	if len(contents) != 3 {
		t.Fatalf("Expected 3 turns sent to model, got %d", len(contents))
	}
	if contents[1].Role != genai.RoleModel {
		t.Errorf("Expected assistant turn re-tagged as model, got %q", contents[1].Role)
	}
	if contents[2].Parts[0].Text != "what next?" {
		t.Errorf("Expected new user turn last, got %q", contents[2].Parts[0].Text)
	}
	if model.lastRequest.ResponseSchema != nil {
		t.Error("Chat calls must not set a response schema")
	}
}

func TestHandleChat_CapacityFallback(t *testing.T) {
	existing := &conversation.Conversation{ID: 5, PublicID: "conv_busy", ActorID: "user-1"}
	convs := &MockConversationRepository{
		GetOrCreateFunc: func(ctx context.Context, publicID string, fresh *conversation.Conversation) (*conversation.Conversation, bool, error) {
			return existing, false, nil
		},
	}
	msgs := &MockMessageRepository{}
	model := &MockModelClient{
		GenerateTextFunc: func(ctx context.Context, req genai.GenerateRequest) (string, error) {
			return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
				platformerrors.ErrorTypeCapacityExhausted, "model capacity exhausted", nil, "test-capacity")
		},
	}
	service := newTestService(convs, msgs, model)

	id := "conv_busy"
	result, err := service.HandleChat(context.Background(), "user-1", chat.Params{Message: "hello", ConversationID: &id})
	if err != nil {
		t.Fatalf("Capacity exhaustion must not fail the exchange: %v", err)
	}
	if !result.Degraded {
		t.Error("Expected a degraded result")
	}
	if result.Reply == "" {
		t.Error("Expected the canned fallback reply")
	}
	if len(msgs.appended) != 2 {
		t.Fatalf("Expected fallback stored as an ordinary assistant message, got %d messages", len(msgs.appended))
	}
	if msgs.appended[1].Content != result.Reply {
		t.Error("Stored assistant message must match the returned reply")
	}
}

func TestHandleChat_ModelFailure(t *testing.T) {
	existing := &conversation.Conversation{ID: 9, PublicID: "conv_err", ActorID: "user-1"}
	convs := &MockConversationRepository{
		GetOrCreateFunc: func(ctx context.Context, publicID string, fresh *conversation.Conversation) (*conversation.Conversation, bool, error) {
			return existing, false, nil
		},
	}
	msgs := &MockMessageRepository{}
	model := &MockModelClient{
		GenerateTextFunc: func(ctx context.Context, req genai.GenerateRequest) (string, error) {
			return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
				platformerrors.ErrorTypeExternal, "model API error", nil, "test-external")
		},
	}
	service := newTestService(convs, msgs, model)

	id := "conv_err"
	_, err := service.HandleChat(context.Background(), "user-1", chat.Params{Message: "hello", ConversationID: &id})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal) {
		t.Fatalf("Expected external error, got %v", err)
	}
	// The user turn was already persisted; no assistant turn may follow.
	if len(msgs.appended) != 1 {
		t.Fatalf("Expected only the user message persisted, got %d", len(msgs.appended))
	}
}

func TestHandleChat_ForeignConversation(t *testing.T) {
	other := &conversation.Conversation{ID: 4, PublicID: "conv_other", ActorID: "someone-else"}
	convs := &MockConversationRepository{
		GetOrCreateFunc: func(ctx context.Context, publicID string, fresh *conversation.Conversation) (*conversation.Conversation, bool, error) {
			return other, false, nil
		},
	}
	service := newTestService(convs, &MockMessageRepository{}, &MockModelClient{})

	id := "conv_other"
	_, err := service.HandleChat(context.Background(), "user-1", chat.Params{Message: "hi", ConversationID: &id})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Fatalf("Expected not-found for a foreign conversation, got %v", err)
	}
}

func TestListMessages_ForeignConversation(t *testing.T) {
	convs := &MockConversationRepository{
		FindByPublicIDFunc: func(ctx context.Context, publicID string) (*conversation.Conversation, error) {
			return &conversation.Conversation{ID: 2, PublicID: publicID, ActorID: "someone-else"}, nil
		},
	}
	service := newTestService(convs, &MockMessageRepository{}, &MockModelClient{})

	_, err := service.ListMessages(context.Background(), "user-1", "conv_x")
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Fatalf("Expected not-found, got %v", err)
	}
}
