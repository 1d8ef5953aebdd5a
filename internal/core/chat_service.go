package core

import (
	"context"

	"aichatbot/internal/store"
)

// Chat history reads are capped to the most recent conversation window.
const chatHistoryLimit = 100

type ChatService struct {
	dbStore Store
	llm     Generator
}

func NewChatService(db Store, llm Generator) *ChatService {
	return &ChatService{dbStore: db, llm: llm}
}

// SendMessage sends one user message to the conversational backend and
// persists the request/response pair. A turn with no answer is never
// persisted.
func (s *ChatService) SendMessage(ctx context.Context, userID, message string) (*store.ChatMessage, error) {
	user, err := s.dbStore.FindUserByID(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "verify user", Err: err}
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	response, err := s.llm.Generate(ctx, ContextKey(userID, FeatureChat), BackendConversational, Prompt{Text: message})
	if err != nil {
		return nil, &UpstreamError{Feature: FeatureChat, Err: err}
	}

	msg := store.NewChatMessage(userID, message, response)
	if err := s.dbStore.InsertChatMessage(ctx, msg); err != nil {
		return nil, &PersistenceError{Op: "save chat message", Err: err}
	}
	return msg, nil
}

// History returns a user's chat messages, oldest first.
func (s *ChatService) History(ctx context.Context, userID string) ([]store.ChatMessage, error) {
	messages, err := s.dbStore.ChatHistory(ctx, userID, chatHistoryLimit)
	if err != nil {
		return nil, &PersistenceError{Op: "get chat history", Err: err}
	}
	return messages, nil
}
