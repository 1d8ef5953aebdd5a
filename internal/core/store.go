package core

import (
	"context"

	"aichatbot/internal/store"
)

// Store is the persistence surface the orchestrators need. *store.MongoStore
// satisfies it; tests substitute an in-memory double.
type Store interface {
	InsertUser(ctx context.Context, u *store.User) error
	FindUserByID(ctx context.Context, id string) (*store.User, error)
	InsertChatMessage(ctx context.Context, m *store.ChatMessage) error
	ChatHistory(ctx context.Context, userID string, limit int64) ([]store.ChatMessage, error)
	InsertFileMetadata(ctx context.Context, f *store.FileMetadata) error
	FilesByUser(ctx context.Context, userID string, limit int64) ([]store.FileMetadata, error)
	InsertSearchResult(ctx context.Context, r *store.SearchResult) error
	SearchHistory(ctx context.Context, userID string, limit int64) ([]store.SearchResult, error)
}

// ByteSink writes uploaded content to a named location and reports the
// resulting path.
type ByteSink interface {
	Save(name string, data []byte) (string, error)
}
