package store

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        string    `json:"id"` // UUID
	FirstName string    `json:"first_name"`
	Username  string    `json:"username,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	ChatID    string    `json:"chat_id"` // Conversational context identifier, distinct from ID
	CreatedAt time.Time `json:"created_at"`
}

type ChatMessage struct {
	ID        string    `json:"id"` // UUID
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

type FileMetadata struct {
	ID          string    `json:"id"` // UUID
	UserID      string    `json:"user_id"`
	Filename    string    `json:"filename"` // Original name, kept for display
	Description string    `json:"description"`
	FilePath    string    `json:"file_path"`
	FileType    string    `json:"file_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type SearchResult struct {
	ID        string    `json:"id"` // UUID
	UserID    string    `json:"user_id"`
	Query     string    `json:"query"`
	Summary   string    `json:"summary"`
	Timestamp time.Time `json:"timestamp"`
}

func NewUser(firstName, username, phone string) *User {
	return &User{
		ID:        uuid.NewString(),
		FirstName: firstName,
		Username:  username,
		Phone:     phone,
		ChatID:    uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

func NewChatMessage(userID, message, response string) *ChatMessage {
	return &ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Message:   message,
		Response:  response,
		Timestamp: time.Now().UTC(),
	}
}

func NewFileMetadata(userID, filename, description, filePath, fileType string) *FileMetadata {
	return &FileMetadata{
		ID:          uuid.NewString(),
		UserID:      userID,
		Filename:    filename,
		Description: description,
		FilePath:    filePath,
		FileType:    fileType,
		UploadedAt:  time.Now().UTC(),
	}
}

func NewSearchResult(userID, query, summary string) *SearchResult {
	return &SearchResult{
		ID:        uuid.NewString(),
		UserID:    userID,
		Query:     query,
		Summary:   summary,
		Timestamp: time.Now().UTC(),
	}
}
