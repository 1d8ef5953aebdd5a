package store

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Timestamps are stored as text so documents stay sortable and readable
// regardless of how they were written.
const timeLayout = time.RFC3339Nano

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// decodeTime accepts either the textual form (a document read back from the
// store) or an already-typed value (a freshly built document that never left
// memory, or a BSON datetime written by another client).
func decodeTime(v interface{}) (time.Time, error) {
	switch tv := v.(type) {
	case string:
		t, err := time.Parse(timeLayout, tv)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", tv, err)
		}
		return t, nil
	case time.Time:
		return tv.UTC(), nil
	case primitive.DateTime:
		return tv.Time().UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("unexpected timestamp type %T", v)
	}
}

// encodeDoc renders every time value in a document to its textual form,
// descending into nested documents field by field.
func encodeDoc(doc bson.M) bson.M {
	for k, v := range doc {
		switch tv := v.(type) {
		case time.Time:
			doc[k] = encodeTime(tv)
		case bson.M:
			doc[k] = encodeDoc(tv)
		}
	}
	return doc
}

func docString(doc bson.M, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func EncodeUser(u *User) bson.M {
	return encodeDoc(bson.M{
		"id":         u.ID,
		"first_name": u.FirstName,
		"username":   u.Username,
		"phone":      u.Phone,
		"chat_id":    u.ChatID,
		"created_at": u.CreatedAt,
	})
}

func DecodeUser(doc bson.M) (*User, error) {
	createdAt, err := decodeTime(doc["created_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &User{
		ID:        docString(doc, "id"),
		FirstName: docString(doc, "first_name"),
		Username:  docString(doc, "username"),
		Phone:     docString(doc, "phone"),
		ChatID:    docString(doc, "chat_id"),
		CreatedAt: createdAt,
	}, nil
}

func EncodeChatMessage(m *ChatMessage) bson.M {
	return encodeDoc(bson.M{
		"id":        m.ID,
		"user_id":   m.UserID,
		"message":   m.Message,
		"response":  m.Response,
		"timestamp": m.Timestamp,
	})
}

func DecodeChatMessage(doc bson.M) (*ChatMessage, error) {
	timestamp, err := decodeTime(doc["timestamp"])
	if err != nil {
		return nil, fmt.Errorf("failed to decode chat message: %w", err)
	}
	return &ChatMessage{
		ID:        docString(doc, "id"),
		UserID:    docString(doc, "user_id"),
		Message:   docString(doc, "message"),
		Response:  docString(doc, "response"),
		Timestamp: timestamp,
	}, nil
}

func EncodeFileMetadata(f *FileMetadata) bson.M {
	return encodeDoc(bson.M{
		"id":          f.ID,
		"user_id":     f.UserID,
		"filename":    f.Filename,
		"description": f.Description,
		"file_path":   f.FilePath,
		"file_type":   f.FileType,
		"uploaded_at": f.UploadedAt,
	})
}

func DecodeFileMetadata(doc bson.M) (*FileMetadata, error) {
	uploadedAt, err := decodeTime(doc["uploaded_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to decode file metadata: %w", err)
	}
	return &FileMetadata{
		ID:          docString(doc, "id"),
		UserID:      docString(doc, "user_id"),
		Filename:    docString(doc, "filename"),
		Description: docString(doc, "description"),
		FilePath:    docString(doc, "file_path"),
		FileType:    docString(doc, "file_type"),
		UploadedAt:  uploadedAt,
	}, nil
}

func EncodeSearchResult(r *SearchResult) bson.M {
	return encodeDoc(bson.M{
		"id":        r.ID,
		"user_id":   r.UserID,
		"query":     r.Query,
		"summary":   r.Summary,
		"timestamp": r.Timestamp,
	})
}

func DecodeSearchResult(doc bson.M) (*SearchResult, error) {
	timestamp, err := decodeTime(doc["timestamp"])
	if err != nil {
		return nil, fmt.Errorf("failed to decode search result: %w", err)
	}
	return &SearchResult{
		ID:        docString(doc, "id"),
		UserID:    docString(doc, "user_id"),
		Query:     docString(doc, "query"),
		Summary:   docString(doc, "summary"),
		Timestamp: timestamp,
	}, nil
}
