package core

import (
	"context"
	"errors"

	"aichatbot/internal/store"
)

// fakeStore keeps records in insertion order. Timestamps are assigned at
// creation, so insertion order is also timestamp order: histories read
// forward for ascending and backward for descending.
type fakeStore struct {
	users     map[string]*store.User
	chats     []store.ChatMessage
	files     []store.FileMetadata
	searches  []store.SearchResult
	insertErr error
	findErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[string]*store.User)}
}

func (f *fakeStore) InsertUser(_ context.Context, u *store.User) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeStore) FindUserByID(_ context.Context, id string) (*store.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.users[id], nil
}

func (f *fakeStore) InsertChatMessage(_ context.Context, m *store.ChatMessage) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.chats = append(f.chats, *m)
	return nil
}

func (f *fakeStore) ChatHistory(_ context.Context, userID string, limit int64) ([]store.ChatMessage, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	messages := []store.ChatMessage{}
	for _, m := range f.chats {
		if m.UserID == userID && int64(len(messages)) < limit {
			messages = append(messages, m)
		}
	}
	return messages, nil
}

func (f *fakeStore) InsertFileMetadata(_ context.Context, m *store.FileMetadata) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.files = append(f.files, *m)
	return nil
}

func (f *fakeStore) FilesByUser(_ context.Context, userID string, limit int64) ([]store.FileMetadata, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	files := []store.FileMetadata{}
	for i := len(f.files) - 1; i >= 0 && int64(len(files)) < limit; i-- {
		if f.files[i].UserID == userID {
			files = append(files, f.files[i])
		}
	}
	return files, nil
}

func (f *fakeStore) InsertSearchResult(_ context.Context, r *store.SearchResult) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.searches = append(f.searches, *r)
	return nil
}

func (f *fakeStore) SearchHistory(_ context.Context, userID string, limit int64) ([]store.SearchResult, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	results := []store.SearchResult{}
	for i := len(f.searches) - 1; i >= 0 && int64(len(results)) < limit; i-- {
		if f.searches[i].UserID == userID {
			results = append(results, f.searches[i])
		}
	}
	return results, nil
}

func (f *fakeStore) addUser() *store.User {
	u := store.NewUser("Ana", "", "")
	f.users[u.ID] = u
	return u
}

// fakeGenerator records the last generation request and replies with a fixed
// answer or error.
type fakeGenerator struct {
	reply string
	err   error

	calls          int
	lastContextKey string
	lastBackend    Backend
	lastPrompt     Prompt
}

func (g *fakeGenerator) Generate(_ context.Context, contextKey string, backend Backend, prompt Prompt) (string, error) {
	g.calls++
	g.lastContextKey = contextKey
	g.lastBackend = backend
	g.lastPrompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

// fakeSink collects saved files in memory.
type fakeSink struct {
	saved map[string][]byte
	err   error
}

func newFakeSink() *fakeSink {
	return &fakeSink{saved: make(map[string][]byte)}
}

func (s *fakeSink) Save(name string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved[name] = data
	return "uploads/" + name, nil
}

var errBackendDown = errors.New("backend connection refused")
