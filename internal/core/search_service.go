package core

import (
	"context"
	"fmt"

	"aichatbot/internal/store"
)

const searchHistoryLimit = 50

// There is no real web-search API behind this feature; the conversational
// backend is instructed to answer as if it had searched the web.
const searchPromptTemplate = `Please provide a comprehensive and informative response about: "%s"

Include:
1. Key information and facts
2. Current context and relevance
3. Multiple perspectives if applicable
4. Helpful resources or suggestions

Format your response as if you've searched the web and are providing a summary of the most relevant and useful information.`

type SearchService struct {
	dbStore Store
	llm     Generator
}

func NewSearchService(db Store, llm Generator) *SearchService {
	return &SearchService{dbStore: db, llm: llm}
}

// Search asks the conversational backend for an AI-generated summary of the
// query and persists the result. Nothing is persisted on failure.
func (s *SearchService) Search(ctx context.Context, userID, query string) (*store.SearchResult, error) {
	user, err := s.dbStore.FindUserByID(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "verify user", Err: err}
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	prompt := fmt.Sprintf(searchPromptTemplate, query)
	summary, err := s.llm.Generate(ctx, ContextKey(userID, FeatureSearch), BackendConversational, Prompt{Text: prompt})
	if err != nil {
		return nil, &UpstreamError{Feature: FeatureSearch, Err: err}
	}

	result := store.NewSearchResult(userID, query, summary)
	if err := s.dbStore.InsertSearchResult(ctx, result); err != nil {
		return nil, &PersistenceError{Op: "save search result", Err: err}
	}
	return result, nil
}

// History returns a user's search results, newest first.
func (s *SearchService) History(ctx context.Context, userID string) ([]store.SearchResult, error) {
	results, err := s.dbStore.SearchHistory(ctx, userID, searchHistoryLimit)
	if err != nil {
		return nil, &PersistenceError{Op: "get search history", Err: err}
	}
	return results, nil
}
