package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

const (
	defaultChatModelName     = "gemini-1.5-flash-latest"
	defaultAnalysisModelName = "gemini-2.0-flash"

	chatSystemInstruction = "You are a helpful AI assistant. Provide clear, informative, and engaging responses."

	analysisSystemInstruction = "You are an expert file analyzer. Describe the content of uploaded files in detail."
)

// Backend selects which of the two configured models a generation request
// goes to.
type Backend int

const (
	// BackendConversational is the text-only model used for chat and search.
	BackendConversational Backend = iota
	// BackendAnalysis is the multimodal model that accepts a file attachment.
	BackendAnalysis
)

func (b Backend) String() string {
	if b == BackendAnalysis {
		return "analysis"
	}
	return "conversational"
}

// FileReference points the analysis backend at stored bytes with their
// declared content type.
type FileReference struct {
	Path     string
	MIMEType string
}

// Prompt is the payload for one generation request. File is only honored by
// the analysis backend.
type Prompt struct {
	Text string
	File *FileReference
}

// Generator is the model gateway surface the orchestrators call.
type Generator interface {
	Generate(ctx context.Context, contextKey string, backend Backend, prompt Prompt) (string, error)
}

// LLMService routes generation requests to the conversational or analysis
// model. The provider API itself is stateless, so the service keeps one chat
// session per context key as its correlation layer; orchestrators never see
// that state — only the context-key contract is observable.
type LLMService struct {
	client            *genai.Client
	chatModelName     string
	analysisModelName string

	mu       sync.Mutex
	sessions map[string]*genai.ChatSession
}

func NewLLMService(ctx context.Context, apiKey, chatModel, analysisModel string) (*LLMService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	if chatModel == "" {
		chatModel = defaultChatModelName
	}
	if analysisModel == "" {
		analysisModel = defaultAnalysisModelName
	}

	return &LLMService{
		client:            client,
		chatModelName:     chatModel,
		analysisModelName: analysisModel,
		sessions:          make(map[string]*genai.ChatSession),
	}, nil
}

func (s *LLMService) Close() {
	if s.client != nil {
		if err := s.client.Close(); err != nil {
			logrus.Errorf("Error closing GenAI client: %v", err)
		}
	}
}

// Generate sends one prompt to the selected backend under the given context
// key and returns the generated text. Failures come back as
// *ModelUnavailableError; retrying is the caller's call.
func (s *LLMService) Generate(ctx context.Context, contextKey string, backend Backend, prompt Prompt) (string, error) {
	parts := []genai.Part{genai.Text(prompt.Text)}
	if prompt.File != nil {
		data, err := os.ReadFile(prompt.File.Path)
		if err != nil {
			return "", &ModelUnavailableError{Backend: backend, Err: fmt.Errorf("failed to read attached file: %w", err)}
		}
		parts = append(parts, genai.Blob{MIMEType: prompt.File.MIMEType, Data: data})
	}

	session := s.session(contextKey, backend)
	resp, err := session.SendMessage(ctx, parts...)
	if err != nil {
		return "", &ModelUnavailableError{Backend: backend, Err: err}
	}

	text := collectText(resp)
	if text == "" {
		return "", &ModelUnavailableError{Backend: backend, Err: errors.New("model returned an empty response")}
	}
	return text, nil
}

// session returns the chat session for a context key, creating it on first
// use. Context keys are disjoint per feature, so a key never switches
// backends after creation.
func (s *LLMService) session(contextKey string, backend Backend) *genai.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[contextKey]; ok {
		return session
	}

	modelName := s.chatModelName
	instruction := chatSystemInstruction
	if backend == BackendAnalysis {
		modelName = s.analysisModelName
		instruction = analysisSystemInstruction
	}

	model := s.client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(instruction)},
	}

	session := model.StartChat()
	s.sessions[contextKey] = session
	return session
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		} else {
			logrus.Debugf("Model response part was not text: %T", part)
		}
	}
	return text.String()
}
