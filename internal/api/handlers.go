package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"aichatbot/internal/core"
)

// Uploads are bounded well above the largest accepted document.
const maxUploadBytes = 32 << 20

type APIHandler struct {
	userService   *core.UserService
	chatService   *core.ChatService
	fileService   *core.FileService
	searchService *core.SearchService
}

func NewAPIHandler(us *core.UserService, cs *core.ChatService, fs *core.FileService, ss *core.SearchService) *APIHandler {
	return &APIHandler{
		userService:   us,
		chatService:   cs,
		fileService:   fs,
		searchService: ss,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// respondServiceError maps the error taxonomy to HTTP statuses: missing user
// to 404, bad upload type to 400, everything else (upstream and persistence
// failures alike) to 500.
func respondServiceError(w http.ResponseWriter, err error, detail string) {
	switch {
	case errors.Is(err, core.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, core.ErrUnsupportedFileType):
		writeError(w, http.StatusBadRequest, core.ErrUnsupportedFileType.Error())
	default:
		logrus.Errorf("%s: %v", detail, err)
		writeError(w, http.StatusInternalServerError, detail)
	}
}

type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	Username  string `json:"username,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

func (h *APIHandler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.FirstName == "" {
		writeError(w, http.StatusBadRequest, "first_name is required")
		return
	}

	user, err := h.userService.Register(r.Context(), req.FirstName, req.Username, req.Phone)
	if err != nil {
		respondServiceError(w, err, "Error creating user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *APIHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err, "Error retrieving user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

func (h *APIHandler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.UserID == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "user_id and message are required")
		return
	}

	msg, err := h.chatService.SendMessage(r.Context(), req.UserID, req.Message)
	if err != nil {
		respondServiceError(w, err, "Error processing chat")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *APIHandler) ChatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	messages, err := h.chatService.History(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err, "Error retrieving chat history")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *APIHandler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	userID := r.FormValue("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logrus.Errorf("Error reading uploaded file %s: %v", header.Filename, err)
		writeError(w, http.StatusInternalServerError, "Error reading uploaded file")
		return
	}

	fileType := header.Header.Get("Content-Type")

	meta, err := h.fileService.UploadAndAnalyze(r.Context(), userID, header.Filename, fileType, data)
	if err != nil {
		respondServiceError(w, err, "Error processing file upload")
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

func (h *APIHandler) ListFilesHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	files, err := h.fileService.Files(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err, "Error retrieving files")
		return
	}
	writeJSON(w, http.StatusOK, files)
}

type SearchRequest struct {
	UserID string `json:"user_id"`
	Query  string `json:"query"`
}

func (h *APIHandler) WebSearchHandler(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.UserID == "" || req.Query == "" {
		writeError(w, http.StatusBadRequest, "user_id and query are required")
		return
	}

	result, err := h.searchService.Search(r.Context(), req.UserID, req.Query)
	if err != nil {
		respondServiceError(w, err, "Error processing search")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *APIHandler) SearchHistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	results, err := h.searchService.History(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err, "Error retrieving search history")
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *APIHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "AI Chatbot API is running!"})
}

func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
