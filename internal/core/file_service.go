package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"aichatbot/internal/store"
)

const fileHistoryLimit = 50

var allowedFileTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

type FileService struct {
	dbStore Store
	llm     Generator
	sink    ByteSink
}

func NewFileService(db Store, llm Generator, sink ByteSink) *FileService {
	return &FileService{dbStore: db, llm: llm, sink: sink}
}

// UploadAndAnalyze stores the uploaded bytes, asks the analysis backend for a
// description, and persists the metadata. Analysis failure never rejects the
// upload; the description falls back to a generic one and the failure is only
// logged.
func (s *FileService) UploadAndAnalyze(ctx context.Context, userID, filename, fileType string, data []byte) (*store.FileMetadata, error) {
	user, err := s.dbStore.FindUserByID(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "verify user", Err: err}
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !allowedFileTypes[fileType] {
		return nil, ErrUnsupportedFileType
	}

	// Fresh token prefix avoids collisions while keeping the original name
	// visible in the stored path.
	storedName := uuid.NewString() + "_" + filename
	filePath, err := s.sink.Save(storedName, data)
	if err != nil {
		return nil, &PersistenceError{Op: "save uploaded file", Err: err}
	}

	description, err := s.llm.Generate(ctx, ContextKey(userID, FeatureFileAnalysis), BackendAnalysis, Prompt{
		Text: fmt.Sprintf("Please analyze this %s file and describe its content in detail.", fileType),
		File: &FileReference{Path: filePath, MIMEType: fileType},
	})
	if err != nil {
		logrus.Warnf("File analysis failed for %s: %v", filename, err)
		description = fmt.Sprintf("Uploaded %s file: %s", fileType, filename)
	}

	meta := store.NewFileMetadata(userID, filename, description, filePath, fileType)
	if err := s.dbStore.InsertFileMetadata(ctx, meta); err != nil {
		return nil, &PersistenceError{Op: "save file metadata", Err: err}
	}
	return meta, nil
}

// Files returns a user's uploads, newest first.
func (s *FileService) Files(ctx context.Context, userID string) ([]store.FileMetadata, error) {
	files, err := s.dbStore.FilesByUser(ctx, userID, fileHistoryLimit)
	if err != nil {
		return nil, &PersistenceError{Op: "get user files", Err: err}
	}
	return files, nil
}
