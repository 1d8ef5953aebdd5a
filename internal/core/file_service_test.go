package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadAndAnalyzeSuccess(t *testing.T) {
	db := newFakeStore()
	user := db.addUser()
	gen := &fakeGenerator{reply: "A photo of a tabby cat on a windowsill."}
	sink := newFakeSink()
	svc := NewFileService(db, gen, sink)

	meta, err := svc.UploadAndAnalyze(context.Background(), user.ID, "cat.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)

	assert.NotEmpty(t, meta.ID)
	assert.Equal(t, "cat.png", meta.Filename)
	assert.Equal(t, "image/png", meta.FileType)
	assert.Equal(t, gen.reply, meta.Description)
	assert.True(t, strings.HasSuffix(meta.FilePath, "_cat.png"),
		"stored path keeps the original name after the collision token")

	require.Len(t, db.files, 1)
	require.Len(t, sink.saved, 1)

	assert.Equal(t, ContextKey(user.ID, FeatureFileAnalysis), gen.lastContextKey)
	assert.Equal(t, BackendAnalysis, gen.lastBackend)
	require.NotNil(t, gen.lastPrompt.File)
	assert.Equal(t, meta.FilePath, gen.lastPrompt.File.Path)
	assert.Equal(t, "image/png", gen.lastPrompt.File.MIMEType)
	assert.Contains(t, gen.lastPrompt.Text, "image/png")
}

func TestUploadUnsupportedType(t *testing.T) {
	db := newFakeStore()
	user := db.addUser()
	gen := &fakeGenerator{reply: "unused"}
	sink := newFakeSink()
	svc := NewFileService(db, gen, sink)

	_, err := svc.UploadAndAnalyze(context.Background(), user.ID, "notes.txt", "text/plain", []byte("hello"))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
	assert.Empty(t, sink.saved, "no bytes written for a rejected type")
	assert.Empty(t, db.files)
	assert.Zero(t, gen.calls)
}

func TestUploadUserNotFound(t *testing.T) {
	db := newFakeStore()
	sink := newFakeSink()
	svc := NewFileService(db, &fakeGenerator{}, sink)

	_, err := svc.UploadAndAnalyze(context.Background(), "no-such-user", "cat.png", "image/png", []byte("png-bytes"))
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, sink.saved)
	assert.Empty(t, db.files)
}

func TestUploadAnalysisFallback(t *testing.T) {
	db := newFakeStore()
	user := db.addUser()
	gen := &fakeGenerator{err: &ModelUnavailableError{Backend: BackendAnalysis, Err: errBackendDown}}
	sink := newFakeSink()
	svc := NewFileService(db, gen, sink)

	meta, err := svc.UploadAndAnalyze(context.Background(), user.ID, "report.pdf", "application/pdf", []byte("pdf-bytes"))
	require.NoError(t, err, "an upload is never rejected because analysis failed")

	assert.Equal(t, "Uploaded application/pdf file: report.pdf", meta.Description)
	require.Len(t, db.files, 1)
	assert.Equal(t, meta.Description, db.files[0].Description)
	require.Len(t, sink.saved, 1)
}

func TestUploadSinkFailure(t *testing.T) {
	db := newFakeStore()
	user := db.addUser()
	gen := &fakeGenerator{reply: "unused"}
	sink := newFakeSink()
	sink.err = errors.New("disk full")
	svc := NewFileService(db, gen, sink)

	_, err := svc.UploadAndAnalyze(context.Background(), user.ID, "cat.jpg", "image/jpeg", []byte("jpg-bytes"))
	var persistence *PersistenceError
	require.True(t, errors.As(err, &persistence))
	assert.Empty(t, db.files)
	assert.Zero(t, gen.calls)
}

func TestFilesNewestFirst(t *testing.T) {
	db := newFakeStore()
	user := db.addUser()
	svc := NewFileService(db, &fakeGenerator{reply: "described"}, newFakeSink())

	for _, name := range []string{"a.png", "b.png", "c.png"} {
		_, err := svc.UploadAndAnalyze(context.Background(), user.ID, name, "image/png", []byte("x"))
		require.NoError(t, err)
	}

	files, err := svc.Files(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "c.png", files[0].Filename)
	for i := 1; i < len(files); i++ {
		assert.False(t, files[i].UploadedAt.After(files[i-1].UploadedAt),
			"file history must be non-increasing by upload time")
	}
}
