package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyPartitioning(t *testing.T) {
	const userID = "user-123"

	chatKey := ContextKey(userID, FeatureChat)
	fileKey := ContextKey(userID, FeatureFileAnalysis)
	searchKey := ContextKey(userID, FeatureSearch)

	assert.Equal(t, userID, chatKey, "chat memory spans the user's whole chat history")
	assert.NotEqual(t, chatKey, fileKey)
	assert.NotEqual(t, chatKey, searchKey)
	assert.NotEqual(t, fileKey, searchKey)
}

func TestContextKeyDistinctUsers(t *testing.T) {
	assert.NotEqual(t,
		ContextKey("user-a", FeatureSearch),
		ContextKey("user-b", FeatureSearch))
}
