package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	db := newFakeStore()
	svc := NewUserService(db)

	user, err := svc.Register(context.Background(), "Ana", "ana_h", "")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.ChatID)
	assert.NotEqual(t, user.ID, user.ChatID)
	assert.False(t, user.CreatedAt.IsZero())

	got, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestGetUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeStore())

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRegisterPersistFailure(t *testing.T) {
	db := newFakeStore()
	db.insertErr = errors.New("write concern failure")
	svc := NewUserService(db)

	_, err := svc.Register(context.Background(), "Ana", "", "")
	var persistence *PersistenceError
	require.True(t, errors.As(err, &persistence))
}
