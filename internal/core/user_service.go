package core

import (
	"context"

	"aichatbot/internal/store"
)

type UserService struct {
	dbStore Store
}

func NewUserService(db Store) *UserService {
	return &UserService{dbStore: db}
}

func (s *UserService) Register(ctx context.Context, firstName, username, phone string) (*store.User, error) {
	user := store.NewUser(firstName, username, phone)
	if err := s.dbStore.InsertUser(ctx, user); err != nil {
		return nil, &PersistenceError{Op: "create user", Err: err}
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*store.User, error) {
	user, err := s.dbStore.FindUserByID(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Op: "get user", Err: err}
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
