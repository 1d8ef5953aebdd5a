package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	CollectionUsers         = "users"
	CollectionChatHistory   = "chat_history"
	CollectionFileMetadata  = "file_metadata"
	CollectionSearchResults = "search_results"
)

type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(50).
		SetServerSelectionTimeout(5 * time.Second).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) InsertUser(ctx context.Context, u *User) error {
	_, err := s.db.Collection(CollectionUsers).InsertOne(ctx, EncodeUser(u))
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// FindUserByID returns (nil, nil) when no user has the given ID.
func (s *MongoStore) FindUserByID(ctx context.Context, id string) (*User, error) {
	var doc bson.M
	err := s.db.Collection(CollectionUsers).FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return DecodeUser(doc)
}

func (s *MongoStore) InsertChatMessage(ctx context.Context, m *ChatMessage) error {
	_, err := s.db.Collection(CollectionChatHistory).InsertOne(ctx, EncodeChatMessage(m))
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

func (s *MongoStore) ChatHistory(ctx context.Context, userID string, limit int64) ([]ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}}).
		SetLimit(limit)
	cur, err := s.db.Collection(CollectionChatHistory).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat history: %w", err)
	}
	defer cur.Close(ctx)

	messages := []ChatMessage{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode chat history document: %w", err)
		}
		msg, err := DecodeChatMessage(doc)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *msg)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chat history cursor: %w", err)
	}
	return messages, nil
}

func (s *MongoStore) InsertFileMetadata(ctx context.Context, f *FileMetadata) error {
	_, err := s.db.Collection(CollectionFileMetadata).InsertOne(ctx, EncodeFileMetadata(f))
	if err != nil {
		return fmt.Errorf("failed to insert file metadata: %w", err)
	}
	return nil
}

func (s *MongoStore) FilesByUser(ctx context.Context, userID string, limit int64) ([]FileMetadata, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "uploaded_at", Value: -1}}).
		SetLimit(limit)
	cur, err := s.db.Collection(CollectionFileMetadata).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query file metadata: %w", err)
	}
	defer cur.Close(ctx)

	files := []FileMetadata{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode file metadata document: %w", err)
		}
		f, err := DecodeFileMetadata(doc)
		if err != nil {
			return nil, err
		}
		files = append(files, *f)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file metadata cursor: %w", err)
	}
	return files, nil
}

func (s *MongoStore) InsertSearchResult(ctx context.Context, r *SearchResult) error {
	_, err := s.db.Collection(CollectionSearchResults).InsertOne(ctx, EncodeSearchResult(r))
	if err != nil {
		return fmt.Errorf("failed to insert search result: %w", err)
	}
	return nil
}

func (s *MongoStore) SearchHistory(ctx context.Context, userID string, limit int64) ([]SearchResult, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cur, err := s.db.Collection(CollectionSearchResults).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query search history: %w", err)
	}
	defer cur.Close(ctx)

	results := []SearchResult{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode search result document: %w", err)
		}
		r, err := DecodeSearchResult(doc)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to read search history cursor: %w", err)
	}
	return results, nil
}
