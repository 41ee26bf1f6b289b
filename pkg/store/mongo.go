package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matzehuels/gridboard/pkg/core/board"
)

const (
	// DefaultMongoDatabase is used when MongoConfig.Database is empty.
	DefaultMongoDatabase = "gridboard"

	mongoCollection = "boards"
	disconnectWait  = 5 * time.Second
)

// MongoConfig holds connection settings for NewMongoStore.
type MongoConfig struct {
	URI      string
	Database string
}

// MongoStore keeps one document per board, keyed by board id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type mongoDoc struct {
	ID        string         `bson:"_id"`
	Name      string         `bson:"name"`
	Boxes     int            `bson:"boxes"`
	Snapshot  board.Snapshot `bson:"snapshot"`
	UpdatedAt time.Time      `bson:"updated_at"`
}

// NewMongoStore connects and pings the primary.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	ping := func() error { return client.Ping(ctx, readpref.Primary()) }
	if err := retry(ctx, connectAttempts, connectDelay, ping); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	db := cfg.Database
	if db == "" {
		db = DefaultMongoDatabase
	}
	return &MongoStore{client: client, coll: client.Database(db).Collection(mongoCollection)}, nil
}

func (s *MongoStore) Load(ctx context.Context, id string) (board.Snapshot, error) {
	var doc mongoDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return board.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return board.Snapshot{}, fmt.Errorf("find board %q: %w", id, err)
	}
	return doc.Snapshot, nil
}

func (s *MongoStore) Save(ctx context.Context, snap board.Snapshot) error {
	if err := checkID(snap.Board.ID); err != nil {
		return err
	}
	doc := mongoDoc{
		ID:        snap.Board.ID,
		Name:      snap.Board.Name,
		Boxes:     len(snap.Boxes),
		Snapshot:  snap,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save board %q: %w", doc.ID, err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete board %q: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]Entry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetProjection(bson.M{"_id": 1, "name": 1, "boxes": 1, "updated_at": 1})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	var docs []mongoDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	entries := make([]Entry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, Entry{ID: d.ID, Name: d.Name, Boxes: d.Boxes, UpdatedAt: d.UpdatedAt})
	}
	return entries, nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectWait)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
