package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/gridboard/pkg/core/board"
)

// DefaultRedisPrefix namespaces gridboard keys.
const DefaultRedisPrefix = "gridboard:"

// RedisStore keeps each board as a JSON string under <prefix>board:<id> and
// tracks ids in the set <prefix>boards.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// RedisConfig holds connection settings for NewRedisStore.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewRedisStore connects and pings the server.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ping := func() error { return client.Ping(ctx).Err() }
	if err := retry(ctx, connectAttempts, connectDelay, ping); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	return NewRedisStoreWithClient(client, cfg.Prefix), nil
}

// NewRedisStoreWithClient wraps an existing client. An empty prefix uses
// DefaultRedisPrefix.
func NewRedisStoreWithClient(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(id string) string { return s.prefix + "board:" + id }
func (s *RedisStore) indexKey() string     { return s.prefix + "boards" }

func (s *RedisStore) Load(ctx context.Context, id string) (board.Snapshot, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return board.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return board.Snapshot{}, fmt.Errorf("get board %q: %w", id, err)
	}
	r, err := decodeRecord(data)
	if err != nil {
		return board.Snapshot{}, err
	}
	return r.Snapshot, nil
}

func (s *RedisStore) Save(ctx context.Context, snap board.Snapshot) error {
	if err := checkID(snap.Board.ID); err != nil {
		return err
	}
	data, err := encodeRecord(newRecord(snap))
	if err != nil {
		return err
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.key(snap.Board.ID), data, 0)
		pipe.SAdd(ctx, s.indexKey(), snap.Board.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save board %q: %w", snap.Board.ID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, s.key(id))
		pipe.SRem(ctx, s.indexKey(), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete board %q: %w", id, err)
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]Entry, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	if len(ids) == 0 {
		return []Entry{}, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.key(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	entries := make([]Entry, 0, len(values))
	for _, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		r, err := decodeRecord([]byte(str))
		if err != nil {
			continue
		}
		entries = append(entries, r.entry())
	}
	slices.SortFunc(entries, func(a, b Entry) int { return strings.Compare(a.ID, b.ID) })
	return entries, nil
}

func (s *RedisStore) Close() error { return s.client.Close() }

var _ Store = (*RedisStore)(nil)
