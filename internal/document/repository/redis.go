package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gogotex/docstore/internal/document"
)

// RedisRepo stores each document as JSON under "<prefix>doc:<id>" and tracks
// ids in the set "<prefix>ids". Search loads every member and filters with
// document.Matches.
type RedisRepo struct {
	client *redis.Client
	prefix string
	settings
}

// NewRedisRepo creates a Redis-backed repository. Prefix may be empty.
func NewRedisRepo(client *redis.Client, prefix string, opts ...Option) *RedisRepo {
	if prefix == "" {
		prefix = "docstore:"
	}
	return &RedisRepo{client: client, prefix: prefix, settings: newSettings(opts)}
}

func (r *RedisRepo) key(id string) string {
	return r.prefix + "doc:" + id
}

func (r *RedisRepo) idsKey() string {
	return r.prefix + "ids"
}

func (r *RedisRepo) Save(ctx context.Context, doc *document.Document) (*document.Document, error) {
	if doc.ID == "" {
		doc.ID = r.ids.NewID()
	}
	existing, ok, err := r.FindByID(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	if ok {
		doc.Created = existing.Created
	} else if doc.Created.IsZero() {
		doc.Created = r.now()
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(doc.ID), b, 0)
		pipe.SAdd(ctx, r.idsKey(), doc.ID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}
	return doc, nil
}

func (r *RedisRepo) FindByID(ctx context.Context, id string) (*document.Document, bool, error) {
	b, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get document: %w", err)
	}
	var d document.Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, false, fmt.Errorf("decode document %s: %w", id, err)
	}
	return &d, true, nil
}

func (r *RedisRepo) Search(ctx context.Context, req *document.SearchRequest) ([]*document.Document, error) {
	ids, err := r.client.SMembers(ctx, r.idsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list ids: %w", err)
	}
	out := []*document.Document{}
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			// id listed but value gone
			continue
		}
		var d document.Document
		if err := json.Unmarshal([]byte(s), &d); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", ids[i], err)
		}
		if document.Matches(&d, req) {
			out = append(out, &d)
		}
	}
	return out, nil
}
