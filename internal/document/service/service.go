package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gogotex/docstore/internal/document"
	"github.com/gogotex/docstore/internal/document/repository"
	"github.com/gogotex/docstore/pkg/logger"
	"github.com/gogotex/docstore/pkg/metrics"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound = errors.New("not found")
)

// Service defines the document operations used by the handler layer.
type Service interface {
	Save(ctx context.Context, d *document.Document) (*document.Document, error)
	Get(ctx context.Context, id string) (*document.Document, error)
	Search(ctx context.Context, req *document.SearchRequest) ([]*document.Document, error)
}

// backend is satisfied by the Mongo and Redis repositories directly and by the
// in-memory repository through memoryBackend.
type backend interface {
	Save(ctx context.Context, d *document.Document) (*document.Document, error)
	FindByID(ctx context.Context, id string) (*document.Document, bool, error)
	Search(ctx context.Context, req *document.SearchRequest) ([]*document.Document, error)
}

type memoryBackend struct {
	repo *repository.MemoryRepo
}

func (m memoryBackend) Save(_ context.Context, d *document.Document) (*document.Document, error) {
	return m.repo.Save(d), nil
}

func (m memoryBackend) FindByID(_ context.Context, id string) (*document.Document, bool, error) {
	d, ok := m.repo.FindByID(id)
	return d, ok, nil
}

func (m memoryBackend) Search(_ context.Context, req *document.SearchRequest) ([]*document.Document, error) {
	return m.repo.Search(req), nil
}

// NewMemoryService returns a Service backed by the given in-memory repository.
func NewMemoryService(repo *repository.MemoryRepo) Service {
	return newService("memory", memoryBackend{repo: repo})
}

// NewMongoService returns a Service backed by a MongoDB collection.
// Caller is responsible for creating the collection (and client) and passing it in.
func NewMongoService(col *mongo.Collection, opts ...repository.Option) Service {
	return newService("mongo", repository.NewMongoRepo(col, opts...))
}

// NewRedisService returns a Service storing documents in Redis under prefix.
func NewRedisService(client *redis.Client, prefix string, opts ...repository.Option) Service {
	return newService("redis", repository.NewRedisRepo(client, prefix, opts...))
}

type service struct {
	name    string
	backend backend
	log     *slog.Logger
}

func newService(name string, b backend) *service {
	return &service{name: name, backend: b, log: logger.Logger("document").With("backend", name)}
}

func (s *service) Save(ctx context.Context, d *document.Document) (*document.Document, error) {
	saved, err := s.backend.Save(ctx, d)
	if err != nil {
		metrics.BackendErrors.WithLabelValues(s.name, "save").Inc()
		s.log.Error("save failed", "id", d.ID, "error", err)
		return nil, err
	}
	metrics.DocumentsSaved.WithLabelValues(s.name).Inc()
	s.log.Debug("saved", "id", saved.ID)
	return saved, nil
}

func (s *service) Get(ctx context.Context, id string) (*document.Document, error) {
	d, ok, err := s.backend.FindByID(ctx, id)
	if err != nil {
		metrics.BackendErrors.WithLabelValues(s.name, "get").Inc()
		s.log.Error("lookup failed", "id", id, "error", err)
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

func (s *service) Search(ctx context.Context, req *document.SearchRequest) ([]*document.Document, error) {
	metrics.Searches.WithLabelValues(s.name).Inc()
	list, err := s.backend.Search(ctx, req)
	if err != nil {
		metrics.BackendErrors.WithLabelValues(s.name, "search").Inc()
		s.log.Error("search failed", "error", err)
		return nil, err
	}
	metrics.SearchResults.WithLabelValues(s.name).Observe(float64(len(list)))
	s.log.Debug("search", "matched", len(list))
	return list, nil
}
