package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/spec-kit/commerce-api/internal/events"
	"github.com/spec-kit/commerce-api/internal/repository"
	"github.com/spec-kit/commerce-api/internal/response"
	apperrors "github.com/spec-kit/commerce-api/pkg/util"
)

const uniqueViolationCode = "23505"

// CrudConfig parameterizes the generic dispatcher for one entity type.
type CrudConfig[D, E any] struct {
	// Entity is the lowercase entity name used in messages and events.
	Entity string
	Repo   repository.Crud[E]

	ToEntity func(D) *E
	ToDTO    func(*E) D
	// Key extracts the identifying key from an entity.
	Key func(*E) string
	// Validate rejects incomplete input before any store call. Optional.
	Validate func(D) error
	// Prepare adjusts the entity before a write, e.g. hashing a secret.
	// Optional.
	Prepare func(context.Context, *E) error

	Events events.Dispatcher
	Logger *zap.Logger
}

// CrudService orchestrates validation, store calls and envelope construction
// for one entity type. It is the only layer that turns store outcomes into
// success/failure envelopes; callers above it just pass the envelope along.
// Business failures (validation, not-found, duplicates) come back inside the
// envelope; only store faults are returned as errors for the boundary
// handler.
type CrudService[D, E any] struct {
	cfg CrudConfig[D, E]
}

// NewCrudService instantiates the dispatcher for an entity.
func NewCrudService[D, E any](cfg CrudConfig[D, E]) *CrudService[D, E] {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &CrudService[D, E]{cfg: cfg}
}

// Insert stores a new record. A duplicate key is a business failure, not a
// fault.
func (s *CrudService[D, E]) Insert(ctx context.Context, d D) (response.Response[bool], error) {
	if err := s.validate(d); err != nil {
		return response.Fail[bool](err.Error()), nil
	}

	entity := s.cfg.ToEntity(d)
	if err := s.prepare(ctx, entity); err != nil {
		return response.Fail[bool](""), err
	}

	if err := s.cfg.Repo.Insert(ctx, entity); err != nil {
		if isUniqueViolation(err) {
			return response.Fail[bool](s.cfg.Entity + " already exists"), nil
		}
		return response.Fail[bool](""), apperrors.NewStoreUnavailable(err)
	}

	s.publish(ctx, events.EventEntityInserted, s.cfg.Key(entity))
	return response.Ok(true, s.cfg.Entity+" inserted"), nil
}

// Update overwrites an existing record. Zero rows affected means not found.
func (s *CrudService[D, E]) Update(ctx context.Context, d D) (response.Response[bool], error) {
	if err := s.validate(d); err != nil {
		return response.Fail[bool](err.Error()), nil
	}

	entity := s.cfg.ToEntity(d)
	key := s.cfg.Key(entity)
	if key == "" {
		return response.Fail[bool](s.cfg.Entity + " id is required"), nil
	}

	if err := s.prepare(ctx, entity); err != nil {
		return response.Fail[bool](""), err
	}

	if err := s.cfg.Repo.Update(ctx, entity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return response.Fail[bool](s.cfg.Entity + " not found"), nil
		}
		return response.Fail[bool](""), apperrors.NewStoreUnavailable(err)
	}

	s.publish(ctx, events.EventEntityUpdated, key)
	return response.Ok(true, s.cfg.Entity+" updated"), nil
}

// Delete removes a record by key. Zero rows affected means not found.
func (s *CrudService[D, E]) Delete(ctx context.Context, id string) (response.Response[bool], error) {
	if id == "" {
		return response.Fail[bool](s.cfg.Entity + " id is required"), nil
	}

	if err := s.cfg.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return response.Fail[bool](s.cfg.Entity + " not found"), nil
		}
		return response.Fail[bool](""), apperrors.NewStoreUnavailable(err)
	}

	s.publish(ctx, events.EventEntityDeleted, id)
	return response.Ok(true, s.cfg.Entity+" deleted"), nil
}

// Get fetches one record by key. A missing row is a business failure with an
// empty payload.
func (s *CrudService[D, E]) Get(ctx context.Context, id string) (response.Response[D], error) {
	if id == "" {
		return response.Fail[D](s.cfg.Entity + " id is required"), nil
	}

	entity, err := s.cfg.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return response.Fail[D](s.cfg.Entity + " not found"), nil
		}
		return response.Fail[D](""), apperrors.NewStoreUnavailable(err)
	}

	return response.Ok(s.cfg.ToDTO(entity), "query successful"), nil
}

// GetAll fetches every record. An empty store is a successful empty result,
// never a failure.
func (s *CrudService[D, E]) GetAll(ctx context.Context) (response.Response[[]D], error) {
	entities, err := s.cfg.Repo.GetAll(ctx)
	if err != nil {
		return response.Fail[[]D](""), apperrors.NewStoreUnavailable(err)
	}

	dtos := make([]D, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, s.cfg.ToDTO(&entities[i]))
	}
	return response.Ok(dtos, "query successful"), nil
}

func (s *CrudService[D, E]) validate(d D) error {
	if s.cfg.Validate == nil {
		return nil
	}
	return s.cfg.Validate(d)
}

func (s *CrudService[D, E]) prepare(ctx context.Context, entity *E) error {
	if s.cfg.Prepare == nil {
		return nil
	}
	if err := s.cfg.Prepare(ctx, entity); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

func (s *CrudService[D, E]) publish(ctx context.Context, eventType events.EventType, key string) {
	if s.cfg.Events == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Entity:    s.cfg.Entity,
		EntityKey: key,
		Timestamp: time.Now(),
	}
	if err := s.cfg.Events.Publish(ctx, event); err != nil {
		s.cfg.Logger.Warn("event publish failed", zap.Error(err), zap.String("entity", s.cfg.Entity))
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
