package services

import (
	"context"

	"github.com/ricgcw/chms-backend/pkg/logger"
)

// CollectionStore is what the generic service needs from a store. R is
// the pointer record type, e.g. *models.Event.
type CollectionStore[R any] interface {
	Name() string
	List(ctx context.Context) ([]R, error)
	Create(ctx context.Context, rec R) error
	Merge(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// CollectionService is the uniform CRUD service every collection shares.
// Business rules live below it, in the store specializations.
type CollectionService[R any] struct {
	store CollectionStore[R]
}

func NewCollectionService[R any](store CollectionStore[R]) *CollectionService[R] {
	return &CollectionService[R]{store: store}
}

func (s *CollectionService[R]) List(ctx context.Context) ([]R, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("list failed", "collection", s.store.Name(), "error", err)
		return nil, err
	}
	return records, nil
}

func (s *CollectionService[R]) Create(ctx context.Context, rec R) error {
	log := logger.FromContext(ctx)

	if err := s.store.Create(ctx, rec); err != nil {
		log.Error("create failed", "collection", s.store.Name(), "error", err)
		return err
	}

	log.Info("record created", "collection", s.store.Name())
	return nil
}

func (s *CollectionService[R]) Update(ctx context.Context, id string, fields map[string]any) error {
	log := logger.FromContext(ctx)

	// id and createdAt are server-owned; never merge them from a request body
	delete(fields, "id")
	delete(fields, "createdAt")

	if err := s.store.Merge(ctx, id, fields); err != nil {
		log.Error("update failed", "collection", s.store.Name(), "id", id, "error", err)
		return err
	}

	log.Info("record updated", "collection", s.store.Name(), "id", id)
	return nil
}

func (s *CollectionService[R]) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.store.Delete(ctx, id); err != nil {
		log.Error("delete failed", "collection", s.store.Name(), "id", id, "error", err)
		return err
	}

	log.Info("record deleted", "collection", s.store.Name(), "id", id)
	return nil
}
