package store

import (
	"context"
	"errors"
	"testing"

	"github.com/ricgcw/chms-backend/internal/errs"
	"github.com/ricgcw/chms-backend/internal/models"
)

func TestCollectionRoundtripWithEmulator(t *testing.T) {
	client := emulatorClient(t)
	ctx := context.Background()
	col := NewCollection[models.Target](client, "targets")

	target := &models.Target{
		Name:        "Roundtrip Goal",
		Description: "initial description",
		Branch:      "main",
	}
	if err := col.Create(ctx, target); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if target.ID == "" {
		t.Fatalf("create must assign an id")
	}
	if target.CreatedAt.IsZero() {
		t.Fatalf("create must stamp createdAt")
	}
	t.Cleanup(func() { col.Delete(ctx, target.ID) })

	records, err := col.List(ctx)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	var found *models.Target
	for _, rec := range records {
		if rec.ID == target.ID {
			found = rec
		}
	}
	if found == nil {
		t.Fatalf("created record missing from list")
	}
	if found.Name != "Roundtrip Goal" {
		t.Fatalf("listed record name %q", found.Name)
	}

	// merge overlays the given fields, everything else stays
	if err := col.Merge(ctx, target.ID, map[string]any{"completed": true}); err != nil {
		t.Fatalf("merge error: %v", err)
	}
	records, err = col.List(ctx)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	for _, rec := range records {
		if rec.ID != target.ID {
			continue
		}
		if !rec.Completed {
			t.Fatalf("merged field not applied")
		}
		if rec.Description != "initial description" {
			t.Fatalf("merge must not clobber untouched fields, got %q", rec.Description)
		}
	}

	if err := col.Delete(ctx, target.ID); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	records, err = col.List(ctx)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	for _, rec := range records {
		if rec.ID == target.ID {
			t.Fatalf("record still listed after delete")
		}
	}
}

func TestCollectionMergeUnknownIDWithEmulator(t *testing.T) {
	client := emulatorClient(t)
	col := NewCollection[models.Target](client, "targets")

	err := col.Merge(context.Background(), "missing-id", map[string]any{"completed": true})
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
