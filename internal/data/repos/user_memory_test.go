package repos

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/avant-dev/usersvc/internal/domain/user"
	"github.com/avant-dev/usersvc/internal/pkg/apperrors"
	"github.com/avant-dev/usersvc/internal/pkg/logger"
)

func TestMemoryRepoSaveThenFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepo(logger.NewNop())

	saved, err := repo.Save(ctx, user.New("u123", "Alice Wonderland", "alice@example.com"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	found, err := repo.FindByID(ctx, "u123")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if *found != *saved {
		t.Fatalf("find after save mismatch: got %+v want %+v", *found, *saved)
	}
}

func TestMemoryRepoFindMissingIsNotFound(t *testing.T) {
	repo := NewMemoryUserRepo(logger.NewNop())

	_, err := repo.FindByID(context.Background(), "u999")
	if err == nil {
		t.Fatalf("expected not found")
	}
	var nferr *apperrors.NotFoundError
	if !errors.As(err, &nferr) || nferr.ID != "u999" {
		t.Fatalf("expected NotFoundError for u999, got %v", err)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected errors.Is ErrNotFound")
	}
}

func TestMemoryRepoOverwriteLastWriteWins(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepo(logger.NewNop())

	if _, err := repo.Save(ctx, user.New("u1", "First", "first@example.com")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := repo.Save(ctx, user.New("u1", "Second", "second@example.com")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	found, err := repo.FindByID(ctx, "u1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Name != "Second" || found.Email != "second@example.com" {
		t.Fatalf("expected last write to win, got %+v", found)
	}
}

func TestMemoryRepoStoredValueIsIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepo(logger.NewNop())

	u := user.New("u1", "Alice", "alice@example.com")
	if _, err := repo.Save(ctx, u); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Mutating the caller's copy must not reach the store.
	u.Name = "Mallory"

	found, err := repo.FindByID(ctx, "u1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Name != "Alice" {
		t.Fatalf("store leaked caller mutation: %+v", found)
	}
}

func TestMemoryRepoConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepo(logger.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Save(ctx, user.New("shared", "Racer", "racer@example.com")); err != nil {
				t.Errorf("save: %v", err)
			}
			if _, err := repo.FindByID(ctx, "shared"); err != nil {
				t.Errorf("find: %v", err)
			}
		}()
	}
	wg.Wait()

	found, err := repo.FindByID(ctx, "shared")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Name != "Racer" {
		t.Fatalf("unexpected final state: %+v", found)
	}
}
