package repository

import (
	"path/filepath"
	"testing"

	"wordecho/internal/database"
)

func newTestRepo(t *testing.T) *WordRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping database test in short mode")
	}

	db, err := database.Initialize(filepath.Join(t.TempDir(), "words.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return NewWordRepository(db)
}

func TestWordRepositoryCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.Create("necessary", "word_necessary.mp3")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Create() returned zero ID")
	}

	got, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got == nil {
		t.Fatal("GetByID() returned nil for existing word")
	}
	if got.WordText != "necessary" {
		t.Errorf("WordText = %q, want %q", got.WordText, "necessary")
	}
	if got.AudioFilename != "word_necessary.mp3" {
		t.Errorf("AudioFilename = %q, want %q", got.AudioFilename, "word_necessary.mp3")
	}
}

func TestWordRepositoryGetMissingReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.GetByID(12345)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got != nil {
		t.Errorf("GetByID() = %+v, want nil", got)
	}
}

func TestWordRepositoryCountAndDelete(t *testing.T) {
	repo := newTestRepo(t)

	word, err := repo.Create("apple", "")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if _, err := repo.Create("banana", ""); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}

	if err := repo.Delete(word.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	count, err = repo.Count()
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 1 {
		t.Errorf("Count() after delete = %d, want 1", count)
	}
}

func TestWordRepositorySample(t *testing.T) {
	repo := newTestRepo(t)

	texts := []string{"ant", "bee", "cow", "dog", "elk"}
	for _, text := range texts {
		if _, err := repo.Create(text, ""); err != nil {
			t.Fatalf("Create(%q) error: %v", text, err)
		}
	}

	t.Run("fewer words than requested", func(t *testing.T) {
		sample, err := repo.Sample(10)
		if err != nil {
			t.Fatalf("Sample() error: %v", err)
		}
		if len(sample) != 5 {
			t.Errorf("len(Sample(10)) = %d, want 5", len(sample))
		}
	})

	t.Run("limit respected", func(t *testing.T) {
		sample, err := repo.Sample(3)
		if err != nil {
			t.Fatalf("Sample() error: %v", err)
		}
		if len(sample) != 3 {
			t.Errorf("len(Sample(3)) = %d, want 3", len(sample))
		}
	})

	t.Run("no replacement", func(t *testing.T) {
		sample, err := repo.Sample(5)
		if err != nil {
			t.Fatalf("Sample() error: %v", err)
		}
		seen := make(map[int64]bool)
		for _, word := range sample {
			if seen[word.ID] {
				t.Errorf("Sample() returned word %d twice", word.ID)
			}
			seen[word.ID] = true
		}
	})
}

func TestWordRepositoryKeepsDuplicateTexts(t *testing.T) {
	repo := newTestRepo(t)

	first, err := repo.Create("echo", "")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	second, err := repo.Create("echo", "")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("duplicate words share an ID")
	}

	words, err := repo.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(words) != 2 {
		t.Errorf("len(List()) = %d, want 2", len(words))
	}
}
