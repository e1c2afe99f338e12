package storage_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/JaimeStill/mail-designer/pkg/lifecycle"
	"github.com/JaimeStill/mail-designer/pkg/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func startedSystem(t *testing.T, cfg *storage.Config) storage.System {
	t.Helper()

	sys, err := storage.New(cfg, testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	lc.WaitForStartup()

	return sys
}

func TestNew_EmptyBasePath(t *testing.T) {
	_, err := storage.New(&storage.Config{}, testLogger())
	if err == nil {
		t.Fatal("New() succeeded with empty BasePath, want error")
	}
}

func TestStart_CreatesDirectory(t *testing.T) {
	targetDir := filepath.Join(t.TempDir(), "nested", "storage")
	startedSystem(t, &storage.Config{BasePath: targetDir})

	if _, err := os.Stat(targetDir); os.IsNotExist(err) {
		t.Error("Start() did not create storage directory")
	}
}

func TestStore_Retrieve_RoundTrip(t *testing.T) {
	sys := startedSystem(t, &storage.Config{BasePath: t.TempDir()})
	ctx := context.Background()

	key := "exports/abc/email-template.html"
	data := []byte("<!DOCTYPE html>")

	if err := sys.Store(ctx, key, data); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	got, err := sys.Retrieve(ctx, key)
	if err != nil {
		t.Fatalf("Retrieve() failed: %v", err)
	}

	if string(got) != string(data) {
		t.Errorf("Retrieved data = %q, want %q", got, data)
	}
}

func TestStore_Overwrite(t *testing.T) {
	sys := startedSystem(t, &storage.Config{BasePath: t.TempDir()})
	ctx := context.Background()

	sys.Store(ctx, "overwrite.txt", []byte("original"))
	sys.Store(ctx, "overwrite.txt", []byte("updated"))

	data, _ := sys.Retrieve(ctx, "overwrite.txt")
	if string(data) != "updated" {
		t.Errorf("Retrieved = %q after overwrite, want %q", data, "updated")
	}
}

func TestStore_TooLarge(t *testing.T) {
	cfg := &storage.Config{BasePath: t.TempDir(), MaxObjectSize: "1KB"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	sys := startedSystem(t, cfg)

	err := sys.Store(context.Background(), "big.bin", make([]byte, 2048))
	if !errors.Is(err, storage.ErrTooLarge) {
		t.Errorf("Store() error = %v, want %v", err, storage.ErrTooLarge)
	}
}

func TestRetrieve_NotFound(t *testing.T) {
	sys := startedSystem(t, &storage.Config{BasePath: t.TempDir()})

	_, err := sys.Retrieve(context.Background(), "nonexistent.txt")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Retrieve() error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	sys := startedSystem(t, &storage.Config{BasePath: dir})
	ctx := context.Background()

	sys.Store(ctx, "exports/s1/a.html", []byte("a"))
	sys.Store(ctx, "exports/s2/b.html", []byte("b"))

	if err := sys.Delete(ctx, "exports/s1/a.html"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	if _, err := sys.Retrieve(ctx, "exports/s1/a.html"); !errors.Is(err, storage.ErrNotFound) {
		t.Error("file still exists after Delete()")
	}

	if _, err := os.Stat(filepath.Join(dir, "exports", "s1")); !os.IsNotExist(err) {
		t.Error("empty parent directory should be removed after Delete()")
	}

	if _, err := os.Stat(filepath.Join(dir, "exports")); os.IsNotExist(err) {
		t.Error("non-empty ancestor directory should not be removed")
	}

	if err := sys.Delete(ctx, "nonexistent.txt"); err != nil {
		t.Errorf("Delete() on missing key returned error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	sys := startedSystem(t, &storage.Config{BasePath: t.TempDir()})
	ctx := context.Background()

	sys.Store(ctx, "exists.txt", []byte("content"))

	tests := []struct {
		key     string
		want    bool
		wantErr error
	}{
		{"exists.txt", true, nil},
		{"missing.txt", false, nil},
		{"", false, storage.ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := sys.Validate(ctx, tt.key)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q) error = %v, want %v", tt.key, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestList(t *testing.T) {
	sys := startedSystem(t, &storage.Config{BasePath: t.TempDir()})
	ctx := context.Background()

	sys.Store(ctx, "exports/s1/email-template.txt", []byte("t"))
	sys.Store(ctx, "exports/s1/email-template.html", []byte("h"))
	sys.Store(ctx, "exports/s2/email-template.html", []byte("h"))

	keys, err := sys.List(ctx, "exports/s1")
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}

	want := []string{"exports/s1/email-template.html", "exports/s1/email-template.txt"}
	if !slices.Equal(keys, want) {
		t.Errorf("List() = %v, want %v", keys, want)
	}

	keys, err = sys.List(ctx, "exports/none")
	if err != nil {
		t.Fatalf("List() on missing prefix failed: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("List() on missing prefix = %v, want empty", keys)
	}
}

func TestKeys_PathTraversal(t *testing.T) {
	sys := startedSystem(t, &storage.Config{BasePath: t.TempDir()})
	ctx := context.Background()

	keys := []string{
		"",
		"../escape.txt",
		"foo/../../escape.txt",
		"/absolute/path.txt",
	}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			if err := sys.Store(ctx, key, []byte("malicious")); !errors.Is(err, storage.ErrInvalidKey) {
				t.Errorf("Store(%q) error = %v, want %v", key, err, storage.ErrInvalidKey)
			}
			if err := sys.Delete(ctx, key); !errors.Is(err, storage.ErrInvalidKey) {
				t.Errorf("Delete(%q) error = %v, want %v", key, err, storage.ErrInvalidKey)
			}
			if _, err := sys.List(ctx, key); !errors.Is(err, storage.ErrInvalidKey) {
				t.Errorf("List(%q) error = %v, want %v", key, err, storage.ErrInvalidKey)
			}
		})
	}
}
