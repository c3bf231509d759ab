package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yaklabco/refix/pkg/fsutil"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "target.go")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("captures content and state", func(t *testing.T) {
		t.Parallel()
		path := writeTestFile(t, "package main\n")

		content, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(content) != "package main\n" {
			t.Errorf("content = %q", content)
		}
		if info.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", info.Size, len(content))
		}
		var zero [32]byte
		if info.Hash == zero {
			t.Error("Hash should be populated")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, _, err := fsutil.ReadFile(ctx, filepath.Join(t.TempDir(), "missing.go"))
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		_, _, err := fsutil.ReadFile(ctx, t.TempDir())
		if err == nil {
			t.Fatal("expected error for directory")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := fsutil.ReadFile(cancelled, writeTestFile(t, "x"))
		if err == nil {
			t.Fatal("expected context error")
		}
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unchanged file", func(t *testing.T) {
		t.Parallel()
		path := writeTestFile(t, "stable\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		modified, err := fsutil.CheckModified(ctx, info)
		if err != nil {
			t.Fatalf("CheckModified() error = %v", err)
		}
		if modified {
			t.Error("unchanged file reported as modified")
		}
	})

	t.Run("content change detected", func(t *testing.T) {
		t.Parallel()
		path := writeTestFile(t, "before\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if err := os.WriteFile(path, []byte("after!\n"), 0644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}

		modified, err := fsutil.CheckModified(ctx, info)
		if err != nil {
			t.Fatalf("CheckModified() error = %v", err)
		}
		if !modified {
			t.Error("changed file not detected")
		}
	})

	t.Run("touch without content change", func(t *testing.T) {
		t.Parallel()
		path := writeTestFile(t, "same\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		future := time.Now().Add(time.Hour)
		if err := os.Chtimes(path, future, future); err != nil {
			t.Fatalf("chtimes: %v", err)
		}

		// The hash tier recognizes identical content despite the new
		// mod time.
		modified, err := fsutil.CheckModified(ctx, info)
		if err != nil {
			t.Fatalf("CheckModified() error = %v", err)
		}
		if modified {
			t.Error("touched-but-identical file reported as modified")
		}
	})

	t.Run("deleted file counts as modified", func(t *testing.T) {
		t.Parallel()
		path := writeTestFile(t, "doomed\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if err := os.Remove(path); err != nil {
			t.Fatalf("remove: %v", err)
		}

		modified, err := fsutil.CheckModified(ctx, info)
		if err != nil {
			t.Fatalf("CheckModified() error = %v", err)
		}
		if !modified {
			t.Error("deleted file not detected")
		}
	})

	t.Run("nil info", func(t *testing.T) {
		t.Parallel()
		if _, err := fsutil.CheckModified(ctx, nil); err == nil {
			t.Fatal("expected error for nil FileInfo")
		}
	})
}
