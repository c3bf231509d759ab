package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/refix/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates new file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out.go")

		if err := fsutil.WriteAtomic(ctx, path, []byte("content\n"), 0600); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "content\n" {
			t.Errorf("content = %q", got)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if stat.Mode().Perm() != 0600 {
			t.Errorf("mode = %o, want %o", stat.Mode().Perm(), 0600)
		}
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()
		path := writeTestFile(t, "old\n")

		if err := fsutil.WriteAtomic(ctx, path, []byte("new\n"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "new\n" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "out.go")

		if err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1", len(entries))
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		path := filepath.Join(t.TempDir(), "out.go")
		if err := fsutil.WriteAtomic(cancelled, path, []byte("x"), 0); err == nil {
			t.Fatal("expected context error")
		}
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("skips identical content", func(t *testing.T) {
		t.Parallel()
		path := writeTestFile(t, "same\n")

		written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("same\n"), 0)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if written {
			t.Error("identical content should not be rewritten")
		}
	})

	t.Run("writes changed content", func(t *testing.T) {
		t.Parallel()
		path := writeTestFile(t, "old\n")

		written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("new\n"), 0)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if !written {
			t.Error("changed content should be written")
		}
	})

	t.Run("creates missing file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "fresh.go")

		written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("x"), 0)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if !written {
			t.Error("missing file should be created")
		}
	})
}
