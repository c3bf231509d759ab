package fsutil_test

import (
	"context"
	"os"
	"testing"

	"github.com/yaklabco/refix/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	if got := fsutil.BackupPath("/p/file.go", fsutil.BackupModeSidecar); got != "/p/file.go.refix.bak" {
		t.Errorf("sidecar path = %q", got)
	}
	if got := fsutil.BackupPath("/p/file.go", fsutil.BackupModeNone); got != "" {
		t.Errorf("none mode path = %q, want empty", got)
	}
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	enabled := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	t.Run("creates sidecar copy", func(t *testing.T) {
		t.Parallel()
		path := writeTestFile(t, "original\n")

		created, err := fsutil.CreateBackup(ctx, path, enabled)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if !created {
			t.Fatal("backup should be created")
		}

		got, err := os.ReadFile(path + fsutil.BackupSuffix)
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(got) != "original\n" {
			t.Errorf("backup content = %q", got)
		}
	})

	t.Run("never overwrites existing backup", func(t *testing.T) {
		t.Parallel()
		path := writeTestFile(t, "v1\n")

		if _, err := fsutil.CreateBackup(ctx, path, enabled); err != nil {
			t.Fatalf("first backup: %v", err)
		}
		if err := os.WriteFile(path, []byte("v2\n"), 0644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}

		created, err := fsutil.CreateBackup(ctx, path, enabled)
		if err != nil {
			t.Fatalf("second backup: %v", err)
		}
		if created {
			t.Error("existing backup must not be replaced")
		}

		got, _ := os.ReadFile(path + fsutil.BackupSuffix)
		if string(got) != "v1\n" {
			t.Errorf("backup content = %q, want pristine original", got)
		}
	})

	t.Run("disabled config is a no-op", func(t *testing.T) {
		t.Parallel()
		path := writeTestFile(t, "x\n")

		created, err := fsutil.CreateBackup(ctx, path, fsutil.DefaultBackupConfig())
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if created {
			t.Error("disabled backups should not create files")
		}
	})
}

func TestRestoreBackup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("restores original content", func(t *testing.T) {
		t.Parallel()
		path := writeTestFile(t, "original\n")
		cfg := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

		if _, err := fsutil.CreateBackup(ctx, path, cfg); err != nil {
			t.Fatalf("backup: %v", err)
		}
		if err := os.WriteFile(path, []byte("patched\n"), 0644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}

		restored, err := fsutil.RestoreBackup(ctx, path, fsutil.BackupModeSidecar)
		if err != nil {
			t.Fatalf("RestoreBackup() error = %v", err)
		}
		if !restored {
			t.Fatal("expected restore")
		}

		got, _ := os.ReadFile(path)
		if string(got) != "original\n" {
			t.Errorf("restored content = %q", got)
		}
	})

	t.Run("no backup present", func(t *testing.T) {
		t.Parallel()
		path := writeTestFile(t, "x\n")

		restored, err := fsutil.RestoreBackup(ctx, path, fsutil.BackupModeSidecar)
		if err != nil {
			t.Fatalf("RestoreBackup() error = %v", err)
		}
		if restored {
			t.Error("restore without backup should be a no-op")
		}
	})
}
