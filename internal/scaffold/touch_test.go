//go:build linux

package scaffold

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/google/uuid"
)

func accessTime(t *testing.T, path string) time.Time {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	st := info.Sys().(*syscall.Stat_t)
	return time.Unix(st.Atim.Sec, st.Atim.Nsec)
}

func TestTouchCreatesThenRefreshes(t *testing.T) {
	path := filepath.Join(t.TempDir(), uuid.NewString()+".txt")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("%s should not exist yet", path)
	}

	if err := Touch(path); err != nil {
		t.Fatalf("Touch() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Touch() did not create %s: %v", path, err)
	}
	before := accessTime(t, path)

	time.Sleep(20 * time.Millisecond)
	if err := Touch(path); err != nil {
		t.Fatalf("second Touch() error: %v", err)
	}
	after := accessTime(t, path)

	if !after.After(before) {
		t.Errorf("access time did not increase: before=%v after=%v", before, after)
	}
}

func TestTouchKeepsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("keep me"), 0644); err != nil {
		t.Fatal(err)
	}
	old := time.Now().Add(-time.Hour)
	os.Chtimes(path, old, old)

	if err := Touch(path); err != nil {
		t.Fatalf("Touch() error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "keep me" {
		t.Errorf("content changed to %q", data)
	}
	if !accessTime(t, path).After(old) {
		t.Error("access time should move forward")
	}
}

func TestTouchMissingParent(t *testing.T) {
	if err := Touch(filepath.Join(t.TempDir(), "missing", "file.txt")); err == nil {
		t.Fatal("expected error when parent directory is missing")
	}
}
