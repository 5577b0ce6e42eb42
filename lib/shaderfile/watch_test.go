package shaderfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jhenstridge/go-inotify"
)

func TestIsRewrite(t *testing.T) {
	cases := []struct {
		mask inotify.Mask
		want bool
	}{
		{inotify.IN_CLOSE_WRITE, true},
		{inotify.IN_MOVED_TO, true},
		{inotify.IN_MODIFY, false},
		{inotify.IN_OPEN, false},
		{inotify.IN_DELETE, false},
		{inotify.IN_CLOSE_WRITE | inotify.IN_ISDIR, true},
		{inotify.IN_CLOSE_NOWRITE, false},
	}
	for _, c := range cases {
		if got := isRewrite(c.mask); got != c.want {
			t.Errorf("isRewrite(%s) = %v, want %v", c.mask, got, c.want)
		}
	}
}

func TestWatchNoticesRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basic.shader")
	if err := os.WriteFile(path, []byte("v\n"+Sentinel+"\nf\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 4)
	err := Watch(ctx, path, func() { changed <- struct{}{} })
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("v2\n"+Sentinel+"\nf2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification for rewritten shader file")
	}
}

func TestWatchStopsWithContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basic.shader")
	if err := os.WriteFile(path, []byte("v\n"+Sentinel+"\nf\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 4)
	if err := Watch(ctx, path, func() { changed <- struct{}{} }); err != nil {
		t.Fatal(err)
	}
	cancel()
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(path, []byte("v2\n"+Sentinel+"\nf2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
		t.Fatal("change reported after the context was cancelled")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "basic.shader")
	if err := Watch(context.Background(), path, func() {}); err == nil {
		t.Fatal("expected an error watching a missing directory")
	}
}
