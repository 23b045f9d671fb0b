package fswatcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func readEvent(t *testing.T, w Watcher, fn func(*Event) bool) {
	t.Helper()
	timeout := time.NewTimer(3000 * time.Millisecond)
	defer timeout.Stop()
	for {
		select {
		case <-timeout.C:
			t.Fatal("event timeout")
		case ev := <-w.Events():
			if err, ok := ev.(error); ok {
				t.Fatal(err)
			}
			if fn(ev.(*Event)) {
				return
			}
		}
	}
}

func mustNew(t *testing.T) Watcher {
	t.Helper()
	w, err := NewFsnWatcher()
	if err != nil {
		t.Fatal(err)
	}
	return w
}

//----------

func TestFsnWatcherCreateModify(t *testing.T) {
	dir := t.TempDir()
	w := mustNew(t)
	defer w.Close()
	if err := w.Add(dir); err != nil {
		t.Fatal(err)
	}

	name := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(name, []byte("1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	readEvent(t, w, func(ev *Event) bool {
		return ev.Op.HasAny(Create) && ev.Name == dir && ev.JoinNames() == name
	})

	f, err := os.OpenFile(name, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("2\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()
	readEvent(t, w, func(ev *Event) bool {
		return ev.Op.HasAny(Modify) && ev.Name == name
	})
}

func TestFsnWatcherOpMask(t *testing.T) {
	w, err := NewFsnWatcher()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	*w.OpMask() = Modify
	ev := w.translate(fsnotify.Event{Name: "/a/b", Op: fsnotify.Chmod})
	if ev != nil {
		t.Fatal(ev)
	}
	ev = w.translate(fsnotify.Event{Name: "/a/b", Op: fsnotify.Create | fsnotify.Write})
	if ev == nil || ev.Name != "/a" || ev.SubName != "b" {
		t.Fatal(ev)
	}
}

func TestOpString(t *testing.T) {
	op := Create | Rename
	if s := op.String(); s != "create|rename" {
		t.Fatal(s)
	}
	op.Remove(Create)
	if s := op.String(); s != "rename" {
		t.Fatal(s)
	}
}
