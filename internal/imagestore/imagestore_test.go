package imagestore

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestSaveNamesByTimestampAndExtension(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	fixed := time.UnixMilli(1700000000123)
	store.now = func() time.Time { return fixed }

	name, err := store.Save("My Photo.JPG", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatal(err)
	}
	if name != "1700000000123.jpg" {
		t.Errorf("name = %q, want 1700000000123.jpg", name)
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestSaveWithoutExtension(t *testing.T) {
	store := New(t.TempDir())
	name, err := store.Save("noext", strings.NewReader("x"))
	if err != nil {
		t.Fatal(err)
	}
	if !regexp.MustCompile(`^\d+$`).MatchString(name) {
		t.Errorf("name = %q, want bare timestamp", name)
	}
}

func TestListAndRemove(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Save("a.png", strings.NewReader("a")); err != nil {
		t.Fatal(err)
	}
	names, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 {
		t.Fatalf("List returned %d names", len(names))
	}
	if err := store.Remove(names[0]); err != nil {
		t.Fatal(err)
	}
	names, _ = store.List()
	if len(names) != 0 {
		t.Errorf("store not empty after Remove")
	}
}

func TestTimestampOf(t *testing.T) {
	ts := TimestampOf("1700000000123.jpg")
	if ts.UnixMilli() != 1700000000123 {
		t.Errorf("TimestampOf = %v", ts)
	}
	if !TimestampOf("not-a-timestamp.jpg").IsZero() {
		t.Error("expected zero time for foreign filename")
	}
}
