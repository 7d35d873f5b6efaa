package media_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"adminpanel/internal/media"
)

func TestStoreSaveDeleteExists(t *testing.T) {
	store := media.NewStore(t.TempDir())

	rel, err := store.Save(media.Upload{Name: "avatar.PNG", Size: 4, Content: strings.NewReader("data")})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(rel, media.PicturePrefix+"/") {
		t.Fatalf("stored path outside namespace: %q", rel)
	}
	if !strings.HasSuffix(rel, ".png") {
		t.Fatalf("extension not lowercased: %q", rel)
	}
	if !store.Exists(rel) {
		t.Fatalf("saved blob not found: %q", rel)
	}

	b, err := os.ReadFile(filepath.Join(store.Dir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "data" {
		t.Fatalf("blob content mismatch: %q", b)
	}

	if err := store.Delete(rel); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if store.Exists(rel) {
		t.Fatalf("blob still present after delete: %q", rel)
	}
	// deleting again is a no-op
	if err := store.Delete(rel); err != nil {
		t.Fatalf("delete of missing blob: %v", err)
	}
}

func TestFilename(t *testing.T) {
	name := media.Filename("My Photo.JPEG")
	if !strings.HasSuffix(name, ".jpeg") {
		t.Fatalf("extension not kept: %q", name)
	}
	stem := strings.TrimSuffix(name, ".jpeg")
	if stem == "" {
		t.Fatalf("empty time stem: %q", name)
	}
	for _, r := range stem {
		if r < '0' || r > '9' {
			t.Fatalf("stem is not a unix timestamp: %q", name)
		}
	}
}
