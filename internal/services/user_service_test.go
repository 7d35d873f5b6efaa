package services_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"adminpanel/internal/media"
	"adminpanel/internal/repos"
	"adminpanel/internal/services"
	"adminpanel/internal/validate"
)

func newUserService(t *testing.T) (*services.UserService, *media.Store) {
	t.Helper()
	store := media.NewStore(t.TempDir())
	return &services.UserService{Users: repos.NewUserRepo(memdb(t)), Media: store}, store
}

func pngUpload(name, body string) *media.Upload {
	return &media.Upload{Name: name, Size: int64(len(body)), Content: strings.NewReader(body)}
}

func TestUserCRUD(t *testing.T) {
	svc, _ := newUserService(t)

	u, err := svc.Create(services.UserInput{Name: "Carol", Email: "carol@x.com", Role: "editor"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	users, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 || users[0].ID != u.ID {
		t.Fatalf("list: %+v", users)
	}

	// update overwrites every field
	upd, err := svc.Update(u.ID, services.UserInput{Name: "Caroline", Email: "caroline@x.com", Role: "viewer"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := svc.Get(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Caroline" || got.Email != "caroline@x.com" || got.Role != "viewer" {
		t.Fatalf("re-read after update: %+v", got)
	}
	if got.ID != upd.ID {
		t.Fatalf("id changed on update: %s != %s", got.ID, upd.ID)
	}

	if err := svc.Delete(u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(u.ID); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("get after delete: want ErrNotFound, got %v", err)
	}
}

func TestUserUnknownID(t *testing.T) {
	svc, _ := newUserService(t)

	if _, err := svc.Update("nope", services.UserInput{Name: "X", Email: "x@x.com", Role: "r"}); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("update unknown: want ErrNotFound, got %v", err)
	}
	if err := svc.Delete("nope"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("delete unknown: want ErrNotFound, got %v", err)
	}
}

func TestUserEmailUniqueness(t *testing.T) {
	svc, _ := newUserService(t)

	u, err := svc.Create(services.UserInput{Name: "Carol", Email: "carol@x.com", Role: "editor"})
	if err != nil {
		t.Fatal(err)
	}

	// self-update with the unchanged email must not trip the probe
	if _, err := svc.Update(u.ID, services.UserInput{Name: "Carol", Email: "carol@x.com", Role: "editor"}); err != nil {
		t.Fatalf("self-update: %v", err)
	}

	// a second user claiming the email must fail with a field error
	_, err = svc.Create(services.UserInput{Name: "Imp", Email: "carol@x.com", Role: "editor"})
	var fe validate.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("duplicate create: want FieldErrors, got %v", err)
	}
	if _, ok := fe["email"]; !ok {
		t.Fatalf("duplicate create: missing email error: %v", fe)
	}
}

func TestUserPictureRejectedBeforeWrite(t *testing.T) {
	svc, store := newUserService(t)

	cases := []*media.Upload{
		pngUpload("notes.txt", "plain text"),
		{Name: "huge.png", Size: validate.MaxPictureBytes + 1, Content: strings.NewReader("x")},
	}
	for _, up := range cases {
		_, err := svc.Create(services.UserInput{Name: "Pic", Email: "pic@x.com", Role: "r", Picture: up})
		var fe validate.FieldErrors
		if !errors.As(err, &fe) {
			t.Fatalf("%s: want FieldErrors, got %v", up.Name, err)
		}
		if _, ok := fe["picture"]; !ok {
			t.Fatalf("%s: missing picture error: %v", up.Name, fe)
		}
	}

	// nothing may reach the blob store on a validation failure
	if entries, err := os.ReadDir(filepath.Join(store.Dir, media.PicturePrefix)); err == nil && len(entries) > 0 {
		t.Fatalf("blobs written despite rejected uploads: %d", len(entries))
	}

	// and no row may have been persisted either
	users, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 0 {
		t.Fatalf("rows persisted despite rejected uploads: %+v", users)
	}
}

// Replacing a user's picture leaves the previous blob behind; only the admin
// profile cleans up after itself.
func TestUserPictureReplaceOrphansOldBlob(t *testing.T) {
	svc, store := newUserService(t)

	u, err := svc.Create(services.UserInput{
		Name: "Pic", Email: "pic@x.com", Role: "r",
		Picture: pngUpload("first.png", "png-bytes-a"),
	})
	if err != nil {
		t.Fatal(err)
	}
	oldPath := u.Picture
	if oldPath == "" || !store.Exists(oldPath) {
		t.Fatalf("first picture not stored: %q", oldPath)
	}

	// distinct extension keeps the generated names apart within one second
	upd, err := svc.Update(u.ID, services.UserInput{
		Name: "Pic", Email: "pic@x.com", Role: "r",
		Picture: pngUpload("second.gif", "gif-bytes-b"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if upd.Picture == oldPath {
		t.Fatalf("picture path not replaced: %q", upd.Picture)
	}
	if !store.Exists(upd.Picture) {
		t.Fatalf("new picture missing: %q", upd.Picture)
	}
	if !store.Exists(oldPath) {
		t.Fatalf("old user blob was deleted; it should be orphaned")
	}
}
