package services_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"adminpanel/internal/repos"
	"adminpanel/internal/services"
	"adminpanel/internal/validate"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func newAuth(t *testing.T) *services.AuthService {
	t.Helper()
	return &services.AuthService{Admins: repos.NewAdminRepo(memdb(t))}
}

func TestRegisterThenLogin(t *testing.T) {
	auth := newAuth(t)

	in := services.RegisterInput{Name: "Root Admin", Email: "root@panel.test", Password: "hunter66"}
	if err := auth.Register(in); err != nil {
		t.Fatalf("register: %v", err)
	}

	a, err := auth.Login("sid-1", services.LoginInput{Email: in.Email, Password: in.Password})
	if err != nil {
		t.Fatalf("login after register: %v", err)
	}
	if a.Email != in.Email || a.Name != in.Name {
		t.Fatalf("unexpected admin: %+v", a)
	}
	if a.Hash == in.Password {
		t.Fatal("password stored in plaintext")
	}

	cur, err := auth.CurrentAdmin("sid-1")
	if err != nil {
		t.Fatalf("current admin: %v", err)
	}
	if cur.ID != a.ID {
		t.Fatalf("session bound to wrong admin: %s != %s", cur.ID, a.ID)
	}
}

func TestLoginGenericFailure(t *testing.T) {
	auth := newAuth(t)
	if err := auth.Register(services.RegisterInput{Name: "A", Email: "a@panel.test", Password: "secret7"}); err != nil {
		t.Fatal(err)
	}

	// wrong password and unknown email must be indistinguishable
	_, errWrong := auth.Login("s1", services.LoginInput{Email: "a@panel.test", Password: "nope123"})
	_, errUnknown := auth.Login("s2", services.LoginInput{Email: "ghost@panel.test", Password: "nope123"})
	if !errors.Is(errWrong, services.ErrBadCreds) {
		t.Fatalf("wrong password: want ErrBadCreds, got %v", errWrong)
	}
	if !errors.Is(errUnknown, services.ErrBadCreds) {
		t.Fatalf("unknown email: want ErrBadCreds, got %v", errUnknown)
	}
	if errWrong.Error() != errUnknown.Error() {
		t.Fatalf("error messages differ: %q vs %q", errWrong, errUnknown)
	}
}

func TestRegisterValidation(t *testing.T) {
	auth := newAuth(t)
	if err := auth.Register(services.RegisterInput{Name: "A", Email: "a@panel.test", Password: "secret7"}); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name  string
		in    services.RegisterInput
		field string
	}{
		{"empty name", services.RegisterInput{Email: "b@panel.test", Password: "secret7"}, "name"},
		{"bad email", services.RegisterInput{Name: "B", Email: "not-an-email", Password: "secret7"}, "email"},
		{"duplicate email", services.RegisterInput{Name: "B", Email: "a@panel.test", Password: "secret7"}, "email"},
		{"short password", services.RegisterInput{Name: "B", Email: "b@panel.test", Password: "12345"}, "password"},
	}
	for _, tc := range cases {
		err := auth.Register(tc.in)
		var fe validate.FieldErrors
		if !errors.As(err, &fe) {
			t.Fatalf("%s: want FieldErrors, got %v", tc.name, err)
		}
		if _, ok := fe[tc.field]; !ok {
			t.Fatalf("%s: missing error for field %q: %v", tc.name, tc.field, fe)
		}
	}
}

func TestLoginPasswordWindow(t *testing.T) {
	auth := newAuth(t)

	for _, pw := range []string{"1234", "thirteenchars"} {
		_, err := auth.Login("s", services.LoginInput{Email: "a@panel.test", Password: pw})
		var fe validate.FieldErrors
		if !errors.As(err, &fe) {
			t.Fatalf("password %q: want FieldErrors, got %v", pw, err)
		}
		if _, ok := fe["password"]; !ok {
			t.Fatalf("password %q: missing password field error", pw)
		}
	}
}

func TestLogoutIdempotent(t *testing.T) {
	auth := newAuth(t)
	if err := auth.Register(services.RegisterInput{Name: "A", Email: "a@panel.test", Password: "secret7"}); err != nil {
		t.Fatal(err)
	}
	if _, err := auth.Login("sid-x", services.LoginInput{Email: "a@panel.test", Password: "secret7"}); err != nil {
		t.Fatal(err)
	}

	if err := auth.Logout("sid-x"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := auth.Logout("sid-x"); err != nil {
		t.Fatalf("second logout: %v", err)
	}
	if err := auth.Logout("never-seen"); err != nil {
		t.Fatalf("logout of unknown session: %v", err)
	}

	if _, err := auth.CurrentAdmin("sid-x"); !errors.Is(err, services.ErrNotAuthenticated) {
		t.Fatalf("want ErrNotAuthenticated after logout, got %v", err)
	}
}
