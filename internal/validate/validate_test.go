package validate_test

import (
	"strings"
	"testing"

	"adminpanel/internal/validate"
)

func TestEmail(t *testing.T) {
	if _, ok := validate.Email("ann@x.com"); !ok {
		t.Fatal("valid email rejected")
	}
	for _, bad := range []string{"", "ann", "ann@", "@x.com", "ann@x", strings.Repeat("a", 250) + "@x.com"} {
		if _, ok := validate.Email(bad); ok {
			t.Fatalf("accepted %q", bad)
		}
	}
}

func TestPasswordWindows(t *testing.T) {
	if validate.RegisterPassword("12345") {
		t.Fatal("5-char register password accepted")
	}
	if !validate.RegisterPassword("123456") {
		t.Fatal("6-char register password rejected")
	}
	if validate.LoginPassword("1234") || validate.LoginPassword("thirteenchars") {
		t.Fatal("login password outside [5,12] accepted")
	}
	if !validate.LoginPassword("12345") || !validate.LoginPassword("123456789012") {
		t.Fatal("login password at window edge rejected")
	}
}

func TestPicture(t *testing.T) {
	for _, name := range []string{"a.jpeg", "a.jpg", "a.png", "a.gif", "a.PNG"} {
		if _, ok := validate.Picture(name, 100); !ok {
			t.Fatalf("rejected %q", name)
		}
	}
	if _, ok := validate.Picture("a.pdf", 100); ok {
		t.Fatal("accepted pdf")
	}
	if _, ok := validate.Picture("a.png", validate.MaxPictureBytes+1); ok {
		t.Fatal("accepted oversized picture")
	}
	if _, ok := validate.Picture("a.png", validate.MaxPictureBytes); !ok {
		t.Fatal("rejected picture at the size cap")
	}
	if _, ok := validate.Picture("a.png", 0); ok {
		t.Fatal("accepted empty file")
	}
}

func TestFieldErrorsMessage(t *testing.T) {
	fe := validate.FieldErrors{"email": "bad", "name": "missing"}
	if fe.Error() != "email: bad; name: missing" {
		t.Fatalf("unexpected message: %q", fe.Error())
	}
}
