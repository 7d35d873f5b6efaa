package validate

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// FieldErrors maps a form field to a message for re-display.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 255 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Name validates a displayable name; required, capped at 255.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 255 {
		return "", false
	}
	return s, true
}

// Bio is optional free text capped at 1000.
func Bio(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, len(s) <= 1000
}

// Phone is optional, capped at 20.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, len(s) <= 20
}

// Role is required free text; the cap matches the other short fields.
func Role(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 255 {
		return "", false
	}
	return s, true
}

// RegisterPassword enforces the minimum length for new admin passwords.
func RegisterPassword(s string) bool {
	return len(s) >= 6
}

// LoginPassword enforces the login form's length window.
func LoginPassword(s string) bool {
	return len(s) >= 5 && len(s) <= 12
}

const MaxPictureBytes = 2048 << 10 // 2048 KB

var pictureExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// Picture checks an upload's extension against the image allow-list and its
// size against the 2048 KB cap. Returns the lowercased extension.
func Picture(filename string, size int64) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !pictureExts[ext] {
		return ext, false
	}
	if size <= 0 || size > MaxPictureBytes {
		return ext, false
	}
	return ext, true
}
