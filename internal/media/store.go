package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PicturePrefix is the blob namespace for uploaded profile images. Stored
// paths keep the prefix so rows can be served directly under /media/.
const PicturePrefix = "profile_pictures"

// Upload is a pending file received from a form, decoupled from the
// transport's multipart types.
type Upload struct {
	Name    string
	Size    int64
	Content io.Reader
}

// Store writes and removes blobs under a single media directory.
type Store struct{ Dir string }

func NewStore(dir string) *Store { return &Store{Dir: dir} }

// Filename derives a blob name from the upload time plus the original
// extension. Second resolution means two uploads in the same second collide;
// kept as-is because stored paths and serving URLs depend on this scheme.
func Filename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d%s", time.Now().Unix(), ext)
}

// Save writes the upload under profile_pictures/ and returns the stored
// relative path.
func (s *Store) Save(up Upload) (string, error) {
	rel := filepath.Join(PicturePrefix, Filename(up.Name))
	full := filepath.Join(s.Dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, up.Content); err != nil {
		os.Remove(full)
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// Delete removes a stored blob; a missing file is not an error.
func (s *Store) Delete(rel string) error {
	err := os.Remove(filepath.Join(s.Dir, filepath.FromSlash(rel)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Store) Exists(rel string) bool {
	_, err := os.Stat(filepath.Join(s.Dir, filepath.FromSlash(rel)))
	return err == nil
}
