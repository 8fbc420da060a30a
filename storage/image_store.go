package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ImageStore copies uploaded bytes to disk under a timestamp-derived name
// and hands back the public path used by the templates. The bytes are not
// inspected: every upload becomes a .jpg and nothing old is ever removed.
type ImageStore struct {
	Dir    string // filesystem directory, e.g. "static/images"
	Public string // public prefix, e.g. "/static/images"

	now func() time.Time
}

func NewImageStore(dir, public string) *ImageStore {
	return &ImageStore{Dir: dir, Public: public, now: time.Now}
}

// Save writes the blob and returns its public path. Names carry microsecond
// resolution; two saves within the same microsecond collide and the later
// one overwrites the earlier file.
func (s *ImageStore) Save(r io.Reader) (string, error) {
	t := s.now()
	filename := fmt.Sprintf("%s%06d.jpg", t.Format("20060102-150405"), t.Nanosecond()/1000)

	f, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}

	return s.Public + "/" + filename, nil
}
