package service

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/citizengeo/sites/internal/config"
)

const photoPrefix = "site"

// MediaService stores uploaded site photos in the configured media
// directory.
type MediaService struct {
	dir     string
	allowed map[string]struct{}
	now     func() time.Time
}

func NewMediaService(conf config.Media) *MediaService {
	allowed := make(map[string]struct{}, len(conf.AllowedExtensions))
	for _, ext := range conf.AllowedExtensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return &MediaService{
		dir:     conf.Dir,
		allowed: allowed,
		now:     time.Now,
	}
}

// SavePhoto writes the uploaded file under a generated name and returns
// that name. A file whose extension is not on the allow-list is silently
// ignored: the returned name is nil and no error is raised.
func (s *MediaService) SavePhoto(file *multipart.FileHeader) (*string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if _, ok := s.allowed[ext]; !ok {
		return nil, nil
	}

	name := photoPrefix + "_" + s.now().Format("20060102_150405") + "." + ext

	src, err := file.Open()
	if err != nil {
		return nil, errors.Wrap(err, "MediaService.SavePhoto: open upload")
	}
	defer src.Close()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "MediaService.SavePhoto: media dir")
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, errors.Wrap(err, "MediaService.SavePhoto: create file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, errors.Wrap(err, "MediaService.SavePhoto: write file")
	}

	return &name, nil
}
