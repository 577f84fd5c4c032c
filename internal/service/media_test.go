package service

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/citizengeo/sites/internal/config"
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("photo", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	writer.Close()

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["photo"][0]
}

func TestSavePhoto(t *testing.T) {
	dir := t.TempDir()
	svc := NewMediaService(config.Media{Dir: dir, AllowedExtensions: []string{"jpg", "jpeg", "png", "gif"}})
	svc.now = func() time.Time { return time.Date(2021, 6, 15, 10, 30, 45, 0, time.UTC) }

	name, err := svc.SavePhoto(makeFileHeader(t, "parcelle.JPG", []byte("fake-jpeg")))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if name == nil {
		t.Fatalf("expected a stored filename")
	}
	if *name != "site_20210615_103045.jpg" {
		t.Fatalf("unexpected filename %q", *name)
	}

	content, err := os.ReadFile(filepath.Join(dir, *name))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(content) != "fake-jpeg" {
		t.Fatalf("stored content mismatch")
	}
}

func TestSavePhotoRejectedExtensionIsSilentlyIgnored(t *testing.T) {
	dir := t.TempDir()
	svc := NewMediaService(config.Media{Dir: dir, AllowedExtensions: []string{"jpg"}})

	name, err := svc.SavePhoto(makeFileHeader(t, "malware.exe", []byte("nope")))
	if err != nil {
		t.Fatalf("disallowed extension must not error: %v", err)
	}
	if name != nil {
		t.Fatalf("disallowed extension must not store a file")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("media dir must stay empty")
	}
}
