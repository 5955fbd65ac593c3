package textract

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
)

func TestSupported(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"standup.txt", true},
		{"Standup.TXT", true},
		{"minutes.pdf", true},
		{"notes.docx", true},
		{"recording.mp3", false},
		{"noextension", false},
	}
	for _, tc := range cases {
		if got := Supported(tc.filename); got != tc.want {
			t.Errorf("Supported(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}

func TestExtractPlainText(t *testing.T) {
	got, err := Extract("meeting.txt", []byte("  hello team\nnext steps  "))
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if got != "hello team\nnext steps" {
		t.Errorf("unexpected text: %q", got)
	}
}

func TestExtractPlainTextInvalidUTF8(t *testing.T) {
	got, err := Extract("meeting.txt", []byte{'o', 'k', 0xff, '!'})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if got != "ok�!" {
		t.Errorf("unexpected text: %q", got)
	}
}

func TestExtractUnsupported(t *testing.T) {
	_, err := Extract("meeting.mp4", []byte("data"))
	if !errors.Is(err, entities.ErrUnsupportedFileType) {
		t.Errorf("expected ErrUnsupportedFileType, got %v", err)
	}
}

func TestExtractEmpty(t *testing.T) {
	_, err := Extract("meeting.txt", nil)
	if !errors.Is(err, entities.ErrEmptyFileContent) {
		t.Errorf("expected ErrEmptyFileContent, got %v", err)
	}

	_, err = Extract("meeting.txt", []byte("   \n\t "))
	if !errors.Is(err, entities.ErrEmptyFileContent) {
		t.Errorf("expected ErrEmptyFileContent for whitespace-only, got %v", err)
	}
}

func TestExtractDOCX(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Sprint planning </w:t></w:r><w:r><w:t>notes</w:t></w:r></w:p>
    <w:p><w:r><w:t>Bob will draft the budget</w:t></w:r></w:p>
  </w:body>
</w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("zip create: %v", err)
	}
	if _, err := f.Write([]byte(doc)); err != nil {
		t.Fatalf("zip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}

	got, err := Extract("notes.docx", buf.Bytes())
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	want := "Sprint planning notes\nBob will draft the budget"
	if got != want {
		t.Errorf("unexpected text:\n got %q\nwant %q", got, want)
	}
}

func TestExtractDOCXNotZip(t *testing.T) {
	_, err := Extract("notes.docx", []byte("not a zip archive"))
	if !errors.Is(err, entities.ErrEmptyFileContent) {
		t.Errorf("expected ErrEmptyFileContent, got %v", err)
	}
}
