// Package textract extracts plain text transcripts from uploaded
// meeting files. Supported formats are plain text, PDF and DOCX.
package textract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
)

var supportedExtensions = map[string]struct{}{
	".txt":  {},
	".pdf":  {},
	".docx": {},
}

// Supported reports whether the file extension is an accepted upload format.
func Supported(filename string) bool {
	_, ok := supportedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// Extract returns the plain text content of an uploaded file, dispatching
// on its extension.
func Extract(filename string, data []byte) (string, error) {
	if !Supported(filename) {
		return "", entities.ErrUnsupportedFileType
	}
	if len(data) == 0 {
		return "", entities.ErrEmptyFileContent
	}

	var text string
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		text, err = extractPlain(data)
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", entities.ErrEmptyFileContent
	}
	return text, nil
}

func extractPlain(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	// Not valid UTF-8: replace undecodable bytes rather than reject the file.
	return strings.ToValidUTF8(string(data), "�"), nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", entities.ErrEmptyFileContent
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", entities.ErrEmptyFileContent
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", entities.ErrEmptyFileContent
	}
	return buf.String(), nil
}

// docx text lives in word/document.xml; paragraphs become lines and
// every w:t run contributes its character data.
type docxDocument struct {
	Body docxBody `xml:"body"`
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"p"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Texts []string `xml:"t"`
}

func extractDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", entities.ErrEmptyFileContent
	}

	var docFile *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", entities.ErrEmptyFileContent
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", entities.ErrEmptyFileContent
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", entities.ErrEmptyFileContent
	}

	var doc docxDocument
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return "", entities.ErrEmptyFileContent
	}

	var lines []string
	for _, p := range doc.Body.Paragraphs {
		var sb strings.Builder
		for _, r := range p.Runs {
			for _, t := range r.Texts {
				sb.WriteString(t)
			}
		}
		if line := sb.String(); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
