package docparse

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrEmptyDocument     = errors.New("document has no extractable text")
)

// ExtractText converts an uploaded resume/LinkedIn export into plain text.
// Supported formats: "pdf", "docx" (matched case-insensitively, with or
// without a leading dot).
func ExtractText(data []byte, format string) (string, error) {
	switch normalizeFormat(format) {
	case "pdf":
		return extractPDF(data)
	case "docx":
		return extractDOCX(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func normalizeFormat(format string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	f = strings.TrimPrefix(f, ".")
	return f
}

func extractPDF(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf failed: %w", err)
	}
	plainReader, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text failed: %w", err)
	}
	out, err := io.ReadAll(plainReader)
	if err != nil {
		return "", fmt.Errorf("read pdf text failed: %w", err)
	}
	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

// DOCX is a zip archive; the visible text lives in word/document.xml as
// <w:t> runs separated by <w:p> paragraphs.
func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx failed: %w", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("open docx body failed: %w", err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("read docx body failed: %w", err)
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("%w: missing word/document.xml", ErrUnsupportedFormat)
	}

	text, err := docxBodyText(docXML)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func docxBodyText(docXML []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(docXML))
	var sb strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse docx xml failed: %w", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				var run string
				if err := decoder.DecodeElement(&run, &el); err != nil {
					return "", fmt.Errorf("parse docx run failed: %w", err)
				}
				sb.WriteString(run)
			}
		case xml.EndElement:
			if el.Name.Local == "p" {
				sb.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
