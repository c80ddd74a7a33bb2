// FILE: pkg/extract/extractor.go
// PURPOSE: Text extraction and upload validation for supported file types

package extract

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

const (
	FileTypePDF = "pdf"
	FileTypeTXT = "txt"

	MaxFileSizeMB = 10
	maxFileSize   = MaxFileSizeMB * 1024 * 1024
)

// FileType returns the normalized type for a filename, or an error for
// unsupported extensions.
func FileType(filename string) (string, error) {
	parts := strings.Split(strings.ToLower(filename), ".")
	extension := parts[len(parts)-1]

	switch extension {
	case "pdf":
		return FileTypePDF, nil
	case "txt":
		return FileTypeTXT, nil
	default:
		return "", fmt.Errorf("unsupported file extension: .%s", extension)
	}
}

// ValidateFile checks the extension and size limits before extraction.
func ValidateFile(filename string, fileSize int64) error {
	if _, err := FileType(filename); err != nil {
		return err
	}
	if fileSize > maxFileSize {
		return fmt.Errorf("file size (%.2f MB) exceeds maximum allowed size (%d MB)",
			float64(fileSize)/1024/1024, MaxFileSizeMB)
	}
	if fileSize == 0 {
		return fmt.Errorf("file is empty")
	}
	return nil
}

// ExtractText pulls plain text out of the uploaded content and returns it
// with the detected file type.
func ExtractText(content []byte, filename string) (string, string, error) {
	fileType, err := FileType(filename)
	if err != nil {
		return "", "", err
	}

	var text string
	switch fileType {
	case FileTypePDF:
		text, err = extractPDF(content)
	case FileTypeTXT:
		text, err = extractTXT(content)
	}
	if err != nil {
		return "", "", err
	}
	return text, fileType, nil
}

func extractPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("error extracting text from PDF: %w", err)
	}

	var parts []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("error extracting text from PDF page %d: %w", i, err)
		}
		if strings.TrimSpace(pageText) != "" {
			parts = append(parts, pageText)
		}
	}

	fullText := strings.Join(parts, "\n\n")
	if strings.TrimSpace(fullText) == "" {
		return "", fmt.Errorf("no text could be extracted from PDF")
	}
	return fullText, nil
}

// extractTXT decodes as UTF-8, falling back to Latin-1 for legacy files.
func extractTXT(content []byte) (string, error) {
	var text string
	if utf8.Valid(content) {
		text = string(content)
	} else {
		runes := make([]rune, len(content))
		for i, b := range content {
			runes[i] = rune(b)
		}
		text = string(runes)
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text file is empty")
	}
	return text, nil
}
