// Package extract turns uploaded documents into plain text that can be used
// as a quiz topic. Only the formats the upload form accepts are handled:
// plain text and Word (.docx). Legacy binary .doc files are accepted by the
// form but cannot be read here.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const (
	MimeDoc  = "application/msword"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

var (
	ErrUnsupportedType = errors.New("only .doc, .docx, and .txt files are allowed")
	ErrEmptyDocument   = errors.New("document contains no text")
)

type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindDocx
	KindDoc
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "txt"
	case KindDocx:
		return "docx"
	case KindDoc:
		return "doc"
	default:
		return "unknown"
	}
}

// Detect classifies a file by its declared MIME type, falling back to the
// extension when the browser sends nothing useful.
func Detect(name, mimeType string) Kind {
	if mt, _, err := mime.ParseMediaType(mimeType); err == nil {
		switch strings.ToLower(mt) {
		case MimeText:
			return KindText
		case MimeDocx:
			return KindDocx
		case MimeDoc:
			return KindDoc
		}
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return KindText
	case ".docx":
		return KindDocx
	case ".doc":
		return KindDoc
	}
	return KindUnknown
}

func Allowed(name, mimeType string) bool {
	return Detect(name, mimeType) != KindUnknown
}

// Text extracts the document text. The returned string is trimmed and never
// empty when err is nil.
func Text(name, mimeType string, data []byte) (string, error) {
	kind := Detect(name, mimeType)
	if kind == KindUnknown {
		return "", ErrUnsupportedType
	}
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}

	var (
		text string
		err  error
	)
	switch {
	case isZip(data):
		// Word files are often mislabelled; trust the container over the name.
		text, err = extractDocx(data)
	case kind == KindText:
		text, err = decodeText(data)
	case kind == KindDoc:
		return "", fmt.Errorf("%w: legacy .doc files must be saved as .docx", ErrUnsupportedType)
	default:
		return "", fmt.Errorf("file claims docx but is not a valid zip container: name=%s", name)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func isZip(b []byte) bool {
	return len(b) >= 4 && b[0] == 'P' && b[1] == 'K' && b[2] == 3 && b[3] == 4
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeText reads UTF-8, and falls back to Windows-1252 for files saved by
// older editors.
func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if bytes.IndexByte(data, 0) >= 0 {
		return "", fmt.Errorf("%w: binary content in text file", ErrUnsupportedType)
	}
	if utf8.Valid(data) {
		return normalizeNewlines(string(data)), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}
	return normalizeNewlines(string(decoded)), nil
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}

func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening docx: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("%w: zip does not contain word/document.xml", ErrUnsupportedType)
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("opening word/document.xml: %w", err)
	}
	defer rc.Close()

	return paragraphs(rc)
}

// paragraphs walks WordprocessingML and keeps <w:t> runs, one line per <w:p>.
func paragraphs(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var (
		out    strings.Builder
		line   strings.Builder
		inText bool
	)
	flush := func() {
		if s := strings.TrimRight(line.String(), " \t"); s != "" {
			out.WriteString(s)
			out.WriteByte('\n')
		}
		line.Reset()
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parsing word/document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				line.WriteByte('\t')
			case "br", "cr":
				line.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				flush()
			}
		case xml.CharData:
			if inText {
				line.Write(t)
			}
		}
	}
	flush()

	return out.String(), nil
}
