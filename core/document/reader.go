package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const bodyPart = "word/document.xml"

// ReadParagraphs returns the text of every body-level paragraph in document order.
func ReadParagraphs(r io.ReaderAt, size int64) ([]string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	for _, f := range zr.File {
		if f.Name != bodyPart {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to open %s: %v", ErrInvalidDocument, bodyPart, err)
		}
		defer rc.Close()

		return parseBody(rc)
	}

	return nil, ErrMissingBody
}

// ReadParagraphsBytes is ReadParagraphs over an in-memory document.
func ReadParagraphsBytes(data []byte) ([]string, error) {
	return ReadParagraphs(bytes.NewReader(data), int64(len(data)))
}

// parseBody walks the document XML. Paragraphs nested in tables or text boxes are
// not direct children of w:body and are ignored.
func parseBody(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var (
		paragraphs []string
		stack      []string
		current    strings.Builder
		inPara     bool
		inText     bool
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidDocument, bodyPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			parent := ""
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			stack = append(stack, name)

			switch {
			case name == "p" && parent == "body":
				inPara = true
				current.Reset()
			case !inPara:
			case name == "t":
				inText = true
			case name == "tab":
				current.WriteByte('\t')
			case name == "br" || name == "cr":
				current.WriteByte('\n')
			}

		case xml.CharData:
			if inText {
				current.Write(t)
			}

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				parent := ""
				if len(stack) > 0 {
					parent = stack[len(stack)-1]
				}
				if inPara && parent == "body" {
					paragraphs = append(paragraphs, current.String())
					inPara = false
				}
			}
		}
	}

	return paragraphs, nil
}
