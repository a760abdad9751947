package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const (
	documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	documentFooter = `<w:sectPr/></w:body></w:document>`
)

// MIMEType is the content type of the documents produced by WriteParagraphs.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// WriteParagraphs builds a new DOCX document with one paragraph per entry.
func WriteParagraphs(paragraphs []string) ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	parts := []struct {
		name string
		body []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(relsXML)},
		{bodyPart, renderBody(paragraphs)},
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", part.name, err)
		}
		if _, err := w.Write(part.body); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize document: %w", err)
	}

	return buf.Bytes(), nil
}

func renderBody(paragraphs []string) []byte {
	var b bytes.Buffer
	b.WriteString(documentHeader)
	for _, p := range paragraphs {
		b.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		_ = xml.EscapeText(&b, []byte(p))
		b.WriteString(`</w:t></w:r></w:p>`)
	}
	b.WriteString(documentFooter)
	return b.Bytes()
}
