// Package document reads and writes the paragraph text of DOCX documents.
//
// Only the text of body-level paragraphs is handled. Reading opens the zip
// container, decodes word/document.xml and returns one string per paragraph in
// document order. Writing produces a minimal WordprocessingML package holding one
// paragraph per line.
//
// # Usage
//
//	paragraphs, err := document.ReadParagraphsBytes(data)
//	out, err := document.WriteParagraphs([]string{"L1: first", "L2: second"})
package document
