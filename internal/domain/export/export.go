package export

import (
	"bytes"
	"strings"
)

// Separator is the field separator used in exported files. Semicolons
// keep the files usable in locale-sensitive spreadsheet tools.
const Separator = ";"

// ContentType is the MIME type for serving an exported table.
const ContentType = "text/csv; charset=utf-8"

// bom is the UTF-8 byte-order marker prefixed to every export so that
// spreadsheet tools detect the encoding.
var bom = []byte{0xEF, 0xBB, 0xBF}

// Table is a fully materialized delimited export: a header row of column
// keys plus one row per (already filtered) record. Building a Table is
// pure; delivering it as a download is the HTTP layer's concern.
type Table struct {
	Filename string
	Header   []string
	Rows     [][]string
}

// Encode renders the table as semicolon-separated text with a UTF-8 BOM.
// Every field is wrapped in double quotes; embedded quotes are doubled.
// PRE: all rows have len(Header) fields
// POST: output has len(Rows)+1 lines
func (t *Table) Encode() []byte {
	var buf bytes.Buffer
	buf.Write(bom)
	buf.WriteString(strings.Join(t.Header, Separator))
	for _, row := range t.Rows {
		buf.WriteByte('\n')
		for i, field := range row {
			if i > 0 {
				buf.WriteString(Separator)
			}
			buf.WriteByte('"')
			buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
			buf.WriteByte('"')
		}
	}
	return buf.Bytes()
}
