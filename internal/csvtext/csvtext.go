// Package csvtext tokenizes raw comma-separated text. It is deliberately
// looser than encoding/csv: spreadsheet exports in the wild carry ragged
// row widths, leading metadata lines, and the occasional unterminated
// quote, and the import pipeline needs fields back rather than an error.
// Output still goes through encoding/csv; only ingestion lives here.
package csvtext

import "strings"

// TokenizeLine splits one line on commas outside double-quoted spans.
// A doubled quote inside a quoted span is an escaped literal quote. An
// unterminated quote is treated as closing at end of line.
func TokenizeLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// Document is tokenized CSV text split into a header row and data rows.
type Document struct {
	Header []string
	Rows   [][]string
}

// Tokenize splits text into lines, drops blank lines, and tokenizes each
// remaining line. headerKeywords selects the header row: the first row
// containing any keyword (case-insensitive) wins, so leading metadata
// lines are skipped. With no keywords, the first non-blank row is the
// header. Rows before the header are discarded; ok is false when no
// header was found.
func Tokenize(text string, headerKeywords ...string) (doc Document, ok bool) {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, TokenizeLine(line))
	}
	if len(rows) == 0 {
		return Document{}, false
	}

	headerIdx := 0
	if len(headerKeywords) > 0 {
		headerIdx = findHeaderRow(rows, headerKeywords)
		if headerIdx < 0 {
			return Document{}, false
		}
	}

	return Document{
		Header: rows[headerIdx],
		Rows:   rows[headerIdx+1:],
	}, true
}

func findHeaderRow(rows [][]string, keywords []string) int {
	for i, row := range rows {
		for _, cell := range row {
			cell = strings.ToLower(strings.TrimSpace(cell))
			for _, kw := range keywords {
				if strings.Contains(cell, strings.ToLower(kw)) {
					return i
				}
			}
		}
	}
	return -1
}
