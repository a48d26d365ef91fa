// Package encoding normalizes uploaded CSV files to UTF-8. Spreadsheet
// exports show up in a mix of encodings (UTF-8 with or without BOM,
// UTF-16, legacy Windows codepages), so the importer runs every file
// through NewUTF8Reader before parsing.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// peekSize is enough bytes for BOM detection and charset heuristics.
const peekSize = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader wraps r in a reader that yields UTF-8, whatever the input
// encoding was. A UTF-8 BOM is stripped; UTF-16 is decoded; already-valid
// UTF-8 passes through; otherwise the charset is guessed with chardet and
// the reader falls back to Windows-1252, which decodes any byte sequence.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(peekSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if bytes.HasPrefix(head, bomUTF8) {
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	}

	if bytes.HasPrefix(head, bomUTF16LE) {
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), nil
	}

	if bytes.HasPrefix(head, bomUTF16BE) {
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if dec := detectDecoder(head); dec != nil {
		return transform.NewReader(br, dec), nil
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

func detectDecoder(head []byte) transform.Transformer {
	result, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil {
		return nil
	}

	switch result.Charset {
	case "ISO-8859-1", "windows-1252":
		return charmap.Windows1252.NewDecoder()
	case "ISO-8859-15":
		return charmap.ISO8859_15.NewDecoder()
	default:
		return nil
	}
}
