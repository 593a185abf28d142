package source

import (
	"bytes"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func trimBOM(b []byte) []byte {
	return bytes.TrimPrefix(b, utf8BOM)
}

func bytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}

// sniffComma picks ';' when the header line has more semicolons than commas.
func sniffComma(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}
