package utils

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SrcEncoding is detected encoding of input text.
type SrcEncoding int

// Supported encodings.
const (
	EncUnknown SrcEncoding = iota
	EncUTF8
	EncUTF16BigEndian
	EncUTF16LittleEndian
)

func (e SrcEncoding) String() string {
	switch e {
	case EncUTF8:
		return "UTF-8"
	case EncUTF16BigEndian:
		return "UTF-16BE"
	case EncUTF16LittleEndian:
		return "UTF-16LE"
	}
	return "unknown"
}

// DetectUTF looks at BOM. No BOM means UTF-8 - analyzers cannot handle anything else anyway.
func DetectUTF(buf []byte) SrcEncoding {
	switch {
	case bytes.HasPrefix(buf, []byte{0xFE, 0xFF}):
		return EncUTF16BigEndian
	case bytes.HasPrefix(buf, []byte{0xFF, 0xFE}):
		return EncUTF16LittleEndian
	}
	return EncUTF8
}

// DetectFileUTF detects encoding of the file and rewinds it.
func DetectFileUTF(file *os.File) (SrcEncoding, error) {

	buf := make([]byte, 2)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return EncUnknown, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return EncUnknown, err
	}
	return DetectUTF(buf[:n]), nil
}

// SelectReader returns reader which produces UTF-8 without BOM.
func SelectReader(r io.Reader, enc SrcEncoding) io.Reader {
	switch enc {
	case EncUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder())
	case EncUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder())
	}
	return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
}

// ReadText reads whole input detecting its encoding.
func ReadText(r io.Reader) (string, error) {

	br := bufio.NewReader(r)
	head, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return "", err
	}
	data, err := io.ReadAll(SelectReader(br, DetectUTF(head)))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
