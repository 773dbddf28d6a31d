package storage

import (
	"bytes"
	"path/filepath"
	"strings"
)

var compressedExtensions = map[string]string{
	".gz":  "gzip",
	".bz2": "bzip2",
	".xz":  "xz",
	".zst": "zstd",
	".zck": "zchunk",
}

var compressedMagic = []struct {
	format string
	magic  []byte
}{
	{"gzip", []byte{0x1f, 0x8b}},
	{"bzip2", []byte("BZh")},
	{"xz", []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}},
	{"zstd", []byte{0x28, 0xb5, 0x2f, 0xfd}},
	{"zchunk", []byte{0x00, 'Z', 'C', 'K', '1'}},
}

func compressedExtension(location string) (string, bool) {
	format, ok := compressedExtensions[strings.ToLower(filepath.Ext(location))]
	return format, ok
}

func compressedContent(data []byte) (string, bool) {
	for _, m := range compressedMagic {
		if bytes.HasPrefix(data, m.magic) {
			return m.format, true
		}
	}
	return "", false
}
