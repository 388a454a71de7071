package utils

import (
	"bytes"
	"os"
	"unicode/utf8"
)

// IsBinary reports whether the provided byte slice appears to contain binary data.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if !utf8.Valid(data) {
		return true
	}
	return bytes.IndexByte(data, 0) >= 0
}

// ReadTextFile returns the file content when it is valid UTF-8 text.
// The boolean result is false for unreadable or binary files.
//
// #nosec G304
func ReadTextFile(path string) (string, bool, error) {
	data, readError := os.ReadFile(path)
	if readError != nil {
		return "", false, readError
	}
	if IsBinary(data) {
		return "", false, nil
	}
	return string(data), true, nil
}
