package types

import "errors"

var (
	// ErrInputNotFound reports a path that does not exist.
	ErrInputNotFound = errors.New("input not found")
	// ErrInputNotFileOrDir reports a path that is neither a regular file nor a directory.
	ErrInputNotFileOrDir = errors.New("input is neither a file nor a directory")
	// ErrRead reports file content that could not be read or decoded.
	ErrRead = errors.New("read failed")
	// ErrClipboardUnavailable reports a clipboard that could not be written.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	// ErrWrite reports a failure to save the output buffer.
	ErrWrite = errors.New("write failed")
)
