package domain

import "strings"

// StorageKey is a vendor storage file key of the form
// prefix/fileId/fileName.
type StorageKey string

// Valid reports whether the key has at least three slash-delimited
// segments.
func (k StorageKey) Valid() bool {
	return len(k.segments()) >= 3
}

// FileID returns the second segment of the key.
func (k StorageKey) FileID() string {
	seg := k.segments()
	if len(seg) < 3 {
		return ""
	}
	return seg[1]
}

// FileName returns the third segment of the key.
func (k StorageKey) FileName() string {
	seg := k.segments()
	if len(seg) < 3 {
		return ""
	}
	return seg[2]
}

func (k StorageKey) segments() []string {
	if k == "" {
		return nil
	}
	return strings.Split(string(k), "/")
}
