package workspace

import (
	"bytes"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadContent reads a note file as text. Valid UTF-8 is returned as is;
// anything else is decoded as Windows-1252.
func (m *Manager) ReadContent(path string) (string, error) {
	data, err := m.ReadRaw(path)
	if err != nil {
		return "", err
	}
	return decode(data)
}

// ReadRaw returns the bytes of a note file without decoding them.
func (m *Manager) ReadRaw(path string) ([]byte, error) {
	path, err := m.within(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileSystemError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

func decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	// A stray BOM is not part of legacy text.
	out, err := charmap.Windows1252.NewDecoder().Bytes(bytes.TrimPrefix(data, utf8BOM))
	if err != nil {
		return "", &FileSystemError{Op: "decode", Err: err}
	}
	return string(out), nil
}

// WriteContent replaces the content of a note file.
func (m *Manager) WriteContent(path, content string) error {
	return m.WriteRaw(path, []byte(content))
}

// WriteRaw replaces the bytes of a note file. The data goes to a hidden temp
// file in the same directory first, then is renamed over the target.
func (m *Manager) WriteRaw(path string, data []byte) error {
	path, err := m.within(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".write-*.tmp")
	if err != nil {
		return &FileSystemError{Op: "write", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return &FileSystemError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return &FileSystemError{Op: "write", Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return &FileSystemError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return &FileSystemError{Op: "write", Path: path, Err: err}
	}
	return nil
}
