// Package version reads the one-line version stamp shipped next to the binary.
package version

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the name of the version stamp file
const FileName = ".version"

// MissingMessage is the diagnostic callers may log when no stamp is found
const MissingMessage = "No version information file '.version' found"

// Read returns the first line of the file at path with trailing whitespace
// removed. ok is false if the file cannot be read.
func Read(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false
	}
	return strings.TrimRight(line, " \t\r\n"), true
}

// DefaultPath is the stamp location next to the running executable
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// Information reads the stamp from DefaultPath
func Information() (string, bool) {
	return Read(DefaultPath())
}
