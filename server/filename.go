package server

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// allowedTypes maps accepted upload extensions to their MIME type.
var allowedTypes = map[string]string{
	"png": "image/png",
	"gif": "image/gif",
	"bmp": "image/bmp",
}

// uploadType returns the MIME type for an uploaded filename, or "" if the
// extension is not accepted.
func uploadType(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	return allowedTypes[strings.ToLower(filename[i+1:])]
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename reduces a client supplied filename to a flat, ASCII only
// name. Accented letters lose their accents, path separators and whitespace
// runs become a single '_', anything outside letters, digits, '.', '-' and
// '_' is removed, and dots and underscores are trimmed from both ends.
func SecureFilename(name string) string {
	var sb strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if r < unicode.MaxASCII {
			sb.WriteRune(r)
		}
	}

	name = strings.NewReplacer("/", " ", "\\", " ").Replace(sb.String())
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")

	return strings.Trim(name, "._")
}

// downloadName returns the attachment name for the converted upload.
func downloadName(upload string) string {
	name := SecureFilename(upload)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		name = "pattern"
	}
	return name + ".txt"
}
