package storage

import "strings"

// ExtractFilename pulls the object filename out of a public URL: strip any
// query string, take the last non-empty path segment, and require it to
// contain an extension dot. Returns false when no valid filename is found.
// Filenames are the blob store's addressing unit within a folder, so this
// rule must stay stable across every caller.
func ExtractFilename(rawURL string) (string, bool) {
	if rawURL == "" {
		return "", false
	}

	if i := strings.IndexByte(rawURL, '?'); i >= 0 {
		rawURL = rawURL[:i]
	}

	segments := strings.Split(rawURL, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == "" {
			continue
		}
		name := segments[i]
		if !strings.Contains(name, ".") {
			return "", false
		}
		return name, true
	}
	return "", false
}
