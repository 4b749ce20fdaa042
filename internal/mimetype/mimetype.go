// Package mimetype maps file extensions to content types.
package mimetype

import (
	"path/filepath"
	"strings"
)

// Default is returned for unknown or missing extensions.
const Default = "application/octet-stream"

var byExtension = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".txt":  "text/plain",
	".png":  "image/png",
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/msword",
}

// FromName returns the content type for the extension of name.
// Matching is case-insensitive.
func FromName(name string) string {
	if ct, ok := byExtension[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return Default
}
