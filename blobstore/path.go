package blobstore

import (
	"errors"
	"strings"
)

// ErrInvalidPath is returned when a path cannot be split into container and key.
var ErrInvalidPath = errors.New("invalid blob path")

// ParsePath splits a remote path into container and key.
//
// The first non-empty "/"-delimited segment names the container, the
// remaining segments joined with "/" name the key.
func ParsePath(path string) (container, key string, err error) {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) < 2 {
		return "", "", ErrInvalidPath
	}
	return segments[0], strings.Join(segments[1:], "/"), nil
}
