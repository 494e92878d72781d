// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"path/filepath"
	"strings"
)

// SafeResourcePath rejects resource paths that could redirect a request to
// an unintended destination: absolute URIs, scheme or host components,
// absolute filesystem-style paths, and traversal segments. The API gateway
// applies the same rule again before building a request (defense in depth).
func SafeResourcePath(field, path string) error {
	if strings.TrimSpace(path) == "" {
		return fieldErrorf(field, "is required")
	}
	if strings.Contains(path, "://") {
		return fieldErrorf(field, "must not contain a scheme or host")
	}
	if strings.HasPrefix(path, "/") {
		return fieldErrorf(field, "must be a relative resource path")
	}
	for _, segment := range strings.Split(path, "/") {
		if segment == ".." {
			return fieldErrorf(field, "must not contain traversal segments")
		}
	}
	return nil
}

// ResolveWithinDir resolves path against dir and verifies the result stays
// inside dir, following symlinks where the file already exists. It returns
// the resolved absolute path. This is the local-filesystem counterpart of
// [SafeResourcePath]: media uploads may only read files under the configured
// upload directory.
func ResolveWithinDir(field, dir, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fieldErrorf(field, "is required")
	}
	if strings.Contains(path, "..") {
		return "", fieldErrorf(field, "must not contain traversal segments")
	}

	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(dir, abs)
	}
	abs = filepath.Clean(abs)

	// Follow symlinks so a link inside the directory cannot point out of it.
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	resolvedDir := filepath.Clean(dir)
	if realDir, err := filepath.EvalSymlinks(resolvedDir); err == nil {
		resolvedDir = realDir
	}

	if !isPathWithinDir(abs, resolvedDir) {
		return "", fieldErrorf(field, "must resolve inside the upload directory %s", dir)
	}
	return abs, nil
}

// isPathWithinDir checks if path is within or equal to dir. The separator
// suffix comparison avoids false matches like /foo matching /foobar.
func isPathWithinDir(path, dir string) bool {
	path = filepath.Clean(path)
	dir = filepath.Clean(dir)

	pathWithSep := path + string(filepath.Separator)
	dirWithSep := dir + string(filepath.Separator)

	return path == dir || strings.HasPrefix(pathWithSep, dirWithSep)
}
