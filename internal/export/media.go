package export

import (
	"path/filepath"

	"github.com/iksnae/messenger-export/internal"
)

// MediaRelocator is implemented by exporters that link attachments by path.
// Relative attachment paths are relative to the working directory; the
// exporter rewrites them against dir, the directory the output is saved in.
type MediaRelocator interface {
	SetBaseDir(dir string)
}

// mediaLinks returns the attachment paths of msg as seen from baseDir.
// Text content is returned unchanged.
func mediaLinks(msg internal.Message, baseDir string) []string {
	if !msg.ContentType.IsMedia() || baseDir == "" {
		return msg.Content
	}
	links := make([]string, 0, len(msg.Content))
	for _, p := range msg.Content {
		links = append(links, relativeTo(p, baseDir))
	}
	return links
}

// relativeTo rewrites a working directory relative path so it resolves from
// baseDir. Empty and absolute paths are kept.
func relativeTo(p, baseDir string) string {
	if p == "" || baseDir == "" || filepath.IsAbs(p) {
		return p
	}
	absPath, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return p
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return absPath
	}
	return rel
}
