package internal

import (
	"path"
	"path/filepath"
	"strings"
)

var categoryDirs = map[ContentType]string{
	ContentPhoto: "photos",
	ContentAudio: "audio",
	ContentGif:   "gifs",
	ContentVideo: "videos",
}

// ResolveAttachment maps an export URI to the media file's expected location.
// Only the URI's last segment is kept. Stickers live under stickerRoot and
// resolve to "" when it is empty. Nothing is checked on disk.
func ResolveAttachment(rawURI string, category ContentType, mediaRoot, stickerRoot string) string {
	base := attachmentBase(rawURI)
	if base == "" {
		return ""
	}

	if category == ContentSticker {
		if stickerRoot == "" {
			return ""
		}
		return filepath.Join(stickerRoot, base)
	}

	dir, ok := categoryDirs[category]
	if !ok {
		return ""
	}
	return filepath.Join(mediaRoot, dir, base)
}

func attachmentBase(rawURI string) string {
	uri := strings.TrimSpace(rawURI)
	if uri == "" {
		return ""
	}
	base := path.Base(strings.ReplaceAll(uri, "\\", "/"))
	if base == "." || base == "/" || base == ".." {
		return ""
	}
	return base
}
