package mpris

import (
	"os"
	"path/filepath"
	"strings"
)

// coverNames lists common artwork filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
}

// FindCoverArt looks for artwork next to a media file. An image sharing the
// media file's base name wins over the generic names.
func FindCoverArt(mediaPath string) string {
	if mediaPath == "" {
		return ""
	}
	dir := filepath.Dir(mediaPath)
	stem := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))

	candidates := make([]string, 0, len(coverNames)+3)
	for _, ext := range []string{".jpg", ".png", ".jpeg"} {
		candidates = append(candidates, stem+ext)
	}
	candidates = append(candidates, coverNames...)

	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
