package player

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// TrackInfo is the tag metadata of a media file.
type TrackInfo struct {
	Title     string
	Artist    string
	Album     string
	Year      int
	Cover     []byte
	CoverMIME string
}

// readTrackInfo reads tags from path. Files without tags get their base
// name as title.
func readTrackInfo(path string) *TrackInfo {
	info := &TrackInfo{Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))}

	f, err := os.Open(path)
	if err != nil {
		return info
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return info
	}
	if m.Title() != "" {
		info.Title = m.Title()
	}
	info.Artist = m.Artist()
	info.Album = m.Album()
	info.Year = m.Year()
	if pic := m.Picture(); pic != nil {
		info.Cover = pic.Data
		info.CoverMIME = pic.MIMEType
	}
	return info
}
