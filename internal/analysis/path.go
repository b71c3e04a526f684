package analysis

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/RacoonMediaServer/rms-gallery/internal/model"
)

const videoExtension = ".mp4"

var (
	labelSeparators   = regexp.MustCompile(`[-_]`)
	trailingExtension = regexp.MustCompile(`\.\w+$`)
)

var mediaExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	".bmp": true, ".heic": true, ".mp4": true,
}

// only .mp4 is rendered as video, other files (even without extension) are images
func detectKind(fileName string) model.MediaKind {
	if strings.HasSuffix(strings.ToLower(fileName), videoExtension) {
		return model.MediaVideo
	}
	return model.MediaImage
}

func extractLabel(fileName string) string {
	label := labelSeparators.ReplaceAllString(fileName, " ")
	return trailingExtension.ReplaceAllString(label, "")
}

// IsMediaFile reports whether the file looks like something the gallery can show
func IsMediaFile(fileName string) bool {
	if strings.HasPrefix(filepath.Base(fileName), ".") {
		return false
	}
	return mediaExtensions[strings.ToLower(filepath.Ext(fileName))]
}
