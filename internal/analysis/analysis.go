package analysis

import "github.com/RacoonMediaServer/rms-gallery/internal/model"

// Result holds everything the gallery derives from a file name
type Result struct {
	Kind    model.MediaKind
	Label   string
	Recency Recency
}

// Analyze derives kind, caption and recency key from a file name
func Analyze(fileName string) Result {
	return Result{
		Kind:    detectKind(fileName),
		Label:   extractLabel(fileName),
		Recency: RecencyKey(fileName),
	}
}

// Describe makes media descriptor of the file
func Describe(fileName string) model.Media {
	return model.NewMedia(detectKind(fileName), fileName, extractLabel(fileName))
}
