package types

// AtHomeServer is the response for GET /at-home/server/{chapterId}: the base
// URL of the MangaDex@Home node serving the chapter's images.
type AtHomeServer struct {
	BaseURL string `json:"baseUrl"`
}

// ImageQuality selects between full-quality and compressed chapter images
// when building MangaDex@Home page URLs.
type ImageQuality string

const (
	QualityData      ImageQuality = "data"
	QualityDataSaver ImageQuality = "data-saver"
)
