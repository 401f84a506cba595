package core

// SourceType indicates where the engine reads its media from.
type SourceType string

const (
	SourceImage SourceType = "image"
	SourceDisc  SourceType = "disc"
	SourceNone  SourceType = "none"
)

// ParseSourceType maps a stored value back to a SourceType. Unknown values
// become SourceNone.
func ParseSourceType(s string) SourceType {
	switch SourceType(s) {
	case SourceImage, SourceDisc:
		return SourceType(s)
	default:
		return SourceNone
	}
}

// MediaSource is the media currently active in the engine.
type MediaSource struct {
	Type SourceType `json:"type"`
	Path string     `json:"path"`
}

// IsImage returns true if the source is a disc image with a path.
func (s MediaSource) IsImage() bool {
	return s.Type == SourceImage && s.Path != ""
}
