package enums

// ImageType labels an embedded vendor image.
type ImageType string

const (
	ImageTypeThumbnail ImageType = "THUMBNAIL"
	ImageTypePortfolio ImageType = "PORTFOLIO"
)

func (t ImageType) IsValid() bool {
	switch t {
	case ImageTypeThumbnail, ImageTypePortfolio:
		return true
	}
	return false
}
