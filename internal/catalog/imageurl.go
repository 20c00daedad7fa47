package catalog

import "fmt"

// Image sizes served by the CDN
const (
	ImageSmall  = "small"
	ImageMedium = "medium"
	ImageBig    = "big"
	ImageLarge  = "large"
)

var sizePrefix = map[string]string{
	ImageSmall:  "s",
	ImageMedium: "m",
	ImageBig:    "b",
	ImageLarge:  "l",
}

// Images derives CDN URLs for banner and product images
type Images struct {
	BaseURL string
}

// BannerURL returns the CDN URL for a banner image
func (i Images) BannerURL(image string) string {
	return fmt.Sprintf("%s/ib.store.banner/bnr-%s", i.BaseURL, image)
}

// ProductURL returns the CDN URL for a product photo at the given size.
// Unknown or empty sizes fall back to medium.
func (i Images) ProductURL(photo, size string) string {
	prefix, ok := sizePrefix[size]
	if !ok {
		size = ImageMedium
		prefix = "m"
	}
	return fmt.Sprintf("%s/ib.item.image.%s/%s-%s", i.BaseURL, size, prefix, photo)
}
