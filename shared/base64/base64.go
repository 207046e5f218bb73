package base64

import "strings"

const dataURIPrefix = "data:"

// GetContentType returns the media type of a base64 data URI, so
// "data:image/png;base64,..." yields "image/png". Anything that is not a
// base64 data URI yields the empty string.
func GetContentType(file string) string {
	rest, ok := strings.CutPrefix(file, dataURIPrefix)
	if !ok {
		return ""
	}

	mediaType, _, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return ""
	}

	return mediaType
}
