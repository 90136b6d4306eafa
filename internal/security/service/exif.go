package service

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/rwcarlsen/goexif/exif"

	securityDomain "github.com/leaflogic/securecore/internal/security/domain"
)

// exifExtractor implements PhotoMetadataExtractor using EXIF tags embedded
// in the image stream.
type exifExtractor struct {
	logger *slog.Logger
}

// NewPhotoMetadataExtractor creates an EXIF-backed PhotoMetadataExtractor.
func NewPhotoMetadataExtractor(logger *slog.Logger) PhotoMetadataExtractor {
	return &exifExtractor{logger: logger}
}

// Extract reads the supported EXIF tags from the image. Extraction is
// best-effort throughout: missing or unparsable tags default to zero values,
// and a stream that cannot be decoded at all yields all-default metadata.
// GPS coordinates are extracted but must never reach key derivation.
func (e *exifExtractor) Extract(r io.Reader) securityDomain.PhotoMetadata {
	x, err := exif.Decode(r)
	if err != nil {
		e.logger.Debug("photo metadata extraction failed, using defaults",
			slog.String("error", err.Error()),
		)
		return securityDomain.PhotoMetadata{}
	}

	metadata := securityDomain.PhotoMetadata{
		DateTime:    stringTag(x, exif.DateTime),
		Make:        stringTag(x, exif.Make),
		Model:       stringTag(x, exif.Model),
		Orientation: intTag(x, exif.Orientation),
		ImageWidth:  intTag(x, exif.PixelXDimension),
		ImageHeight: intTag(x, exif.PixelYDimension),
		Software:    stringTag(x, exif.Software),
	}

	// Some cameras record dimensions under the TIFF tags instead.
	if metadata.ImageWidth == 0 {
		metadata.ImageWidth = intTag(x, exif.ImageWidth)
	}
	if metadata.ImageHeight == 0 {
		metadata.ImageHeight = intTag(x, exif.ImageLength)
	}

	if lat, long, err := x.LatLong(); err == nil {
		metadata.GPSLatitude = strconv.FormatFloat(lat, 'f', -1, 64)
		metadata.GPSLongitude = strconv.FormatFloat(long, 'f', -1, 64)
	}

	return metadata
}

// stringTag reads a string-valued EXIF tag, returning "" when absent or unparsable.
func stringTag(x *exif.Exif, name exif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil {
		return ""
	}
	value, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return value
}

// intTag reads an integer-valued EXIF tag, returning 0 when absent or unparsable.
func intTag(x *exif.Exif, name exif.FieldName) int {
	tag, err := x.Get(name)
	if err != nil {
		return 0
	}
	value, err := tag.Int(0)
	if err != nil {
		return 0
	}
	return value
}
