// Package domain defines the core types of the security subsystem: photo
// metadata, data types, session state, and operation results.
package domain

// PhotoMetadata holds the EXIF attributes extracted from a user-supplied photo.
//
// The metadata adds entropy to enhanced key derivation. All fields default to
// their zero value when a tag is absent or unparsable. GPS coordinates are
// extracted for completeness but are never folded into any derived key; they
// exist only so callers can display or audit what the photo carries.
//
// Instances are built once per extraction, are immutable by convention, and
// are discarded after key derivation. They are never persisted.
type PhotoMetadata struct {
	DateTime     string
	Make         string
	Model        string
	Orientation  int
	ImageWidth   int
	ImageHeight  int
	Software     string
	GPSLatitude  string
	GPSLongitude string
}

// IsZero reports whether no metadata field carries a value.
func (m PhotoMetadata) IsZero() bool {
	return m == PhotoMetadata{}
}
