package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	securityDomain "github.com/leaflogic/securecore/internal/security/domain"
)

func testMetadata() *securityDomain.PhotoMetadata {
	return &securityDomain.PhotoMetadata{
		DateTime:    "2024:06:01 12:30:00",
		Make:        "ACME",
		Model:       "Phone-9",
		Orientation: 6,
		ImageWidth:  4000,
		ImageHeight: 3000,
		Software:    "CameraApp 2.1",
	}
}

func TestKeyDeriver_DeriveEnhancedKey(t *testing.T) {
	deriver := NewKeyDeriver(NewSHA256Hasher())
	fingerprint := "abc123fingerprint"

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		first := deriver.DeriveEnhancedKey(fingerprint, testMetadata(), "salt")
		second := deriver.DeriveEnhancedKey(fingerprint, testMetadata(), "salt")
		assert.Equal(t, first, second)
		assert.Len(t, first, 64)
	})

	t.Run("nil metadata yields device-only key", func(t *testing.T) {
		withPhoto := deriver.DeriveEnhancedKey(fingerprint, testMetadata(), "salt")
		withoutPhoto := deriver.DeriveEnhancedKey(fingerprint, nil, "salt")
		assert.NotEqual(t, withPhoto, withoutPhoto)
		assert.Len(t, withoutPhoto, 64)
	})

	t.Run("each metadata field influences the key", func(t *testing.T) {
		base := deriver.DeriveEnhancedKey(fingerprint, testMetadata(), "salt")

		mutations := map[string]func(*securityDomain.PhotoMetadata){
			"date-time":   func(m *securityDomain.PhotoMetadata) { m.DateTime = "2024:06:02 08:00:00" },
			"make":        func(m *securityDomain.PhotoMetadata) { m.Make = "OTHER" },
			"model":       func(m *securityDomain.PhotoMetadata) { m.Model = "Phone-10" },
			"orientation": func(m *securityDomain.PhotoMetadata) { m.Orientation = 1 },
			"width":       func(m *securityDomain.PhotoMetadata) { m.ImageWidth = 1024 },
			"height":      func(m *securityDomain.PhotoMetadata) { m.ImageHeight = 768 },
			"software":    func(m *securityDomain.PhotoMetadata) { m.Software = "CameraApp 3.0" },
		}

		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				metadata := testMetadata()
				mutate(metadata)
				assert.NotEqual(t, base, deriver.DeriveEnhancedKey(fingerprint, metadata, "salt"))
			})
		}
	})

	t.Run("gps coordinates never influence the key", func(t *testing.T) {
		base := deriver.DeriveEnhancedKey(fingerprint, testMetadata(), "salt")

		located := testMetadata()
		located.GPSLatitude = "48.8566"
		located.GPSLongitude = "2.3522"
		assert.Equal(t, base, deriver.DeriveEnhancedKey(fingerprint, located, "salt"))
	})

	t.Run("empty salt is omitted entirely", func(t *testing.T) {
		salted := deriver.DeriveEnhancedKey(fingerprint, testMetadata(), "salt")
		unsalted := deriver.DeriveEnhancedKey(fingerprint, testMetadata(), "")
		assert.NotEqual(t, salted, unsalted)
	})

	t.Run("fingerprint influences the key", func(t *testing.T) {
		first := deriver.DeriveEnhancedKey("device-a", testMetadata(), "salt")
		second := deriver.DeriveEnhancedKey("device-b", testMetadata(), "salt")
		assert.NotEqual(t, first, second)
	})
}

func TestKeyDeriver_ValidateStrength(t *testing.T) {
	deriver := NewKeyDeriver(NewSHA256Hasher())

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"hex digest passes", NewSHA256Hasher().SumString("x"), true},
		{"exactly 32 chars with digit and letter", "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4", true},
		{"too short", "a1b2c3", false},
		{"empty", "", false},
		{"digits only", strings.Repeat("1234567890", 4), false},
		{"letters only", strings.Repeat("abcdefghij", 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriver.ValidateStrength(tt.key))
		})
	}
}

func TestKeyDeriver_DeriveStorageKey(t *testing.T) {
	deriver := NewKeyDeriver(NewSHA256Hasher())
	enhanced := deriver.DeriveEnhancedKey("fingerprint", nil, "")

	t.Run("32 characters and deterministic", func(t *testing.T) {
		key := deriver.DeriveStorageKey(enhanced, securityDomain.HealthMetrics, "alice")
		assert.Len(t, key, 32)
		assert.Equal(t, key, deriver.DeriveStorageKey(enhanced, securityDomain.HealthMetrics, "alice"))
	})

	t.Run("distinct per data type and user", func(t *testing.T) {
		health := deriver.DeriveStorageKey(enhanced, securityDomain.HealthMetrics, "alice")
		food := deriver.DeriveStorageKey(enhanced, securityDomain.FoodEntries, "alice")
		otherUser := deriver.DeriveStorageKey(enhanced, securityDomain.HealthMetrics, "bob")
		assert.NotEqual(t, health, food)
		assert.NotEqual(t, health, otherUser)
	})
}
