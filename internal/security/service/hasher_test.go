package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA256Hasher_Sum(t *testing.T) {
	h := NewSHA256Hasher()

	t.Run("deterministic across calls", func(t *testing.T) {
		first := h.Sum([]byte("leaflogic"))
		second := h.Sum([]byte("leaflogic"))
		assert.Equal(t, first, second)
	})

	t.Run("known vector", func(t *testing.T) {
		// SHA-256 of "abc"
		assert.Equal(
			t,
			"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
			h.Sum([]byte("abc")),
		)
	})

	t.Run("empty input hashes the empty string", func(t *testing.T) {
		assert.Equal(
			t,
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			h.Sum(nil),
		)
		assert.Equal(t, h.Sum(nil), h.Sum([]byte{}))
	})

	t.Run("output is 64 lowercase hex characters", func(t *testing.T) {
		digest := h.Sum([]byte("anything"))
		assert.Len(t, digest, 64)
		assert.Regexp(t, "^[0-9a-f]{64}$", digest)
	})
}

func TestSHA256Hasher_SumString(t *testing.T) {
	h := NewSHA256Hasher()
	assert.Equal(t, h.Sum([]byte("abc")), h.SumString("abc"))
	assert.Equal(t, h.Sum(nil), h.SumString(""))
}
