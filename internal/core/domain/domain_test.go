package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenantFingerprint_PinnedValues(t *testing.T) {
	// Pinned against sha256 -> first 6 hex chars -> base62, zero-padded
	// to 5 characters.
	tests := []struct {
		key      string
		expected string
	}{
		{"test-key", "0R8Tv"},
		{"mint_live_abc123", "0PbR4"},
		{"another-tenant", "0Zfho"},
		{"", "10bsC"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, TenantFingerprint(tt.key))
		})
	}
}

func TestTenantFingerprint_Deterministic(t *testing.T) {
	a := TenantFingerprint("some-opaque-tenant-key")
	b := TenantFingerprint("some-opaque-tenant-key")
	assert.Equal(t, a, b)
	assert.Len(t, a, 5)
}

func TestTenantFingerprint_DistinctKeys(t *testing.T) {
	// Not a collision-resistance assertion (truncation makes collisions
	// possible), just a sanity check on two fixed inputs.
	assert.NotEqual(t, TenantFingerprint("tenant-a"), TenantFingerprint("tenant-b"))
}

func TestStorageKey_Valid(t *testing.T) {
	tests := []struct {
		key   StorageKey
		valid bool
	}{
		{"generative-layers/abc123/image.png", true},
		{"a/b/c/d", true},
		{"a/b", false},
		{"plainkey", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.key.Valid())
		})
	}
}

func TestStorageKey_Segments(t *testing.T) {
	k := StorageKey("generative-layers/f-8821/My-Photo.PNG")
	assert.Equal(t, "f-8821", k.FileID())
	assert.Equal(t, "My-Photo.PNG", k.FileName())

	short := StorageKey("a/b")
	assert.Empty(t, short.FileID())
	assert.Empty(t, short.FileName())
}

func TestChargeResult_Succeeded(t *testing.T) {
	assert.True(t, (&ChargeResult{Status: "succeeded"}).Succeeded())
	assert.False(t, (&ChargeResult{Status: "failed", Message: "card declined"}).Succeeded())

	var nilResult *ChargeResult
	assert.False(t, nilResult.Succeeded())
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 109.0, RoundMoney(100+100*0.09))
	assert.Equal(t, 0.1, RoundMoney(0.1+1e-12))
	assert.Equal(t, 12.35, RoundMoney(12.345000001))
}
