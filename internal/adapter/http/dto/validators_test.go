package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := LoginRequest{
		Username: "  admin  ",
		Password: "  pass1234  ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "admin", req.Username)
	assert.Equal(t, "pass1234", req.Password)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := CheckoutRequest{
		ProjectID: "prj-001",
		Billing: BillingDetails{
			FullName: "customer <script>alert('x')</script>",
			Email:    "a@example.com",
			Phone:    "123",
		},
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Billing.FullName, "&lt;script&gt;")
	assert.NotContains(t, req.Billing.FullName, "<script>")
}

func TestSanitizeStruct_RecursesIntoNestedStructs(t *testing.T) {
	req := CheckoutRequest{
		ProjectID: "prj-001",
		Billing: BillingDetails{
			FullName: "  Ada Lovelace  ",
			Country:  " SG ",
		},
	}
	SanitizeStruct(&req)

	assert.Equal(t, "Ada Lovelace", req.Billing.FullName)
	assert.Equal(t, "SG", req.Billing.Country)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"prj-001",
		"PRJ_002",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"prj 001",     // space
		"prj<001>",    // angle brackets
		"prj;DROP",    // semicolon
		"",            // empty
		"hello world", // space
		"prj\n001",    // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestSanitizeStruct_UploadRequest(t *testing.T) {
	req := UploadURLRequest{
		Name:     "  My Photo.PNG  ",
		MimeType: " image/png ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "My Photo.PNG", req.Name)
	assert.Equal(t, "image/png", req.MimeType)
}
