package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitRequest(body, contentType string) *http.Request {
	r := httptest.NewRequest("POST", "/", strings.NewReader(body))
	r.Header.Set("Content-Type", contentType)
	return r
}

func encode(pairs ...string) string {
	form := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		form.Add(pairs[i], pairs[i+1])
	}
	return form.Encode()
}

func TestValidateSubmitRequest(t *testing.T) {
	longName := strings.Repeat("a", 101)
	okName := strings.Repeat("a", 100)
	longMessage := strings.Repeat("b", 2001)
	okMessage := strings.Repeat("b", 2000)

	cases := []struct {
		name        string
		body        string
		contentType string
		wantErr     error
	}{
		{"valid", encode("name", "Alice", "message", "hi"), "application/x-www-form-urlencoded", nil},
		{"valid with charset", encode("name", "Alice", "message", "hi"), "application/x-www-form-urlencoded; charset=UTF-8", nil},
		{"wrong content type", encode("name", "Alice", "message", "hi"), "application/json", errContentType},
		{"missing name", encode("message", "hi"), "application/x-www-form-urlencoded", errNameMissing},
		{"whitespace-only name", encode("name", "   ", "message", "hi"), "application/x-www-form-urlencoded", errNameMissing},
		{"missing message", encode("name", "Alice"), "application/x-www-form-urlencoded", errMessageMissing},
		{"whitespace-only message", encode("name", "Alice", "message", " \t "), "application/x-www-form-urlencoded", errMessageMissing},
		{"name at limit", encode("name", okName, "message", "hi"), "application/x-www-form-urlencoded", nil},
		{"name over limit", encode("name", longName, "message", "hi"), "application/x-www-form-urlencoded", errNameTooLong},
		{"name over limit pre-trim", encode("name", "  "+strings.Repeat("a", 98)+"  ", "message", "hi"), "application/x-www-form-urlencoded", errNameTooLong},
		{"message at limit", encode("name", "Alice", "message", okMessage), "application/x-www-form-urlencoded", nil},
		{"message over limit", encode("name", "Alice", "message", longMessage), "application/x-www-form-urlencoded", errMessageTooLong},
		{"extra field", encode("name", "Alice", "message", "hi", "extra", "x"), "application/x-www-form-urlencoded", errFieldSet},
		{"repeated known fields pass field set", encode("name", "Alice", "name", "Bob", "message", "hi"), "application/x-www-form-urlencoded", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSubmitRequest(submitRequest(tc.body, tc.contentType))
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// The first failing check wins; later defects in the same request must not
// change the reported message.
func TestValidationOrderShortCircuits(t *testing.T) {
	longMessage := strings.Repeat("b", 2001)

	// Bad content type masks everything else.
	err := ValidateSubmitRequest(submitRequest(encode("extra", "x"), "application/json"))
	require.ErrorIs(t, err, errContentType)

	// Missing name reported before the oversized message.
	err = ValidateSubmitRequest(submitRequest(encode("message", longMessage), "application/x-www-form-urlencoded"))
	require.ErrorIs(t, err, errNameMissing)

	// Missing message reported before the oversized name.
	err = ValidateSubmitRequest(submitRequest(encode("name", strings.Repeat("a", 101)), "application/x-www-form-urlencoded"))
	require.ErrorIs(t, err, errMessageMissing)

	// Name length reported before message length.
	err = ValidateSubmitRequest(submitRequest(encode("name", strings.Repeat("a", 101), "message", longMessage), "application/x-www-form-urlencoded"))
	require.ErrorIs(t, err, errNameTooLong)

	// Field set is the last check: both fields valid, extra key present.
	err = ValidateSubmitRequest(submitRequest(encode("name", "a", "message", "b", "extra", "x"), "application/x-www-form-urlencoded"))
	require.ErrorIs(t, err, errFieldSet)
}
