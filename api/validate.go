package api

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLen    = 100
	maxMessageLen = 2000
)

// Client-facing rejection messages. Each failure mode has its own fixed text;
// callers return the first failure as the 400 body verbatim.
var (
	errContentType    = errors.New("Content-Type must be application/x-www-form-urlencoded")
	errMalformedBody  = errors.New("malformed form body")
	errNameMissing    = errors.New("name is required and must not be empty")
	errMessageMissing = errors.New("message is required and must not be empty")
	errNameTooLong    = errors.New("name must be 100 characters or fewer")
	errMessageTooLong = errors.New("message must be 2000 characters or fewer")
	errFieldSet       = errors.New("form must contain exactly the fields name and message")
)

// formChecks run in this exact order and short-circuit on the first failure.
// The ordering is part of the endpoint's contract: a given malformed input
// always maps to the same specific message.
var formChecks = []func(url.Values) error{
	checkNamePresent,
	checkMessagePresent,
	checkNameLength,
	checkMessageLength,
	checkFieldSet,
}

// ValidateSubmitRequest checks the content type, parses the body, and runs
// the ordered field checks. It touches no storage. A nil return means the
// form carries exactly a usable name and message.
func ValidateSubmitRequest(r *http.Request) error {
	if !strings.Contains(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		return errContentType
	}
	if err := r.ParseForm(); err != nil {
		return errMalformedBody
	}
	for _, check := range formChecks {
		if err := check(r.PostForm); err != nil {
			return err
		}
	}
	return nil
}

func checkNamePresent(form url.Values) error {
	if strings.TrimSpace(form.Get("name")) == "" {
		return errNameMissing
	}
	return nil
}

func checkMessagePresent(form url.Values) error {
	if strings.TrimSpace(form.Get("message")) == "" {
		return errMessageMissing
	}
	return nil
}

// Length limits apply to the value as received, before trimming.
func checkNameLength(form url.Values) error {
	if utf8.RuneCountInString(form.Get("name")) > maxNameLen {
		return errNameTooLong
	}
	return nil
}

func checkMessageLength(form url.Values) error {
	if utf8.RuneCountInString(form.Get("message")) > maxMessageLen {
		return errMessageTooLong
	}
	return nil
}

// checkFieldSet requires the parsed body to contain exactly the keys name and
// message: two keys by count, both by membership.
func checkFieldSet(form url.Values) error {
	if len(form) != 2 {
		return errFieldSet
	}
	if _, ok := form["name"]; !ok {
		return errFieldSet
	}
	if _, ok := form["message"]; !ok {
		return errFieldSet
	}
	return nil
}
