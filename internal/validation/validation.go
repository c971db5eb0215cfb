package validation

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Input limits.
const (
	MaxSearchLength  = 200
	MaxTitleLength   = 300
	MaxContentLength = 20000
	MaxCodeLength    = 50000
	MaxWindowDays    = 366
)

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// This prevents javascript:, data:, vbscript:, and other dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	// Parse the URL
	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	// Check scheme - only allow http and https
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	// Ensure host is present
	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// ValidatePlatformRef accepts either an http(s) URL or a plain problem
// identifier such as "1" or "two-sum". Anything with another scheme is rejected.
func ValidatePlatformRef(ref string) (bool, string) {
	if utf8.RuneCountInString(ref) > MaxTitleLength {
		return false, fmt.Sprintf("platform_ref must be at most %d characters", MaxTitleLength)
	}
	if !strings.Contains(ref, ":") {
		return true, ""
	}
	return ValidateURL(ref)
}

// ValidateSearchText checks a free-text search or topic filter.
func ValidateSearchText(field, s string) (bool, string) {
	if utf8.RuneCountInString(s) > MaxSearchLength {
		return false, fmt.Sprintf("%s must be at most %d characters", field, MaxSearchLength)
	}
	return true, ""
}

// ValidateWindowDays checks the requested length of an activity window.
func ValidateWindowDays(days int) (bool, string) {
	if days < 1 || days > MaxWindowDays {
		return false, fmt.Sprintf("days must be between 1 and %d", MaxWindowDays)
	}
	return true, ""
}

// ValidateTitle checks a required, already trimmed title.
func ValidateTitle(title string) (bool, string) {
	if title == "" {
		return false, "title is required"
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return false, fmt.Sprintf("title must be at most %d characters", MaxTitleLength)
	}
	return true, ""
}

// ValidateLength checks an optional free-form field against a limit.
func ValidateLength(field, s string, limit int) (bool, string) {
	if utf8.RuneCountInString(s) > limit {
		return false, fmt.Sprintf("%s must be at most %d characters", field, limit)
	}
	return true, ""
}

// SplitTopics turns a comma-separated topic list into trimmed, non-empty
// topics. An input without any topic yields nil, meaning "no topics recorded".
func SplitTopics(s string) []string {
	var topics []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}

// CleanTopics trims topics and drops empty ones. Returns nil when nothing is left.
func CleanTopics(in []string) []string {
	var topics []string
	for _, t := range in {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}

// Optional trims s and returns nil when it is empty.
func Optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
