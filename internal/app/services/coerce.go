package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tmercan/fightnight/internal/pkg/apperrors"
)

// Form inputs submit numbers as strings and leave optional fields empty.
// These helpers own the blank-means-absent rules so every service coerces the
// same way.

func parseIntField(field, value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be a whole number", field))
	}
	return n, nil
}

func parseFloatField(field, value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be a number", field))
	}
	return f, nil
}

// parseOptionalWeight maps an empty input to nil rather than zero, so an
// unfilled weight field stores as absent instead of 0 kg.
func parseOptionalWeight(field, value string) (*float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a number", field))
	}
	return &f, nil
}

// parseDateTime accepts RFC 3339 and the browser's datetime-local format.
func parseDateTime(field, value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, apperrors.NewValidationError(fmt.Sprintf("%s is required", field))
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewValidationError(fmt.Sprintf("%s is not a valid date", field))
}
