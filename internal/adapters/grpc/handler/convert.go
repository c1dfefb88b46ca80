package handler

import (
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const dateLayout = "2006-01-02"

var errRequestRequired = status.Error(codes.InvalidArgument, "request is required")

func formatDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.UTC().Format(dateLayout)
}

func parseDateValue(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, trimmed, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid format, expected YYYY-MM-DD")
	}
	return &t, nil
}

// parseDateUpdateValue は nil を「変更なし」、空文字を「消去」として解釈します。
func parseDateUpdateValue(value *string) (*time.Time, bool, error) {
	if value == nil {
		return nil, false, nil
	}
	t, err := parseDateValue(value)
	if err != nil {
		return nil, false, err
	}
	return t, true, nil
}

func invalidArgument(field string, err error) error {
	return status.Error(codes.InvalidArgument, fmt.Sprintf("%s: %v", field, err))
}

func stringEnumPtr[T ~string](raw *string) *T {
	if raw == nil {
		return nil
	}
	v := T(strings.TrimSpace(*raw))
	return &v
}

func stringEnumOptional[T ~string](raw string) *T {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	v := T(trimmed)
	return &v
}
