package util

import (
	"strings"
)

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func Float64Ptr(v float64) *float64 {
	return &v
}
