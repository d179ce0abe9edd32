package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UniqueObjectKey derives a collision-resistant object key from the
// uploaded filename, keeping the original extension.
func UniqueObjectKey(filename string) string {
	base := filename
	ext := ""
	if idx := strings.LastIndex(filename, "."); idx > 0 {
		base = filename[:idx]
		ext = filename[idx+1:]
	}

	base = strings.ReplaceAll(strings.TrimSpace(base), " ", "_")
	suffix := strings.Split(uuid.New().String(), "-")[0]

	if ext == "" {
		return fmt.Sprintf("%s-%d-%s", base, time.Now().UnixMilli(), suffix)
	}
	return fmt.Sprintf("%s-%d-%s.%s", base, time.Now().UnixMilli(), suffix, ext)
}
