package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// envReader reads typed values from the environment.
// A set-but-empty variable counts as unset; an unparsable one is recorded.
type envReader struct {
	problems []string
}

func (r *envReader) lookup(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return strings.TrimSpace(value), true
}

func (r *envReader) invalid(key, value, kind string) {
	r.problems = append(r.problems, fmt.Sprintf("%s=%q: %s 형식이 아닙니다", key, value, kind))
}

func (r *envReader) String(key, def string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return def
}

func (r *envReader) Int(key string, def int) int {
	raw, ok := r.lookup(key)
	if !ok {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		r.invalid(key, raw, "정수")
		return def
	}
	return value
}

func (r *envReader) Bool(key string, def bool) bool {
	raw, ok := r.lookup(key)
	if !ok {
		return def
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		r.invalid(key, raw, "bool")
		return def
	}
	return value
}

func (r *envReader) Duration(key string, def time.Duration) time.Duration {
	raw, ok := r.lookup(key)
	if !ok {
		return def
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		r.invalid(key, raw, "duration")
		return def
	}
	return value
}

// Slice splits a comma separated list, dropping blank entries
func (r *envReader) Slice(key string, def []string) []string {
	raw, ok := r.lookup(key)
	if !ok {
		return def
	}

	values := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return def
	}
	return values
}
