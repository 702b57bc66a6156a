package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/logicka/pkg/utils"
)

func String(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func Int(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return n, nil
}

// Bool is true only for the literal value "true".
func Bool(key string) bool {
	return strings.TrimSpace(os.Getenv(key)) == "true"
}

func Duration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}

// List splits a comma separated value, dropping blanks.
func List(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	items := strings.Split(v, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return utils.RemoveEmptyStrings(items)
}
