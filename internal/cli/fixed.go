package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/logicka/internal/token"
)

// parseFixed turns NAME=BOOL pairs into an assignment. Values accept
// whatever strconv.ParseBool does.
func parseFixed(pairs []string) (map[string]bool, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	fixed := make(map[string]bool, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --fix %q, expected NAME=BOOL", pair)
		}
		if token.IsKeyword(name) {
			return nil, fmt.Errorf("invalid --fix %q: %s is a reserved keyword, not a variable", pair, name)
		}

		value, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %q is not a boolean", name, raw)
		}
		if prev, seen := fixed[name]; seen && prev != value {
			return nil, fmt.Errorf("conflicting values for %s", name)
		}
		fixed[name] = value
	}
	return fixed, nil
}
