package env

import (
	"fmt"
	"sort"
	"strings"
)

// MarshalMap renders env vars as .env file content with stable key order.
func MarshalMap(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for k, v := range vars {
		if k == "" || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("%s=%s\n", k, vars[k]))
	}
	return sb.String()
}
