package validators

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
)

// ParseQueryInt reads an optional integer query parameter. Missing or blank
// values return (0, false, nil).
func ParseQueryInt(values url.Values, name string) (int, bool, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("%s은(는) 숫자여야 합니다.", name))
	}
	return n, true, nil
}

// ParseQueryCSV splits a comma-separated query parameter, dropping empties.
func ParseQueryCSV(values url.Values, name string) []string {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
