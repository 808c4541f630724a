package template

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"

	"github.com/jmylchreest/iroha/internal/colour"
)

// Funcs returns the functions available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		// Role access.
		"get":   getRole,
		"roles": roles,

		// Alpha manipulation.
		"withAlpha": withAlpha,
		"hexAlpha":  hexAlpha,

		// String manipulation, argument order suits pipes.
		"trimPrefix": trimPrefix,
		"trimSuffix": trimSuffix,
		"replace":    replace,
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
	}
}

// getRole looks a role up by name: {{ (get . "onPrimary").hex }}.
func getRole(data map[string]any, role string) (map[string]any, error) {
	v, ok := data[role]
	if !ok {
		return nil, fmt.Errorf("role %q not found", role)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("role %q is not a colour", role)
	}
	return obj, nil
}

// roles lists every role name in canonical order.
func roles() []string {
	out := make([]string, 0, len(colour.Roles()))
	for _, r := range colour.Roles() {
		out = append(out, string(r))
	}
	return out
}

func channels(obj map[string]any) (r, g, b int, err error) {
	var ok [3]bool
	r, ok[0] = obj["r"].(int)
	g, ok[1] = obj["g"].(int)
	b, ok[2] = obj["b"].(int)
	if !ok[0] || !ok[1] || !ok[2] {
		return 0, 0, 0, fmt.Errorf("value is not a colour")
	}
	return r, g, b, nil
}

// withAlpha renders a colour as rgba() with the given opacity, kept to at
// most three decimals: {{ withAlpha .surface 0.85 }} gives rgba(r,g,b,0.85).
func withAlpha(obj map[string]any, alpha float64) (string, error) {
	r, g, b, err := channels(obj)
	if err != nil {
		return "", err
	}
	a := math.Round(clamp01(alpha)*1000) / 1000
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(a, 'f', -1, 64)), nil
}

// hexAlpha renders a colour as #RRGGBBAA with the given opacity.
func hexAlpha(obj map[string]any, alpha float64) (string, error) {
	r, g, b, err := channels(obj)
	if err != nil {
		return "", err
	}
	a := int(math.Round(clamp01(alpha) * 255))
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a), nil
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func trimPrefix(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

func trimSuffix(suffix, s string) string {
	return strings.TrimSuffix(s, suffix)
}

func replace(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}
