package sweep

import (
	"strconv"
	"strings"

	"bomb-abm/internal/core"
)

// WindList is a repeatable flag of N/E/S/W options such as "5/75/10/10".
type WindList []Wind

func (l *WindList) String() string {
	parts := make([]string, len(*l))
	for i, w := range *l {
		parts[i] = joinInts(w[:])
	}
	return strings.Join(parts, ",")
}

// Set parses and appends one option.
func (l *WindList) Set(value string) error {
	var w Wind
	if err := splitInts("wind", value, w[:]); err != nil {
		return err
	}
	*l = append(*l, w)
	return nil
}

// FallList is a repeatable flag of Up/Down/NoChange options such as "20/70/10".
type FallList []Fall

func (l *FallList) String() string {
	parts := make([]string, len(*l))
	for i, f := range *l {
		parts[i] = joinInts(f[:])
	}
	return strings.Join(parts, ",")
}

// Set parses and appends one option.
func (l *FallList) Set(value string) error {
	var f Fall
	if err := splitInts("fall", value, f[:]); err != nil {
		return err
	}
	*l = append(*l, f)
	return nil
}

func splitInts(field, value string, dst []int) error {
	parts := strings.Split(value, "/")
	if len(parts) != len(dst) {
		return core.Configf(field, "want %d values separated by '/', got %q", len(dst), value)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return core.Configf(field, "bad value %q", p)
		}
		dst[i] = v
	}
	return nil
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "/")
}
