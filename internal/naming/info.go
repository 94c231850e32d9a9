package naming

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Unknown is substituted for any placeholder whose attribute is absent.
const Unknown = "Unknown"

// timestampLayout matches exiftool's date notation, e.g. "2023:05:06 07:08:09".
const timestampLayout = "2006:01:02 15:04:05"

// dateKeys lists date-like attributes in priority order.
var dateKeys = []string{"CreateDate", "DateCreated", "DateTimeOriginal", "FileModifyDate"}

// Info is a normalized attribute mapping suitable for template substitution.
// It is a pure function of the record it was built from; the branch number is
// supplied separately at render time.
type Info struct {
	values map[string]string
}

// Lookup returns the normalized value for key, or Unknown when the record
// has no such attribute.
func (i Info) Lookup(key string) string {
	if value, ok := i.values[key]; ok {
		return value
	}
	return Unknown
}

// BuildInfo normalizes one raw attribute mapping. Interior spaces in textual
// values become underscores; non-textual values pass through stringified.
// The zero-padded date components y m d H M S are decomposed from the first
// usable date-like attribute, or the zero-date sentinel when none parses.
func BuildInfo(fields map[string]any) Info {
	values := make(map[string]string, len(fields)+6)
	for key, value := range fields {
		if s, ok := value.(string); ok {
			values[key] = strings.ReplaceAll(s, " ", "_")
			continue
		}
		values[key] = stringify(value)
	}

	y, m, d, H, M, S := dateComponents(fields)
	values["y"] = y
	values["m"] = m
	values["d"] = d
	values["H"] = H
	values["M"] = M
	values["S"] = S

	return Info{values: values}
}

func dateComponents(fields map[string]any) (y, m, d, H, M, S string) {
	for _, key := range dateKeys {
		value, ok := fields[key]
		if !ok {
			continue
		}
		raw := stringify(value)
		if raw == "" {
			continue
		}
		if len(raw) < len(timestampLayout) {
			break
		}
		ts, err := time.Parse(timestampLayout, raw[:len(timestampLayout)])
		if err != nil {
			break
		}
		return ts.Format("2006"), ts.Format("01"), ts.Format("02"),
			ts.Format("15"), ts.Format("04"), ts.Format("05")
	}
	return "0000", "00", "00", "00", "00", "00"
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
