package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value type ranks used by CompareValues. Missing cells sort first so
// that incomplete records group together deterministically.
const (
	rankMissing = iota
	rankBool
	rankNumber
	rankString
)

// IsMissing reports whether a cell value is semantically absent: nil, or
// a string that is empty after trimming whitespace. Portal downloads
// represent missing values as empty cells, which the importer maps to
// nil; the string case covers datasets assembled directly by callers.
//
// IsMissing is the flagging notion of absence. CompareValues uses a
// stricter one: only nil is a missing value there, so an empty string
// and nil remain distinct values for duplicate grouping.
func IsMissing(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	default:
		return false
	}
}

// CompareValues imposes a total order on cell values so that sorting and
// grouping are deterministic across runs and machines: nil < bool <
// number < string, with false < true, numbers by magnitude (NaN before
// all other numbers), and strings bytewise. It returns -1, 0, or 1, and
// returns 0 exactly when the two cells count as the same value for
// duplicate-group membership.
func CompareValues(a, b any) int {
	ra, rb := valueRank(a), valueRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch ra {
	case rankMissing:
		return 0
	case rankBool:
		ab, bb := a.(bool), b.(bool)
		if ab == bb {
			return 0
		}
		if !ab {
			return -1
		}
		return 1
	case rankNumber:
		return compareFloats(toFloat(a), toFloat(b))
	default:
		return strings.Compare(asString(a), asString(b))
	}
}

// FormatValue renders a cell value for CSV export. Missing cells become
// the empty string; floats use the shortest representation that round
// trips.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func valueRank(v any) int {
	switch v.(type) {
	case nil:
		return rankMissing
	case bool:
		return rankBool
	case float64, int, int64:
		return rankNumber
	default:
		return rankString
	}
}

func compareFloats(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func toFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	default:
		return 0
	}
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

