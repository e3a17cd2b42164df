package formatting

import (
	"math"
	"strconv"
	"strings"
)

type unit struct {
	suffix string
	ms     float64
}

var durationUnits = []unit{
	{"d", 24 * 60 * 60 * 1000},
	{"h", 60 * 60 * 1000},
	{"m", 60 * 1000},
	{"s", 1000},
}

// Duration humanizes a millisecond count using at most its two largest units:
//
//	150      -> "150ms"
//	1520     -> "1.52s"
//	150000   -> "2m 30s"
//	3723000  -> "1h 2m"
//
// When approximate is set only the largest unit is kept ("1h").
func Duration(ms float64, approximate bool) string {
	if ms < 0 {
		return "-" + Duration(-ms, approximate)
	}
	if ms < 1000 {
		return strconv.FormatFloat(math.Round(ms), 'f', -1, 64) + "ms"
	}
	if ms < 60*1000 && !approximate {
		secs := math.Round(ms/10) / 100
		return strconv.FormatFloat(secs, 'f', -1, 64) + "s"
	}

	remaining := math.Floor(ms)
	var parts []string
	for _, u := range durationUnits {
		if remaining < u.ms {
			if len(parts) > 0 {
				break
			}
			continue
		}
		count := math.Floor(remaining / u.ms)
		remaining -= count * u.ms
		parts = append(parts, strconv.FormatFloat(count, 'f', 0, 64)+u.suffix)
		if approximate || len(parts) == 2 {
			break
		}
	}
	return strings.Join(parts, " ")
}
