package formatting

import (
	"math"
	"math/big"

	"github.com/dustin/go-humanize"
)

// FileSize humanizes a byte count using binary unit steps, e.g. 1048576 -> "1.0 MiB".
// Values below ten units keep one decimal.
func FileSize(bytes int64) string {
	if bytes < 0 {
		return "-" + humanize.IBytes(uint64(-bytes))
	}
	return humanize.IBytes(uint64(bytes))
}

// FileSizeFloat is FileSize for a parsed count, which may be outside the
// int64 range. Fractions of a byte are truncated.
func FileSizeFloat(bytes float64) string {
	if bytes > math.MinInt64 && bytes < math.MaxInt64 {
		return FileSize(int64(bytes))
	}
	n, _ := big.NewFloat(math.Abs(bytes)).Int(nil)
	if bytes < 0 {
		return "-" + humanize.BigIBytes(n)
	}
	return humanize.BigIBytes(n)
}
