package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/markup/pkg/markup"
)

// normalizeFilename cleans local file link targets. Targets with a scheme are
// left alone.
func normalizeFilename(name string) string {
	if name == "" || strings.Contains(name, "://") {
		return name
	}
	return filepath.ToSlash(filepath.Clean(name))
}

// humanizeFilename shows paths under the home directory as "~/...".
func humanizeFilename(name string) (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" || !filepath.IsAbs(name) {
		return "", false
	}
	rel, err := filepath.Rel(home, name)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return "~/" + filepath.ToSlash(rel), true
}

// fmtOptions is the file link policy of "markup fmt". Humanized labels are
// machine specific, so fmt never writes them into a document.
func fmtOptions(stripPositions bool) markup.NormalizeOptions {
	return markup.NormalizeOptions{
		NormalizeFilename: normalizeFilename,
		StripPositions:    stripPositions,
	}
}
