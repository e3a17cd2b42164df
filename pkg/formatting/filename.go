package formatting

// Normalizer canonicalizes a filename before display
type Normalizer func(filename string) string

// Humanizer shortens a normalized filename; ok is false when it has no
// better form to offer.
type Humanizer func(filename string) (humanized string, ok bool)

// NormalizeFilename applies normalize, treating nil as identity
func NormalizeFilename(filename string, normalize Normalizer) string {
	if normalize == nil {
		return filename
	}
	return normalize(filename)
}

// Filename returns the display form of filename: normalized, then humanized
// when the humanizer offers something, else the normalized form.
func Filename(filename string, normalize Normalizer, humanize Humanizer) string {
	normalized := NormalizeFilename(filename, normalize)
	if humanize != nil {
		if h, ok := humanize(normalized); ok {
			return h
		}
	}
	return normalized
}
