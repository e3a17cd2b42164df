// Package formatting holds the pure, locale-free helpers behind the number,
// duration, filesize, grammarNumber and filelink tags.
package formatting
