/*
Package markup tokenizes and parses the diagnostic markup language.

Markup is text interleaved with XML-like tags drawn from a fixed vocabulary:

	<error>build failed</error> in <filelink target="src/main.go" line="12" />
	took <duration>1520</duration>

Tags either wrap children (<tag>...</tag>) or self-close (<tag />). Attribute
values are quoted with single or double quotes; a bare attribute name is a
boolean flag.

# Escaping

A literal "<" in text is written "\<" and a literal backslash "\\". Inside a
quoted attribute value the matching quote is escaped as \" or \' and a
backslash as "\\". Any other backslash is kept as is. Escape produces text
that is safe to embed, and Serialize uses the same convention.

# Errors

Tokenize and Parse fail eagerly and never return a partial tree. Errors are
*errors.MarkupError values carrying the source position; the codes are
ErrTokenize, ErrUnknownTag, ErrMismatchedTag, ErrSyntax and ErrDepthExceeded.
*/
package markup
