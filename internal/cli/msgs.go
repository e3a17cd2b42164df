package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Render diagnostic markup for terminals and HTML"
	MsgRenderShort  = "Render markup files"
	MsgCheckShort   = "Validate markup files without printing them"
	MsgTokensShort  = "Print the token stream of a markup file"
	MsgFmtShort     = "Print markup in canonical form"
	MsgVersionShort = "Print version information"

	// Flags
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat         = "Output format: auto, ansi, html or none"
	MsgFlagColumns        = "Column budget (0 uses the terminal width)"
	MsgFlagStripPositions = "Drop :line:column suffixes from file links"
	MsgFlagConfig         = "Config file (default $XDG_CONFIG_HOME/markup/config.toml)"
	MsgFlagTheme          = "YAML theme merged over the built-in theme"
	MsgFlagStrict         = "Treat render issues as failures"

	// Summaries, written in markup and rendered with the configured options
	MsgCheckSummary = `<success>ok</success> <number>%d</number> <grammarNumber singular="file" plural="files">%d</grammarNumber> checked`
	MsgCheckFailed  = `<error>failed</error> <number>%d</number> of <number>%d</number> <grammarNumber singular="file" plural="files">%d</grammarNumber>`

	MsgVersionFormat = "markup version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrReadInput = "failed to read %s: %w"
	MsgErrNoCommand = "no command specified"
)

// MsgRootLong is the long description of the root command
const MsgRootLong = `markup renders a small tag language for diagnostics into terminal text
with ANSI styling, HTML, or plain text. Input is read from the files named on
the command line, or from standard input when none are given or the name is "-".

  <error>build failed</error> in <duration>1520</duration>: see <filelink target="src/main.go" line="3" />

Tags cover emphasis and colors, semantic styles (error, warn, info, success),
formatted values (number, duration, filesize), links, tables and lists.`

// MsgFmtLong is the long description of the fmt command
const MsgFmtLong = `Print markup in canonical form: attributes sorted, childless tags
self-closed and file link targets cleaned. With --strip-positions the line
and column of file links are dropped.`
