// Package deckset implements the Deckset-flavored markdown parsing pipeline:
// it turns one presentation source string into a fully resolved
// entities.Presentation ready for rendering.
package deckset

import "regexp"

// Shared directive patterns. Compiled once at init; the tables below never
// change at runtime.
var (
	// Global key: value command lines (case-insensitive, multiline)
	themeRe           = regexp.MustCompile(`(?im)^theme:[ \t]*(.+)$`)
	autoscaleRe       = regexp.MustCompile(`(?im)^autoscale:[ \t]*(\S+)[ \t]*$`)
	slideNumbersRe    = regexp.MustCompile(`(?im)^slidenumbers:[ \t]*(\S+)[ \t]*$`)
	slideCountRe      = regexp.MustCompile(`(?im)^slidecount:[ \t]*(\S+)[ \t]*$`)
	footerRe          = regexp.MustCompile(`(?im)^footer:[ \t]*(.+)$`)
	backgroundRe      = regexp.MustCompile(`(?im)^background-image:[ \t]*(.+)$`)
	buildListsRe      = regexp.MustCompile(`(?im)^build-lists:[ \t]*(\S+)[ \t]*$`)
	transitionRe      = regexp.MustCompile(`(?im)^slide-transition:[ \t]*(.+)$`)
	codeLanguageRe    = regexp.MustCompile(`(?im)^code-language:[ \t]*(.+)$`)
	fitHeadersRe      = regexp.MustCompile(`(?im)^fit-headers:[ \t]*(.+)$`)
	slideDividersRe   = regexp.MustCompile(`(?im)^slide-dividers:[ \t]*(.+)$`)
	globalCommandLine = regexp.MustCompile(`(?im)^(?:theme|autoscale|slidenumbers|slidecount|footer|background-image|build-lists|slide-transition|code-language|fit-headers|slide-dividers):[ \t]*.*$`)

	// Per-slide bracket directives
	columnMarkerRe    = regexp.MustCompile(`(?i)\[\.column\]`)
	slideBackgroundRe = regexp.MustCompile(`(?i)\[\.background-image:[ \t]*([^\]]+)\]`)
	hideFooterRe      = regexp.MustCompile(`(?i)\[\.hide-footer\]`)
	hideNumbersRe     = regexp.MustCompile(`(?i)\[\.hide-slide-numbers\]`)
	slideAutoscaleRe  = regexp.MustCompile(`(?i)\[\.autoscale:[ \t]*([^\]]+)\]`)
	slideTransitionRe = regexp.MustCompile(`(?i)\[\.slide-transition:[ \t]*([^\]]+)\]`)

	// Slide separators, tried in priority order: a dash line framed by
	// blank lines, then with one blank side, then bare
	separatorRes = []*regexp.Regexp{
		regexp.MustCompile(`(?m)\n[ \t]*\n-{3,}[ \t]*\n[ \t]*\n`),
		regexp.MustCompile(`(?m)\n-{3,}[ \t]*\n`),
		regexp.MustCompile(`(?m)^-{3,}[ \t]*$`),
	}

	// Divider headings (used when slide-dividers is configured)
	headingLineRe = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+\S.*$`)

	// Speaker notes and footnotes
	footnoteDefRe = regexp.MustCompile(`(?m)^\[\^([^\]\s]+)\]:[ \t]*(.+)$`)
	footnoteRefRe = regexp.MustCompile(`\[\^([^\]\s]+)\]`)

	// Fit headers: #..###### [fit] Text
	fitHeaderRe = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+\[fit\][ \t]+(.+)$`)

	// Emoji shortcodes
	emojiRe = regexp.MustCompile(`:([a-z0-9_+-]+):`)

	// Media references and the modifier mini-language
	mediaRefRe     = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)\)`)
	percentTokenRe = regexp.MustCompile(`(\d{1,3})%\s*$`)
	cornerRadiusRe = regexp.MustCompile(`(?i)corner-radius\((\d+)\)`)

	// Hosted video URL forms, tried in order: full watch URL, short link
	youtubeWatchRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?youtube\.com/watch\?(?:[^()\s]*&)?v=([\w-]{6,})`)
	youtubeShortRe = regexp.MustCompile(`(?i)(?:https?://)?youtu\.be/([\w-]{6,})`)

	// Fenced code blocks and the preceding highlight directive
	fencedCodeRe    = regexp.MustCompile("(?m)^```([^`\n]*)\n(?s:(.*?))^```[ \t]*$")
	codeHighlightRe = regexp.MustCompile(`(?im)^\[\.code-highlight:[ \t]*([^\]]*)\][ \t]*$`)

	// Math spans: display first, inline found on display-substituted text
	displayMathRe = regexp.MustCompile(`(?s)\$\$(.+?)\$\$`)
	inlineMathRe  = regexp.MustCompile(`\$([^$\n]+)\$`)
	beginEnvRe    = regexp.MustCompile(`\\begin\{([A-Za-z]+\*?)\}`)
	endEnvRe      = regexp.MustCompile(`\\end\{([A-Za-z]+\*?)\}`)

	// Frontmatter fence
	frontmatterRe = regexp.MustCompile(`(?s)\A---[ \t]*\n(.*?)\n---[ \t]*\n`)
)

// videoExtensions and audioExtensions classify media paths. Anything that
// matches neither set is an image.
var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true,
	".webm": true, ".mkv": true, ".m4v": true,
}

var audioExtensions = map[string]bool{
	".mp3": true, ".wav": true, ".ogg": true,
	".m4a": true, ".aac": true, ".flac": true,
}

// languageAliases maps common short forms to canonical language names.
var languageAliases = map[string]string{
	"js":   "javascript",
	"ts":   "typescript",
	"py":   "python",
	"rb":   "ruby",
	"cs":   "csharp",
	"c++":  "cpp",
	"c#":   "csharp",
	"sh":   "bash",
	"zsh":  "bash",
	"fish": "bash",
	"yml":  "yaml",
	"md":   "markdown",
}

// supportedLanguages is the fixed vocabulary the code processor emits.
// Anything outside it is tagged "text" rather than rejected.
var supportedLanguages = map[string]bool{
	"bash": true, "c": true, "cpp": true, "csharp": true, "css": true,
	"diff": true, "docker": true, "go": true, "html": true, "java": true,
	"javascript": true, "json": true, "kotlin": true, "lua": true,
	"makefile": true, "markdown": true, "objective-c": true, "perl": true,
	"php": true, "python": true, "r": true, "ruby": true, "rust": true,
	"scala": true, "sql": true, "swift": true, "toml": true, "text": true,
	"typescript": true, "xml": true, "yaml": true,
}

// emojiShortcodes is the fixed shortcode table. Unknown codes pass through
// unchanged.
var emojiShortcodes = map[string]string{
	"smile":            "😄",
	"grin":             "😁",
	"laughing":         "😆",
	"wink":             "😉",
	"heart":            "❤️",
	"star":             "⭐",
	"fire":             "🔥",
	"rocket":           "🚀",
	"tada":             "🎉",
	"thumbsup":         "👍",
	"+1":               "👍",
	"thumbsdown":       "👎",
	"-1":               "👎",
	"clap":             "👏",
	"wave":             "👋",
	"eyes":             "👀",
	"thinking":         "🤔",
	"warning":          "⚠️",
	"check":            "✅",
	"white_check_mark": "✅",
	"x":                "❌",
	"question":         "❓",
	"exclamation":      "❗",
	"bulb":             "💡",
	"zap":              "⚡",
	"bug":              "🐛",
	"lock":             "🔒",
	"key":              "🔑",
	"gear":             "⚙️",
	"books":            "📚",
	"memo":             "📝",
	"chart":            "📊",
	"calendar":         "📅",
	"coffee":           "☕",
	"computer":         "💻",
	"point_right":      "👉",
	"point_left":       "👈",
	"arrow_right":      "➡️",
	"arrow_left":       "⬅️",
	"100":              "💯",
}

// mathEnvironmentsWithAmpersand lists the LaTeX environments in which a bare
// ampersand is legitimate alignment syntax.
var mathEnvironmentsWithAmpersand = map[string]bool{
	"tabular": true, "matrix": true, "pmatrix": true, "bmatrix": true,
	"vmatrix": true, "align": true, "align*": true, "aligned": true,
	"array": true, "cases": true,
}
