package tui

// Color constants for the slidegym TUI theme
const (
	// Base Colors
	ColorCardBackground = "#1B1530" // Dark purple
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Exercise names, user input, titles
	ColorSecondaryText = "#B1B8C7" // Summaries, inactive tabs
	ColorDisabledText  = "#6D7383" // Empty day, muted text
	ColorPlaceholder   = "#6D7383"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Logo, selected tab, active borders
	ColorAccentBright = "#A78BFA" // Headers, focused field
	ColorShimmer      = "#EAE6FF" // Band of the selected exercise name

	// State Colors
	ColorError   = "#EF4444" // Validation and store errors
	ColorSuccess = "#22C55E" // Completed exercises
	ColorWarning = "#F59E0B"
)
