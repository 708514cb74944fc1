package ui

// Window and layout sizing
const (
	WindowWidth  float32 = 640
	WindowHeight float32 = 480

	LogMinHeight       float32 = 220
	StatusTextSize     float32 = 14
	QualitySelectWidth float32 = 140
)

// Icons (emojis/symbols)
const (
	IconFolder   = "📁"
	IconLanguage = "🌐"
)

// Text fragments
const (
	QualityOptionFormat = "%s %s"
	LabeledErrorFormat  = "%s: %v"
)
