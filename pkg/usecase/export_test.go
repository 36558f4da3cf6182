package usecase

// Exposed for tests
var (
	BuildContext   = buildContext
	ComposePrompt  = composePrompt
	FallbackAnswer = fallbackAnswer
)
