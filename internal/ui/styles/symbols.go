package styles

// Status symbols used in doctor reports and install messages.
const (
	SymbolOK   = "✓"
	SymbolWarn = "⚠"
	SymbolFail = "✗"
	SymbolSkip = "○"
)

// OK returns a line marked with a styled success symbol.
func OK(msg string) string {
	return SuccessStyle().Render(SymbolOK) + " " + msg
}

// Warn returns a line marked with a styled warning symbol.
func Warn(msg string) string {
	return WarningStyle().Render(SymbolWarn) + " " + msg
}

// Fail returns a line marked with a styled failure symbol.
func Fail(msg string) string {
	return ErrorStyle().Render(SymbolFail) + " " + msg
}

// Skip returns a line marked with a styled skip symbol.
func Skip(msg string) string {
	return MutedStyle().Render(SymbolSkip) + " " + msg
}

// Hint renders secondary guidance text.
func Hint(msg string) string {
	return MutedStyle().Render(msg)
}
