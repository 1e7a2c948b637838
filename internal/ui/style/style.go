// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Teal  = lipgloss.Color("#0D9488")
	Slate = lipgloss.Color("#64748B")
	Green = lipgloss.Color("#16A34A")
	Red   = lipgloss.Color("#DC2626")
	Amber = lipgloss.Color("#D97706")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)
