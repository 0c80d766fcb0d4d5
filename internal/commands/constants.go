package commands

const (
	// DefaultTerminalWidth is the fallback terminal width when detection fails.
	DefaultTerminalWidth = 80

	// ChartWidthPadding is the horizontal padding subtracted from the frame
	// width for the summary chart.
	ChartWidthPadding = 2
)
