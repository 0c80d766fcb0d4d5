package charts

const (
	// MinimumWidth is the narrowest bar track, in cells, a graph accepts.
	MinimumWidth = 12

	// SubSteps is the number of partial-block glyphs a single cell can show.
	SubSteps = 8

	// ValueFieldWidth and ValuePrecision describe the %8.2f readout column.
	ValueFieldWidth = 8
	ValuePrecision  = 2

	// LabelPrecision is the number of decimals printed for the min/max labels.
	LabelPrecision = 2

	// DefaultTimeFormat is the strftime pattern used for the timestamp column.
	DefaultTimeFormat = "%H:%M:%S"

	// ChartHeightRatio determines summary chart height as width/ChartHeightRatio.
	ChartHeightRatio = 8

	// MinChartHeight is the floor for the summary chart height.
	MinChartHeight = 8
)
