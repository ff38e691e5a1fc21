package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutExtraWideWidth is the threshold for extra-wide layouts.
	LayoutExtraWideWidth = 160
)

// Pane sizes on the main view.
const (
	// PickerMinHeight fits the month grid, the time row and the format line.
	PickerMinHeight = 14

	// FormHeight fits every form field, the salon toggle and the borders.
	FormHeight = 11
)

// Log display limits.
const (
	// LogTailLines is the number of picker log lines shown in the log view.
	LogTailLines = 500
)
