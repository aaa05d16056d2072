package app

import "time"

// Layout constants define the default dimensions and spacing for the UI
const (
	// EditorWidthDivider splits the terminal between editor and preview; the
	// editor gets width / EditorWidthDivider columns.
	EditorWidthDivider = 2

	// MinPreviewWidth is the narrowest preview pane worth drawing. Below it
	// the editor takes the full width.
	MinPreviewWidth = 24

	// PopupPadding is the horizontal margin kept around popups
	PopupPadding = 8

	// ExportPopupHeight is the fixed height of the export popup.
	ExportPopupHeight = 16
	// SnippetPopupHeight is the fixed height of the snippet picker.
	SnippetPopupHeight = 22
	// PromptPopupHeight is the height of the open-file and reset prompts.
	PromptPopupHeight = 8

	// FooterMinRows is the default number of rows reserved for the bottom
	// status/help area. The app targets two rows on typical terminal widths.
	FooterMinRows = 2
	// FooterMaxRows is the expanded footer height used when content does not
	// fit within FooterMinRows.
	FooterMaxRows = 3
)

// Input limits define maximum sizes for user input
const (
	// InputCharLimit is the maximum number of characters allowed in the
	// open-file prompt
	InputCharLimit = 512
)

// Rendering constants control render timing and optimization
const (
	// RenderDebounce is the delay between the last edit and the preview
	// render.
	RenderDebounce = 300 * time.Millisecond

	// RenderWidthBucket is the granularity for width-based render caching
	// Widths are rounded to nearest multiple of this value
	RenderWidthBucket = 20
)

// Draft constants
const (
	// DraftAutoSaveInterval controls how often a changed buffer is written to
	// the draft store.
	DraftAutoSaveInterval = 5 * time.Second
)

// ExportTimeout bounds a single export, including external renderers.
const ExportTimeout = 2 * time.Minute
