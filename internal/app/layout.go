// layout.go centralizes terminal layout calculations for the two-pane UI.
//
// The editor takes the left half of the terminal and the preview the right
// half. When the terminal is too narrow for a preview of MinPreviewWidth
// columns, the editor takes the full width and the preview is hidden. The
// bottom footer reserves two or three rows depending on how much help text
// fits.
//
// Each pane loses its border frame plus one header row. The numbers are
// computed once per resize and reused by View and updateLayout.
package app

// LayoutDimensions holds all calculated layout dimensions for the UI.
type LayoutDimensions struct {
	EditorWidth    int // editor pane width including border
	PreviewWidth   int // preview pane width including border, 0 when hidden
	ContentHeight  int // terminal height minus the footer
	TextareaWidth  int // usable width inside the editor pane
	TextareaHeight int // usable height inside the editor pane
	ViewportWidth  int // usable width inside the preview pane
	ViewportHeight int // usable height inside the preview pane
}

// calculateLayout computes all UI dimensions from the terminal size.
func (m *Model) calculateLayout() LayoutDimensions {
	contentHeight := max(0, m.height-m.footerHeightForWidth(m.width))

	editorWidth := m.width / EditorWidthDivider
	previewWidth := m.width - editorWidth
	if previewWidth-previewPane.GetHorizontalFrameSize() < MinPreviewWidth {
		editorWidth = m.width
		previewWidth = 0
	}

	layout := LayoutDimensions{
		EditorWidth:    editorWidth,
		PreviewWidth:   previewWidth,
		ContentHeight:  contentHeight,
		TextareaWidth:  max(0, editorWidth-editPane.GetHorizontalFrameSize()),
		TextareaHeight: max(0, contentHeight-editPane.GetVerticalFrameSize()-1),
	}
	if previewWidth > 0 {
		layout.ViewportWidth = max(0, previewWidth-previewPane.GetHorizontalFrameSize())
		layout.ViewportHeight = max(0, contentHeight-previewPane.GetVerticalFrameSize()-1)
	}
	return layout
}

// footerHeightForWidth returns how many rows should be reserved for the footer.
// It prefers FooterMinRows and expands to FooterMaxRows when the footer
// segments cannot fit without dropping content.
func (m *Model) footerHeightForWidth(width int) int {
	_, fit := m.buildStatusRows(width, FooterMinRows)
	if fit {
		return FooterMinRows
	}
	return FooterMaxRows
}

// applyLayout resizes the textarea and the preview viewport.
func (m *Model) applyLayout(layout LayoutDimensions) {
	m.editor.SetWidth(layout.TextareaWidth)
	m.editor.SetHeight(layout.TextareaHeight)
	m.preview.Width = layout.ViewportWidth
	m.preview.Height = layout.ViewportHeight
	m.input.Width = max(10, min(m.width-PopupPadding*2, 80))
}

func (m *Model) updateLayout() {
	m.applyLayout(m.calculateLayout())
}
