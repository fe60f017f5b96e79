// Package components provides the theme-aware lipgloss widgets the settings
// panel is assembled from.
//
// Widgets are stateless: each is built for a single render from the options
// it shows, the currently selected option and an onChange callback, and
// reports a user choice by calling onChange exactly once with a member of
// its options. Mutation of the selection happens in the caller.
//
// Primitive components:
//   - Text: styled text content (TitleText, LabelText, MutedText)
//   - Divider: horizontal separator
//   - Spacer: blank gap of fixed size
//
// Layout:
//   - Panel: rounded frame around pre-rendered content
//
// Controls:
//   - Select: single choice with previous/next arrows
//   - RadioGroup: every option on one row
//   - Button: labelled action with primary/secondary variants
//
// Themes are passed explicitly through RenderContext:
//
//	ctx := components.DefaultContext().WithParentWidth(30)
//	out := components.NewSelect("Font", opts, selected, onChange).ViewWithContext(ctx)
package components
