// Package terminal provides the character-cell surface the application draws on.
//
// Features:
//   - Text placement at (row, col) with optional emphasis
//   - Box drawing for region and outer borders
//   - Cell read-back, so the glyph under the cursor is whatever was drawn there
//   - Blocking single-key input with navigation keys distinguished from runes
//   - Clean terminal restoration on exit/panic
//
// The default implementation is backed by tcell; NewFromScreen accepts any
// tcell.Screen, including simulation screens.
package terminal
