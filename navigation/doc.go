// Package navigation implements the cursor state machine over the character grid.
//
// The controller has two states. While active, each key yields exactly one
// character: the glyph read back from the surface at the clamped cursor cell.
// The quit key moves it to the exited state, after which Step always reports false.
package navigation
