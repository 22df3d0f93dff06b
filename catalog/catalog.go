package catalog

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/runenames"

	"github.com/lixenwraith/gascii/constant"
)

// ErrNotPrintable is returned when a rune falls outside the printable ASCII range
var ErrNotPrintable = errors.New("not a printable ASCII character")

// Code is a printable ASCII code point
type Code int32

// All returns the printable ASCII codes in ascending order
func All() []Code {
	codes := make([]Code, 0, constant.PrintableCount)
	for c := constant.FirstPrintable; c <= constant.LastPrintable; c++ {
		codes = append(codes, Code(c))
	}
	return codes
}

// Partition splits codes into consecutive rows of at most width entries
// The final row is shorter when len(codes) is not a multiple of width
func Partition(codes []Code, width int) [][]Code {
	if width <= 0 || len(codes) == 0 {
		return nil
	}

	rows := make([][]Code, 0, (len(codes)+width-1)/width)
	for start := 0; start < len(codes); start += width {
		end := min(start+width, len(codes))
		rows = append(rows, codes[start:end:end])
	}
	return rows
}

// Lookup converts a glyph read from the screen into a Code
func Lookup(r rune) (Code, error) {
	c := Code(r)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %U", ErrNotPrintable, r)
	}
	return c, nil
}

// Valid reports whether c is within the printable range
func (c Code) Valid() bool {
	return c >= constant.FirstPrintable && c <= constant.LastPrintable
}

// Rune returns the code as a rune
func (c Code) Rune() rune {
	return rune(c)
}

// Glyph returns the single-character string for c
func (c Code) Glyph() string {
	return string(rune(c))
}

// Name returns the Unicode character name, or the U+XXXX form for unnamed points
func (c Code) Name() string {
	name := runenames.Name(rune(c))
	if name == "" || name[0] == '<' {
		return fmt.Sprintf("%U", rune(c))
	}
	return name
}

// Binary returns the unprefixed base-2 form
func (c Code) Binary() string {
	return strconv.FormatInt(int64(c), 2)
}

// Octal returns the unprefixed base-8 form
func (c Code) Octal() string {
	return strconv.FormatInt(int64(c), 8)
}

// Decimal returns the base-10 form
func (c Code) Decimal() string {
	return strconv.FormatInt(int64(c), 10)
}

// Hex returns the unprefixed lowercase base-16 form
func (c Code) Hex() string {
	return strconv.FormatInt(int64(c), 16)
}

// String implements fmt.Stringer
func (c Code) String() string {
	return fmt.Sprintf("%q (%d)", rune(c), int32(c))
}
