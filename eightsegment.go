// Package eightsegment drives a single-digit eight-segment LED display
// (seven digit strokes plus a decimal point) connected to eight GPIO lines.
//
// See the package documentation in doc.go for wiring and usage.
package eightsegment

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// Pattern is a polarity-independent lit pattern: one bit per segment,
// set when that segment should be visually lit. Bit 0 is segment A, bit 6
// is segment G and bit 7 is the decimal point.
type Pattern uint8

// Segment bits, in the conventional seven-segment labelling (A is the top
// stroke, G the middle, DP the trailing decimal point).
const (
	SegA Pattern = 1 << iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
	SegDP
)

// AllSegments lights every digit stroke A through G, without the decimal
// point. It is also the glyph shown for digit codes that have no defined
// glyph.
const AllSegments = SegA | SegB | SegC | SegD | SegE | SegF | SegG

// digitPatterns holds the glyphs for the hex digits 0x0 through 0xF.
//
//	bit: .GFEDCBA
var digitPatterns = [16]Pattern{
	0x0: 0b00111111,
	0x1: 0b00000110,
	0x2: 0b01011011,
	0x3: 0b01001111,
	0x4: 0b01100110,
	0x5: 0b01101101,
	0x6: 0b01111101,
	0x7: 0b00000111,
	0x8: 0b01111111,
	0x9: 0b01101111,
	0xA: 0b01110111,
	0xB: 0b01111110,
	0xC: 0b01011000,
	0xD: 0b01011110,
	0xE: 0b01111001,
	0xF: 0b01110001,
}

// runePatterns maps the few non-digit characters a single digit position
// can render.
var runePatterns = map[rune]Pattern{
	' ': 0,
	'-': SegG,
	'_': SegD,
}

// DigitPattern returns the glyph for a hex digit. Only the values 0x0
// through 0xF have a defined glyph; anything larger degrades to
// AllSegments, which makes an invalid digit visible on the hardware
// instead of failing. The decimal point bit is never set.
func DigitPattern(digit byte) Pattern {
	if digit > 0xF {
		return AllSegments
	}
	return digitPatterns[digit]
}

// RunePattern returns the glyph for a character and whether the character
// can be rendered. Hex digits are accepted in either case; the only other
// characters with glyphs are space, '-' and '_'.
func RunePattern(r rune) (Pattern, bool) {
	switch {
	case r >= '0' && r <= '9':
		return digitPatterns[r-'0'], true
	case r >= 'a' && r <= 'f':
		return digitPatterns[r-'a'+10], true
	case r >= 'A' && r <= 'F':
		return digitPatterns[r-'A'+10], true
	}
	p, ok := runePatterns[r]
	return p, ok
}

// litToLevel translates a "segment lit" flag into the physical level to
// write for the configured polarity: the level is high exactly when lit
// matches highOn. This is the single place polarity is applied; every
// display operation routes through it.
func litToLevel(lit, highOn bool) gpio.Level {
	return gpio.Level(lit == highOn)
}

// segmentNames indexes the pin array in write order.
var segmentNames = [8]string{"A", "B", "C", "D", "E", "F", "G", "DP"}

// Opts is the configuration for the display.
type Opts struct {
	// One GPIO output per segment. All eight are required.
	A, B, C, D, E, F, G gpio.PinOut
	DP                  gpio.PinOut

	// HighOn is the display polarity: true when driving a line high lights
	// the segment (e.g. HDSP-H103), false when driving it low does
	// (e.g. HDSP-H101). It applies to all eight lines and is fixed for the
	// lifetime of the device.
	HighOn bool
}

// Dev is the device handle for the display.
//
// It holds no state besides the pins and the polarity; every operation
// rewrites all eight lines from scratch. The pins must not be driven from
// elsewhere while a call is in progress, and the same physical line must
// not be shared between two Dev instances.
type Dev struct {
	pins   [8]gpio.PinOut // in segment order A..G, DP
	highOn bool
}

// New creates a display driver from eight GPIO output pins and a polarity
// flag. The pins must already be usable as outputs; no pin configuration
// is performed.
func New(opts *Opts) (*Dev, error) {
	if opts == nil {
		return nil, errors.New("eightsegment: opts are required")
	}
	d := &Dev{
		pins:   [8]gpio.PinOut{opts.A, opts.B, opts.C, opts.D, opts.E, opts.F, opts.G, opts.DP},
		highOn: opts.HighOn,
	}
	for i, p := range d.pins {
		if p == nil {
			return nil, fmt.Errorf("eightsegment: segment %s pin is required", segmentNames[i])
		}
	}
	return d, nil
}

// SetPattern writes all eight lines for the given lit pattern.
//
// Every line is written unconditionally on every call, in segment order A
// through G then DP, with no dirty-checking; each line's final level
// depends only on its own bit and the polarity. The write pass always
// completes; the first pin error, if any, is returned afterwards. GPIO
// writes cannot fail on common hosts, so callers are free to ignore it.
func (d *Dev) SetPattern(p Pattern) error {
	var firstErr error
	for i, pin := range d.pins {
		lit := p&(1<<i) != 0
		if err := pin.Out(litToLevel(lit, d.highOn)); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// SetSegments writes all eight lines from individual lit flags. Any
// combination of segments may be lit, including none or all.
func (d *Dev) SetSegments(segA, segB, segC, segD, segE, segF, segG, segDP bool) error {
	var p Pattern
	for i, lit := range [8]bool{segA, segB, segC, segD, segE, segF, segG, segDP} {
		if lit {
			p |= 1 << i
		}
	}
	return d.SetPattern(p)
}

// Display renders a hex digit, with the decimal point controlled
// independently of the digit. Values above 0xF render as AllSegments, see
// DigitPattern. The mapping is stateless and evaluated fresh on every
// call.
func (d *Dev) Display(digit byte, decimalPoint bool) error {
	p := DigitPattern(digit)
	if decimalPoint {
		p |= SegDP
	}
	return d.SetPattern(p)
}

// DisplayRune renders a character, with the decimal point controlled
// independently. Unlike Display it fails, without touching the lines, for
// characters that have no glyph.
func (d *Dev) DisplayRune(r rune, decimalPoint bool) error {
	p, ok := RunePattern(r)
	if !ok {
		return fmt.Errorf("eightsegment: no glyph for %q", r)
	}
	if decimalPoint {
		p |= SegDP
	}
	return d.SetPattern(p)
}

// Blank turns every segment off, regardless of prior state.
func (d *Dev) Blank() error {
	return d.SetPattern(0)
}

// TestDisplay lights all eight segments (including the decimal point) when
// on is true, and blanks the display when false. Useful to check wiring
// and spot dead segments.
func (d *Dev) TestDisplay(on bool) error {
	if on {
		return d.SetPattern(AllSegments | SegDP)
	}
	return d.Blank()
}

// Halt blanks the display. It implements conn.Resource; the device stays
// usable afterwards since there is nothing to power down.
func (d *Dev) Halt() error {
	return d.Blank()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	if d.highOn {
		return "eightsegment.Dev{active-high}"
	}
	return "eightsegment.Dev{active-low}"
}

var _ conn.Resource = &Dev{}
