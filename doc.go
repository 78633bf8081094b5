// Package eightsegment drives a single-digit eight-segment LED display
// over eight GPIO lines: seven digit strokes plus a decimal point, each on
// its own line. It targets directly-wired displays such as the HDSP-H101
// and HDSP-H103, where there is no controller chip between the host and
// the LEDs.
//
// # Segment Layout
//
// Segments are labelled as in the HDSP datasheets:
//
//	 _______
//	|   A   |
//	|F     B|
//	|   G   |
//	|-------|
//	|E     C|
//	|   D   |
//	'-------'  .
//	           DP
//
// # Polarity
//
// Display models differ in which logic level lights a segment: on the
// HDSP-H103 a segment is lit by driving its line high, on the HDSP-H101 by
// driving it low. Set Opts.HighOn accordingly. Polarity applies uniformly
// to all eight lines and is fixed when the device is created; the rest of
// the API works in terms of "lit" segments and never exposes physical
// levels.
//
// # Hardware Connection
//
// Each segment pin of the display connects to a GPIO through a suitable
// current-limiting resistor:
//
//	Display Pin → System Pin
//	A..G        → any 7 GPIOs
//	DP          → 1 GPIO
//	common      → GND (common cathode) or VCC (common anode)
//
// A common-cathode display is active-high (HighOn: true), a common-anode
// display is active-low (HighOn: false).
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		eightsegment "github.com/Dave-Vallance/eight-segment"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//
//		dev, err := eightsegment.New(&eightsegment.Opts{
//			A:  gpioreg.ByName("GPIO21"),
//			B:  gpioreg.ByName("GPIO20"),
//			C:  gpioreg.ByName("GPIO11"),
//			D:  gpioreg.ByName("GPIO10"),
//			E:  gpioreg.ByName("GPIO9"),
//			F:  gpioreg.ByName("GPIO16"),
//			G:  gpioreg.ByName("GPIO17"),
//			DP: gpioreg.ByName("GPIO12"),
//			// HDSP-H101 lights segments on pin-low.
//			HighOn: false,
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		dev.Display(0xB, false) // show 'b', decimal point off
//	}
//
// # Digits and Patterns
//
// Display renders the hex digits 0x0 through 0xF. Digit codes above 0xF
// render with all seven strokes lit, so a bad value shows up on the
// hardware instead of being silently dropped. The decimal point is
// controlled independently of the digit on every call.
//
// Arbitrary segment combinations can be written with SetSegments or, as a
// bitmask, with SetPattern:
//
//	dev.SetPattern(eightsegment.SegA | eightsegment.SegD | eightsegment.SegG)
//
// # Scope
//
// The package drives exactly one digit. Multi-digit multiplexing, PWM
// brightness control and pin setup are left to the caller; any
// gpio.PinOut works, whether from a host GPIO header or an expander.
package eightsegment
