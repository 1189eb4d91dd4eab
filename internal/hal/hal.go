// Package hal defines the hardware contracts the game core talks to: the
// rotary encoder's quadrature lines, the push button line, the 3-axis
// accelerometer, and the RGB status LED color vocabulary. Real device
// drivers and the terminal simulator both satisfy these interfaces; the
// core polls them and never knows which one it got.
package hal

// Vec3 is a 3-axis acceleration reading in m/s².
type Vec3 struct {
	X, Y, Z float64
}

// Encoder exposes the raw quadrature state of a rotary encoder as two
// logic lines. Lines is polled once per tick; decoding happens upstream.
type Encoder interface {
	Lines() (clk, dt bool, err error)
}

// Button exposes the raw level of a push-button line. True means pressed.
type Button interface {
	Pressed() (bool, error)
}

// Accelerometer exposes a pollable 3-axis acceleration vector, as read
// from an addressed two-wire bus device.
type Accelerometer interface {
	Acceleration() (Vec3, error)
}

// Color is an RGB value for the status LED.
type Color struct {
	R, G, B uint8
}

// LED colors used by the game, matching the device firmware palette.
var (
	ColorOff     = Color{}
	ColorWaiting = Color{B: 255}
	ColorSuccess = Color{G: 255}
	ColorFail    = Color{R: 255}
	ColorClear   = Color{G: 255, B: 180}
	ColorSplash  = Color{R: 255, G: 80}
)

// Rainbow is the splash-screen LED cycle.
var Rainbow = []Color{
	{R: 255, G: 80},
	{R: 255, G: 180},
	{G: 200, B: 255},
	{G: 255, B: 150},
	{R: 180, B: 255},
}
