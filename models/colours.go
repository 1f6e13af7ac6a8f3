package models

import "fmt"

// RGB is a colour as shipped to the front end.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Colours players can pick from. Gray and black are reserved for unplaced
// cells and the background, so they are deliberately not in here.
var Colours = map[string]RGB{
	"red":     {255, 0, 0},
	"orange":  {240, 127, 14},
	"yellow":  {255, 255, 0},
	"lime":    {0, 255, 0},
	"green":   {10, 87, 10},
	"blue":    {2, 145, 247},
	"indigo":  {33, 11, 133},
	"purple":  {82, 1, 143},
	"magenta": {117, 1, 117},
	"white":   {255, 255, 255},
}

var (
	Gray  = RGB{128, 128, 128}
	Black = RGB{0, 0, 0}
)

type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrUnknownColour Error = "colour is not in the palette"
	ErrColourTaken   Error = "both players picked the same colour"
)

func IsValidColour(name string) bool {
	_, ok := Colours[name]
	return ok
}

// ValidatePlayerColours checks that both picks exist in the palette and
// differ from each other.
func ValidatePlayerColours(colour1, colour2 string) error {
	if !IsValidColour(colour1) {
		return fmt.Errorf("%w: %q", ErrUnknownColour, colour1)
	}
	if !IsValidColour(colour2) {
		return fmt.Errorf("%w: %q", ErrUnknownColour, colour2)
	}
	if colour1 == colour2 {
		return ErrColourTaken
	}
	return nil
}
