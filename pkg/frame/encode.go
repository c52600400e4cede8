package frame

const (
	// SOF is the start-of-frame byte the Unicorn HAT HD expects before the
	// pixel payload.
	SOF = 0x72

	// PayloadLen is the pixel payload size: one byte per channel per cell.
	PayloadLen = NumPixels * 3

	// EncodedLen is the full wire frame size, SOF included.
	EncodedLen = 1 + PayloadLen
)

// offset returns the payload cell index the pixel at (x, y) lands on for the
// given rotation. Each rotation is a bijection on the 256-cell index space:
//
//	Rot0:    1 2 3               Rot90:   7 4 1
//	         4 5 6  => 1..9               8 5 2  => 7 4 1 8 5 2 9 6 3
//	         7 8 9                        9 6 3
//
// and Rot180/Rot270 are the reversed forms.
func offset(x, y int, rot Rotation) int {
	switch rot {
	case Rot90:
		return x*Height + (Height - 1 - y)
	case Rot180:
		return NumPixels - 1 - (y*Width + x)
	case Rot270:
		return (Width-1-x)*Height + y
	}
	return y*Width + x
}

// Encode serializes the frame for the wire: the SOF byte followed by 768
// payload bytes in R, G, B channel order, cell order given by the rotation
// mapping. Each channel is scaled by brightness (expected in [0, 1], callers
// validate). The output length is constant and the function is pure: the
// same buffer, rotation and brightness always produce identical bytes.
func (f *Frame) Encode(rot Rotation, brightness float64) []byte {
	var out [EncodedLen]byte
	out[0] = SOF

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := f.leds[y*Width+x]
			i := 1 + 3*offset(x, y, rot)
			out[i+0] = scale(c[0], brightness)
			out[i+1] = scale(c[1], brightness)
			out[i+2] = scale(c[2], brightness)
		}
	}

	return out[:]
}

func scale(v uint8, brightness float64) uint8 {
	if brightness >= 1 {
		return v
	}
	if brightness <= 0 {
		return 0
	}
	return uint8(float64(v)*brightness + 0.5)
}
