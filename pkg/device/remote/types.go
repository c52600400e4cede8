package remote

type EmptyResponse struct {
}

type SetPixelRequest struct {
	X, Y    int
	R, G, B uint8
}

type PixelRequest struct {
	X, Y int
}

type PixelResponse struct {
	R, G, B uint8
}

type SetRotationRequest struct {
	Degrees int
}

type SetBrightnessRequest struct {
	Level float64
}
