package dwtypes

// Real is a type constraint for input sample types accepted by the transform.
// Every member converts to float64 with a plain conversion.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
