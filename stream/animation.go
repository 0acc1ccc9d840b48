package stream

// A Background paints the pixels beneath every layer.
type Background interface {
	Paint(f *Frame, runtimeMs int64)
}
