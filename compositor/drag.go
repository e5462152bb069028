package compositor

// PointerEvent carries everything the drag machine needs as plain values:
// pointer coordinates relative to the canvas origin, the canvas size, and
// the rendered size of the element under the pointer. There is no coupling
// to any rendering framework here.
type PointerEvent struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	CanvasWidth   float64 `json:"canvas_width"`
	CanvasHeight  float64 `json:"canvas_height"`
	ElementWidth  float64 `json:"element_width"`
	ElementHeight float64 `json:"element_height"`
}

// dragState is the Dragging half of the two-state machine. nil means Idle.
type dragState struct {
	elementID string
	offsetX   float64
	offsetY   float64
}

func clampAxis(value, max float64) float64 {
	if max < 0 {
		max = 0
	}
	if value < 0 {
		return 0
	}
	if value > max {
		return max
	}
	return value
}

// pointerDown starts (or retargets) a drag on the given element, capturing
// the offset between pointer and element origin so the element does not jump
// under the cursor.
func (l *layout) pointerDown(elementID string, ev PointerEvent) *dragState {
	el := l.get(elementID)
	if el == nil {
		return nil
	}
	l.selectedID = elementID
	return &dragState{
		elementID: elementID,
		offsetX:   ev.X - el.X,
		offsetY:   ev.Y - el.Y,
	}
}

// pointerMove recomputes the dragged element position as pointer minus the
// captured offset, clamped so the element box stays inside the canvas on
// both axes.
func (l *layout) pointerMove(drag *dragState, ev PointerEvent) {
	if drag == nil {
		return
	}
	el := l.get(drag.elementID)
	if el == nil {
		return
	}
	elementWidth := ev.ElementWidth
	if elementWidth <= 0 || elementWidth > MaxElementRenderWidth {
		elementWidth = MaxElementRenderWidth
	}
	elementHeight := ev.ElementHeight
	if elementHeight <= 0 {
		elementHeight = el.FontSize
	}
	el.X = clampAxis(ev.X-drag.offsetX, ev.CanvasWidth-elementWidth)
	el.Y = clampAxis(ev.Y-drag.offsetY, ev.CanvasHeight-elementHeight)
}
