package compositor

import (
	"fmt"
	"testing"

	"shopshopapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for http.DetectContentType to say image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func openSession(t *testing.T) *Session {
	t.Helper()
	return NewSessionManager().Open("✨ Jacket - Black", models.EN)
}

func TestSessionSeedsDefaultElement(t *testing.T) {
	s := openSession(t)

	elements := s.Elements()
	require.Len(t, elements, 1)
	el := elements[0]
	assert.Equal(t, "1", el.ID)
	assert.Equal(t, "✨ Jacket - Black", el.Content)
	assert.Equal(t, 50.0, el.X)
	assert.Equal(t, 100.0, el.Y)
	assert.Equal(t, 16.0, el.FontSize)
	assert.Equal(t, builtinBackgrounds[0].TextColor, el.Color)
	assert.Equal(t, "1", s.SelectedElementID())
}

func TestResetDiscardsAllEdits(t *testing.T) {
	s := openSession(t)
	s.AddElement()
	require.NoError(t, s.SelectBackground("midnight-sky"))

	s.Reset("new description")

	elements := s.Elements()
	require.Len(t, elements, 1)
	assert.Equal(t, "new description", elements[0].Content)
	assert.Equal(t, "classic-white", s.SelectedBackground().ID)
	assert.False(t, s.Dragging())
}

func TestSoleElementNeverRemoved(t *testing.T) {
	s := openSession(t)

	for i := 0; i < 5; i++ {
		s.RemoveElement("1")
	}
	assert.Len(t, s.Elements(), 1)

	added := s.AddElement()
	assert.NotEqual(t, "1", added.ID)
	s.RemoveElement("1")
	s.RemoveElement(added.ID)
	assert.Len(t, s.Elements(), 1, "repeated removes must leave one element standing")
}

func TestRemoveReselects(t *testing.T) {
	s := openSession(t)
	added := s.AddElement()
	require.Equal(t, added.ID, s.SelectedElementID())

	s.RemoveElement(added.ID)
	assert.Equal(t, "1", s.SelectedElementID())
}

func TestElementIDsUnique(t *testing.T) {
	s := openSession(t)
	seen := map[string]bool{"1": true}
	for i := 0; i < 20; i++ {
		el := s.AddElement()
		assert.False(t, seen[el.ID], "duplicate element id %s", el.ID)
		seen[el.ID] = true
	}
}

func TestUpdateElementMergesPartialFields(t *testing.T) {
	s := openSession(t)
	size := 24.0
	color := "#ff0000"
	require.True(t, s.UpdateElement("1", TextElementPatch{FontSize: &size, Color: &color}))

	el := s.Elements()[0]
	assert.Equal(t, 24.0, el.FontSize)
	assert.Equal(t, "#ff0000", el.Color)
	assert.Equal(t, "✨ Jacket - Black", el.Content, "untouched fields keep their values")

	assert.False(t, s.UpdateElement("nope", TextElementPatch{Color: &color}))
}

func TestSelectElementDoesNotMutate(t *testing.T) {
	s := openSession(t)
	added := s.AddElement()
	before := s.Elements()

	require.True(t, s.SelectElement("1"))
	assert.Equal(t, before, s.Elements())
	assert.Equal(t, "1", s.SelectedElementID())
	assert.False(t, s.SelectElement("missing"))
	assert.Equal(t, "1", s.SelectedElementID())
	_ = added
}

func TestTemplateSwitchCascadesTextColor(t *testing.T) {
	s := openSession(t)
	s.AddElement()
	red := "#ff0000"
	blue := "#0000ff"
	s.UpdateElement("1", TextElementPatch{Color: &red})
	elements := s.Elements()
	s.UpdateElement(elements[1].ID, TextElementPatch{Color: &blue})

	require.NoError(t, s.SelectBackground("ocean-breeze"))

	for _, el := range s.Elements() {
		assert.Equal(t, "#ffffff", el.Color)
	}
}

func TestBackgroundListOrderAndUpload(t *testing.T) {
	s := openSession(t)
	require.Len(t, s.Backgrounds(), 8)

	uploaded, err := s.UploadBackground(pngHeader)
	require.NoError(t, err)
	assert.True(t, uploaded.IsCustom)
	assert.Equal(t, uploaded.ID, s.SelectedBackground().ID, "uploads are auto-selected")

	all := s.Backgrounds()
	require.Len(t, all, 9)
	assert.Equal(t, "classic-white", all[0].ID)
	assert.Equal(t, uploaded.ID, all[8].ID, "customs follow the built-ins")

	_, err = s.UploadBackground([]byte("not an image at all, just text"))
	assert.Error(t, err)
}

func TestDeleteSelectedCustomFallsBack(t *testing.T) {
	s := openSession(t)
	uploaded, err := s.UploadBackground(pngHeader)
	require.NoError(t, err)

	s.DeleteBackground(uploaded.ID)

	assert.Equal(t, "classic-white", s.SelectedBackground().ID)
	assert.Len(t, s.Backgrounds(), 8)
	for _, el := range s.Elements() {
		assert.Equal(t, builtinBackgrounds[0].TextColor, el.Color)
	}
}

func TestDeleteUnselectedCustomKeepsSelection(t *testing.T) {
	s := openSession(t)
	first, err := s.UploadBackground(pngHeader)
	require.NoError(t, err)
	second, err := s.UploadBackground(pngHeader)
	require.NoError(t, err)
	require.Equal(t, second.ID, s.SelectedBackground().ID)

	s.DeleteBackground(first.ID)
	assert.Equal(t, second.ID, s.SelectedBackground().ID)
}

func TestDragClampProperty(t *testing.T) {
	s := openSession(t)
	canvas := PointerEvent{CanvasWidth: CanvasWidth, CanvasHeight: CanvasHeight, ElementWidth: 200, ElementHeight: 50}

	down := canvas
	down.X, down.Y = 60, 110
	s.PointerDown("1", down)
	require.True(t, s.Dragging())

	moves := []struct{ x, y float64 }{
		{-500, -500},
		{5000, 5000},
		{400, 250},
		{0, 0},
		{CanvasWidth, CanvasHeight},
		{-1, 9999},
	}
	for _, mv := range moves {
		ev := canvas
		ev.X, ev.Y = mv.x, mv.y
		s.PointerMove(ev)

		el := s.Elements()[0]
		assert.GreaterOrEqual(t, el.X, 0.0, fmt.Sprintf("move to (%v,%v)", mv.x, mv.y))
		assert.LessOrEqual(t, el.X, CanvasWidth-200)
		assert.GreaterOrEqual(t, el.Y, 0.0)
		assert.LessOrEqual(t, el.Y, CanvasHeight-50)
	}
}

func TestDragKeepsPointerOffset(t *testing.T) {
	s := openSession(t)
	ev := PointerEvent{X: 60, Y: 110, CanvasWidth: CanvasWidth, CanvasHeight: CanvasHeight, ElementWidth: 200, ElementHeight: 50}
	s.PointerDown("1", ev) // element at (50,100), offset (10,10)

	ev.X, ev.Y = 200, 300
	s.PointerMove(ev)

	el := s.Elements()[0]
	assert.Equal(t, 190.0, el.X)
	assert.Equal(t, 290.0, el.Y)
}

func TestPointerUpAndLeaveEndDrag(t *testing.T) {
	s := openSession(t)
	ev := PointerEvent{X: 55, Y: 105, CanvasWidth: CanvasWidth, CanvasHeight: CanvasHeight}
	s.PointerDown("1", ev)
	before := s.Elements()[0]

	s.PointerUp()
	assert.False(t, s.Dragging())
	assert.Equal(t, before, s.Elements()[0], "no position change on up")

	// moves while idle are ignored
	ev.X, ev.Y = 400, 400
	s.PointerMove(ev)
	assert.Equal(t, before, s.Elements()[0])

	s.PointerDown("1", ev)
	s.PointerLeave()
	assert.False(t, s.Dragging())
}

func TestPointerDownRetargetsDrag(t *testing.T) {
	s := openSession(t)
	second := s.AddElement()
	ev := PointerEvent{X: 55, Y: 105, CanvasWidth: CanvasWidth, CanvasHeight: CanvasHeight, ElementWidth: 100, ElementHeight: 40}
	s.PointerDown("1", ev)

	ev.X, ev.Y = second.X+5, second.Y+5
	s.PointerDown(second.ID, ev)
	assert.Equal(t, second.ID, s.SelectedElementID())

	ev.X, ev.Y = 300, 300
	s.PointerMove(ev)
	moved := false
	for _, el := range s.Elements() {
		if el.ID == second.ID {
			moved = el.X == 295 && el.Y == 295
		}
		if el.ID == "1" {
			assert.Equal(t, 50.0, el.X, "original element no longer dragged")
		}
	}
	assert.True(t, moved)
}

func TestSnapshotLayoutIsSerializable(t *testing.T) {
	s := openSession(t)
	s.AddElement()
	require.NoError(t, s.SelectBackground("sunset-glow"))

	layoutJSON, err := s.SnapshotLayoutJSON()
	require.NoError(t, err)
	assert.Contains(t, layoutJSON, "sunset-glow")

	snap := s.SnapshotLayout()
	assert.Equal(t, CanvasWidth, snap.CanvasWidth)
	assert.Equal(t, CanvasHeight, snap.CanvasHeight)
	assert.Len(t, snap.Elements, 2)
}

func TestSingleSessionPolicy(t *testing.T) {
	m := NewSessionManager()
	first := m.Open("one", models.EN)
	second := m.Open("two", models.FR)

	_, ok := m.Get(first.ID)
	assert.False(t, ok, "opening a new session discards the previous one")
	got, ok := m.Get(second.ID)
	require.True(t, ok)
	assert.Equal(t, "two", got.Description)

	m.Close(second.ID)
	_, ok = m.Get(second.ID)
	assert.False(t, ok)
	m.Close(second.ID) // double close is fine
}

func TestLocalizedBackgroundNames(t *testing.T) {
	bg := builtinBackgrounds[1]
	assert.Equal(t, "Ocean Breeze", bg.LocalizedName(models.EN))
	assert.Equal(t, "Brise Océanique", bg.LocalizedName(models.FR))
	assert.Equal(t, "نسيم المحيط", bg.LocalizedName(models.AR))
	assert.Equal(t, "Ocean Breeze", bg.LocalizedName(models.Language("xx")))
}
