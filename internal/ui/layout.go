package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/google-login/internal/present"
)

// regionLayout positions each object at a rect given in fractions of the
// container size. Objects without a rect fill the container.
type regionLayout struct {
	rects map[fyne.CanvasObject]present.Rect
}

func newRegionLayout() *regionLayout {
	return &regionLayout{rects: make(map[fyne.CanvasObject]present.Rect)}
}

// place records where obj goes; the next Layout call applies it
func (l *regionLayout) place(obj fyne.CanvasObject, r present.Rect) {
	l.rects[obj] = r
}

// Layout implements fyne.Layout
func (l *regionLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, obj := range objects {
		r, ok := l.rects[obj]
		if !ok {
			obj.Move(fyne.NewPos(0, 0))
			obj.Resize(size)
			continue
		}
		obj.Move(fyne.NewPos(r.X*size.Width, r.Y*size.Height))
		obj.Resize(fyne.NewSize(r.W*size.Width, r.H*size.Height))
	}
}

// MinSize implements fyne.Layout; the screen scales to any window
func (l *regionLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, 0)
}
