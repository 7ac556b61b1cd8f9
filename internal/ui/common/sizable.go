package common

type Sizeable struct {
	Width  int
	Height int
}

func NewSizeable(w int, h int) *Sizeable {
	return &Sizeable{Width: w, Height: h}
}

func (s *Sizeable) SetWidth(w int) {
	s.Width = w
}

func (s *Sizeable) SetHeight(h int) {
	s.Height = h
}
