package list

// List is a cursor list. Cursor is -1 while the list is empty.
type List[T any] struct {
	Items  []T
	Cursor int
}

func NewList[T any]() *List[T] {
	return &List[T]{Cursor: -1}
}

func (l *List[T]) Len() int {
	return len(l.Items)
}

// Current returns the item under the cursor, or the zero value when the
// cursor is out of range.
func (l *List[T]) Current() T {
	var zero T
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return zero
	}
	return l.Items[l.Cursor]
}

func (l *List[T]) SetItems(items []T) {
	l.Items = items
	if len(items) == 0 {
		l.Cursor = -1
		return
	}
	if l.Cursor < 0 || l.Cursor >= len(items) {
		l.Cursor = 0
	}
}

func (l *List[T]) CursorUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

func (l *List[T]) CursorDown() {
	if l.Cursor < len(l.Items)-1 {
		l.Cursor++
	}
}
