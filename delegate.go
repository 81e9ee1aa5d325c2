// SPDX-License-Identifier: Unlicense OR MIT

package pullup

// Delegate receives the lifecycle notifications of a panel.
type Delegate interface {
	// WillMove is called before the panel moves to a sticky point.
	WillMove(point float32)
	// DidMove is called when the panel rests at a sticky point.
	DidMove(point float32)
	// Drag is called for every drag sample with the panel top offset in
	// host coordinates.
	Drag(top float32)
}

// Funcs is a Delegate built from optional functions.
type Funcs struct {
	WillMoveFunc func(point float32)
	DidMoveFunc  func(point float32)
	DragFunc     func(top float32)
}

func (f Funcs) WillMove(point float32) {
	if f.WillMoveFunc != nil {
		f.WillMoveFunc(point)
	}
}

func (f Funcs) DidMove(point float32) {
	if f.DidMoveFunc != nil {
		f.DidMoveFunc(point)
	}
}

func (f Funcs) Drag(top float32) {
	if f.DragFunc != nil {
		f.DragFunc(top)
	}
}
