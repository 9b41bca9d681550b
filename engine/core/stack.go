package core

import "slices"

// StateStack owns the ordered states. Index 0 is the bottom, the last
// entry is the top and the active state.
type StateStack struct{ list []State }

// SetState leaves every held state bottom to top, then pushes s alone.
func (ss *StateStack) SetState(s State) {
	for _, old := range ss.list {
		old.Leave()
	}
	clear(ss.list)
	ss.list = ss.list[:0]
	ss.PushState(s)
}

func (ss *StateStack) PushState(s State) {
	ss.list = append(ss.list, s)
	s.Enter()
}

// PopState leaves and removes the top. The last state can't be popped.
func (ss *StateStack) PopState() (State, bool) {
	if len(ss.list) <= 1 {
		return nil, false
	}
	i := len(ss.list) - 1
	s := ss.list[i]
	s.Leave()
	ss.list[i] = nil
	ss.list = ss.list[:i]
	return s, true
}

func (ss *StateStack) PeekState() State {
	if len(ss.list) == 0 {
		panic("core: peek on empty state stack")
	}
	return ss.list[len(ss.list)-1]
}

func (ss *StateStack) PeekFirstState() State {
	if len(ss.list) == 0 {
		panic("core: peek on empty state stack")
	}
	return ss.list[0]
}

// IsActive reports whether s is the top of the stack.
func (ss *StateStack) IsActive(s State) bool {
	return len(ss.list) > 0 && ss.list[len(ss.list)-1] == s
}

func (ss *StateStack) Len() int { return len(ss.list) }

func (ss *StateStack) At(i int) State { return ss.list[i] }

// ForEach walks bottom to top.
func (ss *StateStack) ForEach(f func(i int, s State)) {
	for i, s := range ss.list {
		f(i, s)
	}
}

// ForEachReverse walks the states held when it was called, top to
// bottom, until f returns true. States f removes are skipped; states f
// adds are not visited.
func (ss *StateStack) ForEachReverse(f func(i int, s State) bool) {
	held := slices.Clone(ss.list)
	for i := len(held) - 1; i >= 0; i-- {
		if !ss.Contains(held[i]) {
			continue
		}
		if stop := f(i, held[i]); stop {
			break
		}
	}
}

// Contains reports whether s is anywhere on the stack.
func (ss *StateStack) Contains(s State) bool {
	return slices.Contains(ss.list, s)
}
