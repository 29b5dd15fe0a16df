package workplanner

import "container/list"

// deque is a FIFO sequence of commands supporting head-only inspection
// plus a push-back-to-front discipline: take a peek at the head, and if
// it isn't eligible, put it back exactly where it came from without
// disturbing the rest of the order.
type deque struct {
	l *list.List
}

func newDeque() *deque {
	return &deque{l: list.New()}
}

func (d *deque) len() int { return d.l.Len() }

// pushBack appends a command to the tail (used by Submit).
func (d *deque) pushBack(cmd Command) {
	d.l.PushBack(cmd)
}

// popFront removes and returns the head command, or nil if empty.
func (d *deque) popFront() Command {
	e := d.l.Front()
	if e == nil {
		return nil
	}
	d.l.Remove(e)
	return e.Value.(Command)
}

// pushFront re-inserts a command at the head, preserving order for the
// rest of the queue. Used when a popped head turns out ineligible.
func (d *deque) pushFront(cmd Command) {
	d.l.PushFront(cmd)
}

// any reports whether a command matching pred exists anywhere in the
// queue. Used only by Complete's current-group scan, which is the one
// documented linear scan the design allows.
func (d *deque) any(pred func(Command) bool) bool {
	for e := d.l.Front(); e != nil; e = e.Next() {
		if pred(e.Value.(Command)) {
			return true
		}
	}
	return false
}
