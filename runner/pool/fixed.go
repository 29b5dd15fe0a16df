package pool

import "sync/atomic"

// fixed is a capacity-gated Pool: at most capacity distinct slots are
// ever constructed via newFn. Get never blocks; once capacity slots
// exist it hands out one already in circulation rather than creating
// another, so slots may be shared by concurrent callers that haven't
// called Put yet.
type fixed struct {
	available chan interface{}
	all       chan interface{}
	buf       chan interface{}
	newFn     func() interface{}
	created   atomic.Int64
}

// NewFixed builds a Pool that never constructs more than capacity slots,
// recycling them across callers instead.
func NewFixed(capacity uint, newFn func() interface{}) Pool {
	return &fixed{
		available: make(chan interface{}, capacity),
		all:       make(chan interface{}, capacity),
		buf:       make(chan interface{}, 1024),
		newFn:     newFn,
	}
}

func (p *fixed) Get() interface{} {
	select {
	case el := <-p.available:
		return el

	case el := <-p.buf:
		return el

	default:
		var el interface{}

		if p.created.Add(1) <= int64(cap(p.all)) {
			el = p.newFn()
		} else {
			el = <-p.all
		}

		select {
		case p.all <- el:
		default:
		}
		return el
	}
}

func (p *fixed) Put(el interface{}) {
	select {
	case p.available <- el:
	case p.all <- el:
	case p.buf <- el:
	default:
	}
}
