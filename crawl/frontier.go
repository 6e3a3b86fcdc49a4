package crawl

// DefaultMaxFrontier is the default frontier capacity.
const DefaultMaxFrontier = 2000

// Frontier is a bounded double-ended queue of URLs awaiting fetch.
// Priority URLs enter at the front, others at the back, and URLs
// are always taken from the front. It is not safe for concurrent use.
type Frontier struct {
	buf  []string
	head int
	n    int
	cap  int
}

// NewFrontier returns an empty frontier holding at most capacity URLs.
// A capacity below 1 uses DefaultMaxFrontier.
func NewFrontier(capacity int) *Frontier {
	if capacity < 1 {
		capacity = DefaultMaxFrontier
	}
	return &Frontier{cap: capacity}
}

// Len returns the number of queued URLs.
func (f *Frontier) Len() int { return f.n }

// Full reports whether the frontier is at capacity.
func (f *Frontier) Full() bool { return f.n >= f.cap }

// PushFront adds url at the front. It returns false, dropping url,
// when the frontier is full.
func (f *Frontier) PushFront(url string) bool {
	if f.Full() {
		return false
	}
	f.grow()
	f.head = (f.head - 1 + len(f.buf)) % len(f.buf)
	f.buf[f.head] = url
	f.n++
	return true
}

// PushBack adds url at the back. It returns false, dropping url,
// when the frontier is full.
func (f *Frontier) PushBack(url string) bool {
	if f.Full() {
		return false
	}
	f.grow()
	f.buf[(f.head+f.n)%len(f.buf)] = url
	f.n++
	return true
}

// PopFront removes and returns the URL at the front.
// The bool result is false if the frontier is empty.
func (f *Frontier) PopFront() (string, bool) {
	if f.n == 0 {
		return "", false
	}
	url := f.buf[f.head]
	f.buf[f.head] = ""
	f.head = (f.head + 1) % len(f.buf)
	f.n--
	return url, true
}

// URLs returns the queued URLs from front to back.
func (f *Frontier) URLs() []string {
	out := make([]string, f.n)
	for i := range out {
		out[i] = f.buf[(f.head+i)%len(f.buf)]
	}
	return out
}

// grow makes room for one more URL, doubling the ring up to capacity.
func (f *Frontier) grow() {
	if f.n < len(f.buf) {
		return
	}
	size := min(max(2*len(f.buf), 16), f.cap)
	buf := make([]string, size)
	for i := range f.n {
		buf[i] = f.buf[(f.head+i)%len(f.buf)]
	}
	f.buf = buf
	f.head = 0
}
