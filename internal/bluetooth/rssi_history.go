package bluetooth

// rssiRing keeps the most recent smoothed RSSI samples of one beacon.
type rssiRing struct {
	buf  []float64
	next int
	full bool
}

func newRSSIRing(capacity int) *rssiRing {
	if capacity < 1 {
		capacity = 1
	}
	return &rssiRing{buf: make([]float64, capacity)}
}

func (r *rssiRing) push(v float64) {
	r.buf[r.next] = v
	r.next = (r.next + 1) % len(r.buf)
	if r.next == 0 {
		r.full = true
	}
}

// values returns a copy of the samples, oldest first.
func (r *rssiRing) values() []float64 {
	if !r.full {
		if r.next == 0 {
			return nil
		}
		return append([]float64(nil), r.buf[:r.next]...)
	}
	out := make([]float64, 0, len(r.buf))
	out = append(out, r.buf[r.next:]...)
	return append(out, r.buf[:r.next]...)
}
