package strategy

// midHistory is a fixed-capacity FIFO of recent midpoints. Pushing beyond
// capacity evicts the oldest entry. It is the only cross-tick state in the
// strategy layer; each owning instance is the sole reader and writer.
type midHistory struct {
	buf   []int64
	head  int // index of the oldest entry
	count int
}

func newMidHistory(capacity int) *midHistory {
	return &midHistory{buf: make([]int64, capacity)}
}

func (h *midHistory) Push(v int64) {
	if h.count < len(h.buf) {
		h.buf[(h.head+h.count)%len(h.buf)] = v
		h.count++
		return
	}
	h.buf[h.head] = v
	h.head = (h.head + 1) % len(h.buf)
}

func (h *midHistory) Len() int { return h.count }

// Sum 返回全部保留值之和。
func (h *midHistory) Sum() int64 {
	var sum int64
	for i := 0; i < h.count; i++ {
		sum += h.buf[(h.head+i)%len(h.buf)]
	}
	return sum
}

// TailSum 返回最近 n 个值之和；n 超过长度时取全部。
func (h *midHistory) TailSum(n int) int64 {
	if n > h.count {
		n = h.count
	}
	var sum int64
	for i := h.count - n; i < h.count; i++ {
		sum += h.buf[(h.head+i)%len(h.buf)]
	}
	return sum
}
