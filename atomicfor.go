package primecount

import "sync/atomic"

// dynamicSchedule hands out unique, non-decreasing loop indices to a
// group of worker goroutines using a single shared counter. It
// replaces chunked work queues, whose coordination overhead scales
// poorly past ~64 threads: here one fetch-add is the whole scheduler.
//
// The counter starts out unset; the first Next call initializes it
// with a compare-and-swap. The losers of that race proceed straight to
// the fetch-add, which is correct because they add to the same
// baseline the winner installed. Iterations are independent and
// read-only, so no ordering beyond the counter itself is required;
// relaxed atomics would suffice, Go's sequentially consistent ones are
// strictly stronger.
type dynamicSchedule struct {
	next atomic.Int64
}

const scheduleUnset = int64(-1) << 62

func newDynamicSchedule() *dynamicSchedule {
	d := &dynamicSchedule{}
	d.next.Store(scheduleUnset)
	return d
}

// Next returns the next loop index. start is the first index of the
// loop and must be the same for every caller.
func (d *dynamicSchedule) Next(start int64) int64 {
	d.next.CompareAndSwap(scheduleUnset, start)
	return d.next.Add(1) - 1
}
