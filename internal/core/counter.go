package core

import "time"

var epoch = time.Now()

// PerformanceCounter returns a monotonic counter value in ticks of
// PerformanceFrequency. It only ever increases within a process.
func PerformanceCounter() uint64 {
	return uint64(time.Since(epoch))
}

// PerformanceFrequency returns the number of counter ticks per second.
func PerformanceFrequency() uint64 {
	return uint64(time.Second)
}
