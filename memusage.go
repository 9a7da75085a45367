package sigcache

// UsageFunc estimates the dynamic memory footprint, in bytes, of an entry
// set holding entries keys with its containers grown to capacity slots. The
// estimate must cover structural container overhead, not just entry bytes,
// and must be monotonic in entries so the eviction loop terminates.
type UsageFunc func(entries, capacity int) int64

const (
	// mapNodeBytes approximates one occupied hash map slot: the 32-byte key,
	// the slice position and amortized bucket overhead.
	mapNodeBytes = 32 + 8 + 16

	// sliceSlotBytes is one slot of the backing key slice. Allocated slots
	// are charged whether occupied or not, since the slice never shrinks.
	sliceSlotBytes = 32

	// baseBytes covers the set headers and the empty map allocation.
	baseBytes = 256
)

// DynamicUsage is the default UsageFunc. It models the two containers of the
// entry set: a per-entry term for the hash map nodes and a per-capacity term
// for the backing slice allocation.
func DynamicUsage(entries, capacity int) int64 {
	return baseBytes + int64(entries)*mapNodeBytes + int64(capacity)*sliceSlotBytes
}
