package handle

import "sync/atomic"

// Stats counts wrapper activity since process start.
type Stats struct {
	LiveShared int64 // Shared wrappers not yet released
	LiveFull   int64 // Full wrappers not yet released
	Refs       int64 // foreign ref calls issued
	Unrefs     int64 // foreign unref calls issued
	Copies     int64 // foreign deep copies issued
	Frees      int64 // foreign free calls issued
}

var counters struct {
	liveShared atomic.Int64
	liveFull   atomic.Int64
	refs       atomic.Int64
	unrefs     atomic.Int64
	copies     atomic.Int64
	frees      atomic.Int64
}

// CurrentStats returns a snapshot of the counters.
func CurrentStats() Stats {
	return Stats{
		LiveShared: counters.liveShared.Load(),
		LiveFull:   counters.liveFull.Load(),
		Refs:       counters.refs.Load(),
		Unrefs:     counters.unrefs.Load(),
		Copies:     counters.copies.Load(),
		Frees:      counters.frees.Load(),
	}
}

// Sub returns the difference s - base, for measuring a section of code.
func (s Stats) Sub(base Stats) Stats {
	return Stats{
		LiveShared: s.LiveShared - base.LiveShared,
		LiveFull:   s.LiveFull - base.LiveFull,
		Refs:       s.Refs - base.Refs,
		Unrefs:     s.Unrefs - base.Unrefs,
		Copies:     s.Copies - base.Copies,
		Frees:      s.Frees - base.Frees,
	}
}
