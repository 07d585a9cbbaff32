package fileserver

import "sync/atomic"

// Stats counts handler outcomes. It is safe for concurrent use.
type Stats struct {
	connections atomic.Uint64
	empty       atomic.Uint64
	badRequest  atomic.Uint64
	ok          atomic.Uint64
	notFound    atomic.Uint64
	failures    atomic.Uint64
	bytes       atomic.Uint64
}

// Snapshot is a point-in-time copy of Stats.
type Snapshot struct {
	Connections uint64 `json:"connections"`
	Empty       uint64 `json:"empty"`
	BadRequest  uint64 `json:"bad_request"`
	OK          uint64 `json:"ok"`
	NotFound    uint64 `json:"not_found"`
	Failures    uint64 `json:"failures"`
	BodyBytes   uint64 `json:"body_bytes"`
}

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Connections: s.connections.Load(),
		Empty:       s.empty.Load(),
		BadRequest:  s.badRequest.Load(),
		OK:          s.ok.Load(),
		NotFound:    s.notFound.Load(),
		Failures:    s.failures.Load(),
		BodyBytes:   s.bytes.Load(),
	}
}

func (s *Stats) recordStatus(status string) {
	switch status {
	case StatusOK:
		s.ok.Add(1)
	case StatusNotFound:
		s.notFound.Add(1)
	case StatusBadRequest:
		s.badRequest.Add(1)
	}
}
