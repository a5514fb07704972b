package geometry

import "github.com/dcarlson/go-pathtracer/pkg/core"

// TraceStats counts intersection tests per shape kind. It is diagnostic
// only and never affects intersection results. Fields are plain integers:
// a parallel renderer keeps one TraceStats per worker and combines them
// with Merge when tracing finishes.
type TraceStats struct {
	SphereTests uint64 // Number of ray-sphere intersection tests
	QuadTests   uint64 // Number of ray-quad intersection tests
}

// Merge adds another worker's counters into this one
func (s *TraceStats) Merge(other TraceStats) {
	s.SphereTests += other.SphereTests
	s.QuadTests += other.QuadTests
}

// Total returns the combined number of intersection tests
func (s *TraceStats) Total() uint64 {
	return s.SphereTests + s.QuadTests
}

// Log reports the counters through the given logger
func (s *TraceStats) Log(logger core.Logger) {
	logger.Printf("intersection tests: %d sphere, %d quad (%d total)",
		s.SphereTests, s.QuadTests, s.Total())
}

func (s *TraceStats) countSphereTest() {
	if s != nil {
		s.SphereTests++
	}
}

func (s *TraceStats) countQuadTest() {
	if s != nil {
		s.QuadTests++
	}
}
