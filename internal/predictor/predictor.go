// Package predictor implements the FCM/DFCM dual-predictor state shared by
// the encoder and decoder. Both sides construct an independent State and
// must call Predictions/Advance in lockstep with identical values for the
// two tables to stay synchronized.
package predictor

import "github.com/su225/fpc-compression/internal/pool"

// State holds one call's FCM and DFCM tables, their rolling hashes, and the
// last-value register. It is owned exclusively by the compress or decompress
// call that created it and must be released with Release when done.
type State struct {
	fcm  []uint64
	dfcm []uint64

	fcmHash  uint64
	dfcmHash uint64
	last     uint64
	mask     uint64

	releaseFCM  func()
	releaseDFCM func()
}

// New allocates predictor tables of size t, which the caller must have
// already validated as a nonzero power of two.
func New(t uint64) *State {
	fcm, releaseFCM := pool.GetUint64Slice(int(t))
	dfcm, releaseDFCM := pool.GetUint64Slice(int(t))

	return &State{
		fcm:         fcm,
		dfcm:        dfcm,
		mask:        t - 1,
		releaseFCM:  releaseFCM,
		releaseDFCM: releaseDFCM,
	}
}

// Release returns the predictor tables to the pool. Must be called exactly
// once, typically via defer, after the State is no longer needed.
func (s *State) Release() {
	s.releaseFCM()
	s.releaseDFCM()
}

// Predictions returns the FCM and DFCM predictions for the value about to be
// processed. It does not mutate state; call Advance afterward with the true
// value to move both tables forward.
func (s *State) Predictions() (fcmPred, dfcmPred uint64) {
	return s.fcm[s.fcmHash], s.dfcm[s.dfcmHash] + s.last
}

// Advance stores v into both tables at their current hash slots, rotates
// both hashes, and updates the last-value register. The encoder calls this
// with the true bit pattern of the value it just encoded; the decoder calls
// it with the bit pattern it just reconstructed. As long as both sides see
// the same sequence of v's, their tables evolve identically.
func (s *State) Advance(v uint64) {
	delta := v - s.last // wraps, as required for DFCM deltas

	s.fcm[s.fcmHash] = v
	s.dfcm[s.dfcmHash] = delta

	s.fcmHash = ((s.fcmHash << 6) ^ (v >> 48)) & s.mask
	s.dfcmHash = ((s.dfcmHash << 2) ^ (delta >> 40)) & s.mask

	s.last = v
}
