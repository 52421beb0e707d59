// Package memzero wipes byte buffers that held roster data.
package memzero

import "crypto/subtle"

// Zero overwrites every buffer in bufs with zeros in a constant-time friendly
// way. Nil and empty buffers are skipped.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		zero := make([]byte, len(b))
		subtle.ConstantTimeCopy(1, b, zero)
	}
}
