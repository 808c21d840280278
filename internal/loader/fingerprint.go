package loader

import (
	"crypto/sha256"
	"encoding/hex"
)

// fingerprint identifies one data load: SHA-256 over both raw tables plus
// the filter bounds. Identical content and bounds always produce the same
// key, so it doubles as the session cache key.
func fingerprint(txData, mccData []byte, filter DateFilter) string {
	h := sha256.New()
	h.Write(txData)
	h.Write([]byte{0})
	h.Write(mccData)
	h.Write([]byte{0})
	h.Write([]byte(filter.String()))
	return hex.EncodeToString(h.Sum(nil))
}
