package ti83f

// Checksum sums every byte of the entry region modulo 65536. The format
// stores the result little-endian after the region.
func Checksum(region []byte) uint16 {
	var sum uint16
	for _, b := range region {
		sum += uint16(b)
	}
	return sum
}

// VerifyChecksum reports whether the stored checksum matches the region.
func VerifyChecksum(region []byte, want uint16) bool {
	return Checksum(region) == want
}
