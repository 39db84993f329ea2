package herocanvas

// hash3 mixes three integers into 32 well-distributed bits. Used wherever
// scenes need variety that must be identical on every frame.
func hash3(a, b, c int) uint32 {
	h := uint32(a)*73856093 ^ uint32(b)*19349663 ^ uint32(c)*83492791
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return h
}

// hash01 maps (i, salt) to a stable float in [0, 1).
func hash01(i, salt int) float64 {
	return float64(hash3(i, salt, 0x9e37)%10000) / 10000
}
