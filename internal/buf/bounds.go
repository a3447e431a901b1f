package buf

// Window returns the n bytes of an arena image that start at byte address
// addr, or false when any of them lie outside it. The arithmetic is done in
// 64 bits so a 32-bit address near the top cannot wrap.
func Window(img []byte, addr uint32, n int) ([]byte, bool) {
	if n < 0 {
		return nil, false
	}
	end := uint64(addr) + uint64(n)
	if end > uint64(len(img)) {
		return nil, false
	}
	return img[addr:end], true
}
