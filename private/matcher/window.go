package matcher

// windowWidths are the discriminator widths tried, in order.
var windowWidths = [...]int{1, 2, 4, 8}

// window is a fixed width slice of a name, read as a little-endian integer.
type window struct {
	offset int
	width  int
}

// value decodes the window of name. The name must be at
// least offset+width bytes long.
func (w window) value(name string) uint64 {
	var v uint64
	for i := 0; i < w.width; i++ {
		v |= uint64(name[w.offset+i]) << (8 * i)
	}
	return v
}

// findWindow searches for a window whose value differs for every
// candidate, each of which is n bytes long. Narrower windows are
// tried first, then lower offsets. It returns false when no window
// of any width separates the candidates.
func findWindow(n int, cands []candidate) (window, bool) {
	seen := make(map[uint64]struct{}, len(cands))
	for _, width := range windowWidths {
		if width > n {
			break
		}
	offsets:
		for offset := 0; offset+width <= n; offset++ {
			w := window{offset: offset, width: width}
			clear(seen)
			for _, c := range cands {
				v := w.value(c.name)
				if _, dup := seen[v]; dup {
					continue offsets
				}
				seen[v] = struct{}{}
			}
			return w, true
		}
	}
	return window{}, false
}
