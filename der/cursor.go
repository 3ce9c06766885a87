package der

// Skip advances crs past the current element (header and content). On
// error, crs is zeroed so that accidental continued use is visibly wrong.
func Skip(crs *Cursor) error {
	h, err := DecodeHeader(crs)
	if err != nil {
		*crs = nil
		return err
	}
	_ = h
	return nil
}

// Enter narrows crs to the content span of the current element. For a BIT
// STRING, it additionally steps past the unused-bits byte, whose padding
// was already validated to be zero by [DecodeHeader]. On error, crs is
// zeroed.
func Enter(crs *Cursor) error {
	buf := *crs
	h, err := DecodeHeader(crs)
	if err != nil {
		*crs = nil
		return err
	}
	content := buf[h.HeaderLen : h.HeaderLen+h.Length]
	if h.Tag == byte(tagBitString) {
		if len(content) == 0 {
			*crs = nil
			return badMessage("enter", 0)
		}
		content = content[1:]
	}
	*crs = content
	return nil
}

// Focus narrows crs to cover exactly the first element (header and
// content), discarding any trailing siblings.
func Focus(crs *Cursor) error {
	buf := *crs
	h, err := DecodeHeader(crs)
	if err != nil {
		*crs = nil
		return err
	}
	*crs = buf[:h.HeaderLen+h.Length]
	return nil
}

// IterateFirst sets up iter to walk the run of elements that container
// holds, such as the content of a SEQUENCE OF or SET OF; iter starts at
// container's first byte. It returns false if container holds fewer than
// two bytes (nothing to iterate over).
func IterateFirst(container Cursor, iter *Cursor) bool {
	*iter = container
	return len(*iter) >= 2
}

// IterateNext advances iter past the element it currently covers. It
// returns false once fewer than two bytes remain.
func IterateNext(iter *Cursor) bool {
	_ = Skip(iter) // a failed Skip zeroes iter, which the check below treats as exhausted
	return len(*iter) >= 2
}

// Count drives [IterateFirst]/[IterateNext] to exhaustion and returns the
// number of elements found.
func Count(container Cursor) int {
	n := 0
	var iter Cursor
	if IterateFirst(container, &iter) {
		for {
			n++
			if !IterateNext(&iter) {
				break
			}
		}
	}
	return n
}

// Constructed reports whether the first element of crs uses the
// constructed encoding, per its tag's constructed bit.
func Constructed(crs Cursor) bool {
	if len(crs) == 0 {
		return false
	}
	return crs[0]&constructedBit != 0
}

// Primitive reports whether the first element of crs uses the primitive
// encoding.
func Primitive(crs Cursor) bool {
	return len(crs) > 0 && !Constructed(crs)
}

// NonEmpty reports whether crs carries at least one byte.
func NonEmpty(crs Cursor) bool {
	return len(crs) > 0
}

// IsAbsent reports whether crs is the absent-cursor marker (nil).
func IsAbsent(crs Cursor) bool {
	return crs == nil
}
