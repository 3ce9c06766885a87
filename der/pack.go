package der

// Pack encodes views according to path and returns the resulting DER bytes.
// It is the inverse of [Unpack]: the same program, walked in the same
// nesting order, consumes one view per STORE/ANY/Prepack step.
//
// Pack measures the encoding first with [Size], allocates exactly that many
// bytes, then fills the buffer from its tail backward — the classic DER
// trick that writes each length-prefixed header after its content, so no
// subtree's length has to be computed ahead of writing it. A SEQUENCE's
// length byte is written only once every one of its children has already
// been written behind it.
func Pack(path Program, views []View) ([]byte, error) {
	n, err := Size(path, views)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	end := n
	if _, err := packDriver(path, views, buf, &end); err != nil {
		return nil, err
	}
	return buf, nil
}

// Size returns the number of bytes [Pack] would produce for path and views,
// without allocating or writing anything.
func Size(path Program, views []View) (int, error) {
	return packDriver(path, views, nil, nil)
}

func packDriver(path Program, views []View, buf []byte, end *int) (int, error) {
	pi := topLevelEnd(path)
	vi := len(views)
	total := 0
	for pi > 0 {
		n, err := packRec(path, &pi, views, &vi, buf, end)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// topLevelEnd finds the index of the program's final END byte, the one at
// nesting depth 0 — everything before it is one top-level frame (typically
// a single ENTER...LEAVE span) for [packRec] to consume backward.
func topLevelEnd(path Program) int {
	depth := 0
	for i, b := range path {
		if b == opEnd && depth == 0 {
			return i
		}
		if b&opEnterBit != 0 && b != opOptional {
			depth++
		} else if b == opLeave {
			depth--
		}
	}
	return len(path)
}

// packRec walks path backward from *pi (exclusive) and views backward from
// *vi (exclusive), consuming one instruction per iteration until it closes
// an ENTER frame or runs out of program, mirroring the reference engine's
// recursive backward walk.
func packRec(path Program, pi *int, views []View, vi *int, buf []byte, end *int) (int, error) {
	total := 0
	for {
		*pi--
		cmd := path[*pi]
		if cmd == opChoice || cmd == opOptional {
			// Carries no data of its own; the consumed view's absence or
			// presence already reflects the choice or optionality.
			if *pi == 0 {
				return total, nil
			}
			continue
		}
		tag := cmd
		bitstr := cmd == opEnterBit|byte(tagBitString)
		isEnter := cmd&opEnterBit != 0
		addHeader := false
		var elmLen int
		switch {
		case isEnter:
			addHeader = total > 0
			elmLen = total
			total = 0
			if bitstr {
				// DER encodes a BIT STRING primitively, whatever it wraps.
				tag = byte(tagBitString)
			}
		case cmd == opLeave:
			n, err := packRec(path, pi, views, vi, buf, end)
			if err != nil {
				return 0, err
			}
			elmLen = n
		default:
			addHeader = cmd != opAny
			*vi--
			v := views[*vi]
			switch {
			case v.IsAbsent():
				elmLen = 0
				addHeader = false
			case v.IsPrepacked():
				n, err := packPrepack(v, buf, end)
				if err != nil {
					return 0, err
				}
				elmLen = n
			default:
				elmLen = v.Len()
				if buf != nil && elmLen > 0 {
					*end -= elmLen
					copy(buf[*end:], v.Data())
				}
			}
			if tag == 0x08 || tag == 0x0b || tag == 0x10 || tag == 0x11 {
				// EXTERNAL, EMBEDDED PDV, SEQUENCE, SET: primitive encoding
				// is invalid for these, rewrite to constructed on the way out.
				tag |= constructedBit
			}
		}
		if addHeader {
			if bitstr {
				// The unused-bits count byte is part of the content length.
				if buf != nil {
					*end--
					buf[*end] = 0x00
				}
				elmLen++
			}
			lenLen := 0
			if elmLen >= 0x80 {
				for v := elmLen; v > 0; v >>= 8 {
					if buf != nil {
						*end--
						buf[*end] = byte(v)
					}
					lenLen++
				}
			}
			if buf != nil {
				*end--
				if elmLen >= 0x80 {
					buf[*end] = lenMSB | byte(lenLen)
				} else {
					buf[*end] = byte(elmLen)
				}
				*end--
				buf[*end] = tag
			}
			elmLen += 2 + lenLen
		}
		total += elmLen
		if isEnter || *pi == 0 {
			return total, nil
		}
	}
}

// packPrepack measures (and, when buf is non-nil, writes) a [Prepack]
// view's children backward, the same way packRec writes ordinary siblings.
// It recurses for nested Prepack children, letting a caller splice an
// arbitrarily deep, dynamically sized SEQUENCE OF/SET OF into a single
// STORE slot.
func packPrepack(v View, buf []byte, end *int) (int, error) {
	total := 0
	children := v.Children()
	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		var n int
		var err error
		if c.IsPrepacked() {
			n, err = packPrepack(c, buf, end)
			if err != nil {
				return 0, err
			}
		} else {
			n = c.Len()
			if buf != nil && n > 0 {
				*end -= n
				copy(buf[*end:], c.Data())
			}
		}
		total += n
	}
	return total, nil
}
