package der

// Walk navigates crs according to path, a sequence of one-byte steps: a
// tag byte combined with ENTER (descend) or SKIP (advance past) mode,
// optionally prefixed by an OPTIONAL or CHOICE flag. It validates only the
// elements it traverses — lazy validation is the core security stance of
// this package: siblings off the path are never inspected.
//
// Unlike [Unpack] and [Pack], where CHOICE frames a group of alternatives
// between CHOICE_BEGIN and CHOICE_END, a walk program uses a bare CHOICE
// flag on a single step: it means "whatever element is here, skip it
// unconditionally, treating the following step as the matcher for the
// next sibling". This lets a path step over ASN.1 CHOICE-typed or
// otherwise variably-tagged fields it does not care to identify, without
// needing to enumerate every alternative.
//
// Walk returns the number of unprocessed path bytes: 0 if the entire path
// resolved, or a positive count if the input was exhausted partway through
// (useful for probing optional structure without treating absence as an
// error). It returns an error only for a genuine structural mismatch or a
// DER violation on the traversed path.
func Walk(crs *Cursor, path Program) (int, error) {
	cur := *crs
	i := 0
	for i < len(path) && path[i] != opEnd {
		optional := false
		choice := false
		if path[i] == opOptional {
			optional = true
			i++
		}
		if i < len(path) && path[i] == opChoice {
			choice = true
			i++
		}
		if len(cur) < 2 {
			if len(cur) == 0 {
				break
			}
			return 0, badMessage("walk", 0)
		}
		hdr := cur
		h, err := DecodeHeader(&hdr)
		if err != nil {
			return 0, err
		}
		action := path[i]
		switch {
		case choice && !optional:
			// Skip unconditionally; action is not consumed here, it becomes
			// the matcher applied to the next sibling element.
			cur = cur[h.HeaderLen+h.Length:]
		case (h.Tag^action)&matchBits == 0:
			if action&opEnterBit != 0 {
				content := cur[h.HeaderLen : h.HeaderLen+h.Length]
				if h.Tag == byte(tagBitString) {
					content = content[1:]
				}
				cur = content
			} else {
				cur = cur[h.HeaderLen+h.Length:]
			}
			i++
		case optional:
			cur = cur[h.HeaderLen+h.Length:]
			if !choice {
				i++
			}
		default:
			return 0, badMessage("walk", 0)
		}
	}
	*crs = cur
	remaining := 0
	for i+remaining < len(path) && path[i+remaining] != opEnd {
		remaining++
	}
	return remaining, nil
}
