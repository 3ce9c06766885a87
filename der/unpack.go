package der

// Unpack decodes crs according to path and appends one [View] per STORE (or
// ANY) step to out, returning the extended slice. It implements OPTIONAL,
// CHOICE and DEFAULT-adjacent absence the way the schema program encodes
// them: a missing element contributes the absent view, never an error, as
// long as a program flag licenses the absence.
//
// Unpack validates only what it actually traverses. A step guarded by a
// CHOICE that never matches, or an OPTIONAL element that is missing from
// the wire, leaves everything beyond it untouched.
//
// By default, Unpack rejects bytes remaining in crs once path's top-level
// LEAVE is reached; pass [LenientTrailingData] to allow them.
func Unpack(crs *Cursor, path Program, out []View, opts ...UnpackOption) ([]View, error) {
	cfg := resolveUnpackConfig(opts)
	out, _, err := unpackRec(crs, path, 0, out, false, false, false)
	if err != nil {
		return out, err
	}
	if cfg.strictTrailing && len(*crs) != 0 {
		return out, badMessage("unpack", 0)
	}
	return out, nil
}

// unpackRec mirrors the recursive structure of the reference unpacker: one
// call handles one ENTER...LEAVE or CHOICE_BEGIN...CHOICE_END frame, with
// choice/optional/optout threaded as the frame's state and wi tracking the
// current offset into path. The terminal for a frame entered via
// CHOICE_BEGIN is the same 0x1F byte that opens it (CHOICE_END); a frame
// entered via ENTER (or the top-level call) terminates on LEAVE.
func unpackRec(crs *Cursor, path Program, wi int, out []View, choice, optional, optout bool) ([]View, int, error) {
	terminal := opLeave
	if choice {
		terminal = opChoice
	}
	cur := *crs
	chosen := false
	for wi < len(path) && path[wi] != terminal {
		if path[wi] == opOptional {
			if optional || choice {
				return out, wi, badMessage("unpack", 0)
			}
			optional = true
			wi++
		}
		if wi < len(path) && path[wi] == opChoice {
			if choice {
				return out, wi, badMessage("unpack", 0)
			}
			var err error
			out, wi, err = unpackRec(&cur, path, wi+1, out, true, optional, optout)
			if err != nil {
				return out, wi, err
			}
			optional = false
			continue
		}
		cmd := path[wi]
		wi++
		// An empty cur decodes as a synthetic zero header (see DecodeHeader),
		// which cannot match any real tag: the switch below falls through to
		// the optional/choice/optout forgiveness cases, or to the error case
		// if none apply. A lone stray byte still fails here regardless of
		// those flags, same as DecodeHeader's own truncation check.
		hdr := cur
		h, err := DecodeHeader(&hdr)
		if err != nil {
			return out, wi, err
		}
		content := cur[h.HeaderLen : h.HeaderLen+h.Length]
		sibling := cur[h.HeaderLen+h.Length:]

		matched := false
		optoutsub := optout
		switch {
		case chosen || optout:
			optoutsub = true
		case h.HeaderLen > 0 && (cmd == opAny || (h.Tag^cmd)&matchBits == 0):
			matched = true
			optoutsub = optout
			if choice {
				optout = true
				chosen = true
			}
		case choice, optional:
			optoutsub = true
		default:
			return out, wi, badMessage("unpack", 0)
		}

		next := cur
		if matched {
			next = sibling
		}

		if cmd&opEnterBit != 0 && cmd != opAny {
			sub := content
			if !matched {
				sub = cur
			} else if cmd == opEnterBit|byte(tagBitString) {
				if len(content) == 0 || content[0] != 0x00 {
					return out, wi, badMessage("unpack", h.HeaderLen)
				}
				sub = content[1:]
			}
			if optoutsub {
				sub = nil
			}
			out, wi, err = unpackRec(&sub, path, wi, out, false, false, optoutsub)
			if err != nil {
				return out, wi, err
			}
			if matched {
				next = sibling
			}
		} else if optoutsub {
			out = append(out, Absent)
		} else if cmd == opAny {
			out = append(out, Bytes(cur[:h.HeaderLen+h.Length]))
		} else {
			out = append(out, Bytes(content))
		}

		if !choice {
			optional = false
		}
		cur = next
	}
	wi++ // past the terminal
	if choice && !chosen && !optional && !optout {
		return out, wi, badMessage("unpack", 0)
	}
	*crs = cur
	return out, wi, nil
}
