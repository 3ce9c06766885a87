package der

// Cursor is a borrow into a DER-encoded byte buffer: the remaining, not yet
// consumed, portion of it. A Go slice header is already exactly the
// (pointer, length) pair the engine needs, so cursor primitives are
// implemented as ordinary reslicing — no allocation, no copying.
type Cursor []byte

// viewKind distinguishes what a [View] currently holds.
type viewKind uint8

const (
	viewAbsent   viewKind = iota // missing OPTIONAL, unchosen CHOICE arm, or DEFAULT
	viewBytes                    // a borrow into the original input buffer
	viewArray                    // a prepacked constructed element: child views
	viewRepeated                 // a subparser-rewritten SEQUENCE OF/SET OF: flattened per-element view records
)

// View is the result of decomposing one DER element: either a borrowed
// span of bytes, an absent marker, or — when a caller wants to splice a
// dynamically built constructed element into [Pack] — a prepacked array of
// child views. This is the Go-native tagged-union replacement for the
// pointer/length union the underlying C engine uses (see the package's
// design notes): the wire format is unaffected, only the in-memory
// representation.
type View struct {
	kind        viewKind
	bytes       []byte
	array       []View
	elementSize int // for viewRepeated: number of array slots per repetition
}

// Bytes returns b as a byte view, covering either the content octets of
// the matched element (the common case) or, for an ANY match, the entire
// element including its header.
func Bytes(b []byte) View { return View{kind: viewBytes, bytes: b} }

// Absent is the view stored for a missing OPTIONAL element or an unchosen
// CHOICE arm. Its zero value is also absent, so the zero [View] is always
// valid.
var Absent = View{}

// Prepack wraps views as a constructed element for [Pack]: packing a
// Prepack view recursively emits each child view, concatenated, under one
// header. This is how a caller builds a SEQUENCE OF/SET OF element whose
// element count is only known at runtime.
func Prepack(views []View) View { return View{kind: viewArray, array: views} }

// IsAbsent reports whether v represents a missing OPTIONAL element or an
// unchosen CHOICE arm.
func (v View) IsAbsent() bool { return v.kind == viewAbsent }

// IsPrepacked reports whether v is a constructed-array marker produced by
// [Prepack].
func (v View) IsPrepacked() bool { return v.kind == viewArray }

// Data returns the borrowed byte span of v. It panics if v is not a byte
// view (use [View.IsAbsent] and [View.IsPrepacked] to check first).
func (v View) Data() []byte {
	if v.kind != viewBytes {
		panic("der: View.Data called on a non-byte view")
	}
	return v.bytes
}

// Len returns the number of content bytes in v, or 0 if v is absent or
// prepacked.
func (v View) Len() int {
	if v.kind != viewBytes {
		return 0
	}
	return len(v.bytes)
}

// Children returns the child views of a [Prepack] view. It panics if v is
// not prepacked.
func (v View) Children() []View {
	if v.kind != viewArray {
		panic("der: View.Children called on a non-array view")
	}
	return v.array
}

// Repeated wraps a flat array of view records as the subparser driver's
// rewrite of a SEQUENCE OF/SET OF slot: children holds count*elementSize
// views, elementSize per repetition. This is the read-side counterpart to
// [Prepack]: where Prepack lets a caller splice a dynamically sized
// constructed element into [Pack], Repeated is what [Subparse] leaves
// behind after decomposing one.
func Repeated(children []View, elementSize int) View {
	return View{kind: viewRepeated, array: children, elementSize: elementSize}
}

// IsRepeated reports whether v was produced by [Subparse].
func (v View) IsRepeated() bool { return v.kind == viewRepeated }

// Count returns the number of repetitions in a [Repeated] view. It panics
// if v is not repeated.
func (v View) Count() int {
	if v.kind != viewRepeated {
		panic("der: View.Count called on a non-repeated view")
	}
	if v.elementSize == 0 {
		return 0
	}
	return len(v.array) / v.elementSize
}

// Element returns the view records of the i'th repetition of a [Repeated]
// view. It panics if v is not repeated.
func (v View) Element(i int) []View {
	if v.kind != viewRepeated {
		panic("der: View.Element called on a non-repeated view")
	}
	return v.array[i*v.elementSize : (i+1)*v.elementSize]
}
