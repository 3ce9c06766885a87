package der

import "math/bits"

// Header is the decoded <tag, length> preamble of one DER element.
type Header struct {
	Tag       byte // the raw wire tag byte (class, constructed bit, number)
	Length    int  // length of the content octets
	HeaderLen int  // total bytes occupied by tag + length octets
}

// constructedBit is the wire tag bit (0x20) marking a constructed
// encoding.
const constructedBit byte = 0x20

// lenMSB is the high bit of a length byte, signalling the long form.
const lenMSB byte = 0x80

// DecodeHeader reads one <tag, length> preamble from crs and advances crs
// past it. If crs is empty, it returns a synthetic LEAVE header (tag 0,
// length 0, header length 0) and no error — this is the terminator signal
// callers of the lower-level primitives rely on.
//
// DecodeHeader additionally validates BIT STRING padding: DER requires the
// unused-bits count to be at most 7 and the unused bits themselves to be
// zero, unlike BER which permits arbitrary padding. This is the one piece
// of content validation the header codec performs; everything else about
// the content is left to the caller.
func DecodeHeader(crs *Cursor) (Header, error) {
	buf := *crs
	if len(buf) == 0 {
		return Header{Tag: opLeave}, nil
	}
	if len(buf) < 2 {
		return Header{}, badMessage("header", 0)
	}
	tag := buf[0]
	if tag&0x1F == 0x1F {
		return Header{}, rangeExceeded("header", 0)
	}
	lenByte := buf[1]
	var length, headerLen int
	if lenByte&lenMSB == 0 {
		length = int(lenByte)
		headerLen = 2
	} else {
		k := int(lenByte &^ lenMSB)
		if k == 0 {
			return Header{}, badMessage("header", 1) // indefinite form
		}
		if 2+k > len(buf) {
			return Header{}, badMessage("header", 1)
		}
		if k > bits.UintSize/8 {
			return Header{}, rangeExceeded("header", 1)
		}
		for i := 0; i < k; i++ {
			length = length<<8 | int(buf[2+i])
		}
		headerLen = 2 + k
	}
	if length < 0 {
		// The top bit of length collided with the sign bit of int: this
		// implementation's analogue of colliding with the constructed-array
		// marker bit in the pointer-and-length C encoding.
		return Header{}, rangeExceeded("header", 1)
	}
	if headerLen+length > len(buf) {
		return Header{}, badMessage("header", headerLen)
	}
	if tag == byte(tagBitString) {
		if err := validateBitString(buf[headerLen : headerLen+length]); err != nil {
			return Header{}, err
		}
	}
	*crs = buf[headerLen+length:]
	return Header{Tag: tag, Length: length, HeaderLen: headerLen}, nil
}

// tagBitString is the universal BIT STRING tag, used only by the header
// codec's padding check (the der package does not otherwise import asn1 to
// keep it free of that dependency for callers who only need the engine).
const tagBitString = 3

func validateBitString(content []byte) error {
	if len(content) == 0 {
		return badMessage("header", 0)
	}
	unused := content[0]
	if unused > 7 {
		return badMessage("header", 0)
	}
	if unused == 0 {
		return nil
	}
	last := content[len(content)-1]
	if last&(0xFF>>(8-unused)) != 0 {
		return badMessage("header", len(content)-1)
	}
	return nil
}

// EncodeHeader appends the DER encoding of a <tag, length> header to dst
// and returns the result, using the shortest legal length form.
func EncodeHeader(dst []byte, tag byte, length int) []byte {
	dst = append(dst, tag)
	if length < 0x80 {
		return append(dst, byte(length))
	}
	var lenBytes [8]byte
	n := 0
	for v := length; v > 0; v >>= 8 {
		lenBytes[n] = byte(v)
		n++
	}
	dst = append(dst, lenMSB|byte(n))
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, lenBytes[i])
	}
	return dst
}

// headerLen returns the number of bytes EncodeHeader would write for tag
// and length, without writing them.
func headerLen(length int) int {
	if length < 0x80 {
		return 2
	}
	n := 0
	for v := length; v > 0; v >>= 8 {
		n++
	}
	return 2 + n
}
