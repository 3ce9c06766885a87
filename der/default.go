package der

// ApplyDefault returns dflt when v is absent, and v unchanged otherwise.
// Schema programs never encode DEFAULT values themselves — a DEFAULT'ed
// field unpacks as an ordinary OPTIONAL, absent whenever the encoder chose
// to omit it — so callers apply the default value manually after unpack.
func ApplyDefault(v, dflt View) View {
	if v.IsAbsent() {
		return dflt
	}
	return v
}

// OmitDefault returns the absent view when v's content equals dflt's
// byte-for-byte, and v unchanged otherwise. DER requires an encoder to
// omit a DEFAULT field whenever its value matches the default, so callers
// run every DEFAULT'ed field through OmitDefault before [Pack].
func OmitDefault(v, dflt View) View {
	if v.IsAbsent() {
		return v
	}
	if Compare(v, dflt) == 0 {
		return Absent
	}
	return v
}
