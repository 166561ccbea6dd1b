package view

import "strconv"

// CharView is an immutable window over a []uint16 buffer, indexing UTF-16
// code units. Its operation surface mirrors ByteView exactly; the two
// types share no storage so the hot parser path can be monomorphised per
// alphabet (see internal/engine).
type CharView struct {
	buf []uint16
	off int
	len int
}

// NewCharView wraps the whole of buf in a CharView.
func NewCharView(buf []uint16) CharView {
	return CharView{buf: buf, len: len(buf)}
}

// Len returns the number of code units in the view.
func (v CharView) Len() int { return v.len }

// IsEmpty reports whether the view has zero length.
func (v CharView) IsEmpty() bool { return v.len == 0 }

// At returns the code unit at index i. Indexing one past the end
// (i == Len()) is legal and returns the synthetic zero unit used to model
// end-of-input.
func (v CharView) At(i int) uint16 {
	if i == v.len {
		return 0
	}
	return v.buf[v.off+i]
}

// Slice returns the sub-view [start, end), sharing the same backing array.
func (v CharView) Slice(start, end int) CharView {
	if start < 0 || end > v.len || start > end {
		panic("view: CharView.Slice out of range")
	}
	return CharView{buf: v.buf, off: v.off + start, len: end - start}
}

// Units returns the view's content. The result shares the backing array.
func (v CharView) Units() []uint16 {
	return v.buf[v.off : v.off+v.len]
}

// String materialises the view's content as a new string.
func (v CharView) String() string {
	units := v.Units()
	runes := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		if u >= 0xD800 && u <= 0xDBFF && i+1 < len(units) {
			u2 := units[i+1]
			if u2 >= 0xDC00 && u2 <= 0xDFFF {
				r := (rune(u)-0xD800)<<10 | (rune(u2) - 0xDC00) + 0x10000
				runes = append(runes, r)
				i++
				continue
			}
		}
		runes = append(runes, rune(u))
	}
	return string(runes)
}

// HasPrefix reports whether the view starts with prefix, unit for unit.
func (v CharView) HasPrefix(prefix []uint16) bool {
	if len(prefix) > v.len {
		return false
	}
	for i, u := range prefix {
		if v.At(i) != u {
			return false
		}
	}
	return true
}

// HasPrefixFold is HasPrefix, comparing ASCII letters case-insensitively.
func (v CharView) HasPrefixFold(prefix []uint16) bool {
	if len(prefix) > v.len {
		return false
	}
	for i, u := range prefix {
		if !asciiEqualFold16(v.At(i), u) {
			return false
		}
	}
	return true
}

// HasSuffix reports whether the view ends with suffix, unit for unit.
func (v CharView) HasSuffix(suffix []uint16) bool {
	if len(suffix) > v.len {
		return false
	}
	base := v.len - len(suffix)
	for i, u := range suffix {
		if v.At(base+i) != u {
			return false
		}
	}
	return true
}

// HasSuffixFold is HasSuffix, comparing ASCII letters case-insensitively.
func (v CharView) HasSuffixFold(suffix []uint16) bool {
	if len(suffix) > v.len {
		return false
	}
	base := v.len - len(suffix)
	for i, u := range suffix {
		if !asciiEqualFold16(v.At(base+i), u) {
			return false
		}
	}
	return true
}

func asciiEqualFold16(a, b uint16) bool {
	return asciiLower16(a) == asciiLower16(b)
}

func asciiLower16(u uint16) uint16 {
	if u >= 'A' && u <= 'Z' {
		return u + ('a' - 'A')
	}
	return u
}

func isASCIISpace16(u uint16) bool {
	switch u {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}

// TrimSpace returns the view with leading and trailing ASCII whitespace removed.
func (v CharView) TrimSpace() CharView {
	start, end := 0, v.len
	for start < end && isASCIISpace16(v.At(start)) {
		start++
	}
	for end > start && isASCIISpace16(v.At(end-1)) {
		end--
	}
	return v.Slice(start, end)
}

// Split divides the view at every code unit for which pred returns true,
// dropping the separator units themselves.
func (v CharView) Split(pred func(uint16) bool) []CharView {
	var out []CharView
	start := -1
	for i := 0; i < v.len; i++ {
		if pred(v.At(i)) {
			if start >= 0 {
				out = append(out, v.Slice(start, i))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, v.Slice(start, v.len))
	}
	return out
}

// Compare lexicographically compares v and other by code-unit value.
func (v CharView) Compare(other CharView) int {
	n := v.len
	if other.len < n {
		n = other.len
	}
	for i := 0; i < n; i++ {
		a, b := v.At(i), other.At(i)
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	switch {
	case v.len < other.len:
		return -1
	case v.len > other.len:
		return 1
	default:
		return 0
	}
}

// Equal reports whether v and other hold identical content.
func (v CharView) Equal(other CharView) bool {
	return v.Compare(other) == 0
}

func isDigit16(u uint16) bool { return u >= '0' && u <= '9' }

// ParseInt64 parses a leading, optionally-signed run of decimal digits,
// returning the parsed value and the number of units consumed. Consumed is
// zero when no digits were present.
func (v CharView) ParseInt64() (int64, int) {
	i, neg := 0, false
	if i < v.len && (v.At(i) == '-' || v.At(i) == '+') {
		neg = v.At(i) == '-'
		i++
	}
	start := i
	var val int64
	for i < v.len && isDigit16(v.At(i)) {
		val = val*10 + int64(v.At(i)-'0')
		i++
	}
	if i == start {
		return 0, 0
	}
	if neg {
		val = -val
	}
	return val, i
}

// ParseInt32 is ParseInt64, truncated to int32.
func (v CharView) ParseInt32() (int32, int) {
	val, n := v.ParseInt64()
	return int32(val), n
}

// ParseFloat64 scans a maximal leading float-shaped token and parses it via
// strconv, returning the value and the number of units consumed. Consumed
// is zero when no digits were present.
func (v CharView) ParseFloat64() (float64, int) {
	i := 0
	if i < v.len && (v.At(i) == '-' || v.At(i) == '+') {
		i++
	}
	digitsStart := i
	for i < v.len && isDigit16(v.At(i)) {
		i++
	}
	hasIntDigits := i > digitsStart
	if i < v.len && v.At(i) == '.' {
		j := i + 1
		k := j
		for k < v.len && isDigit16(v.At(k)) {
			k++
		}
		if k > j {
			i = k
			hasIntDigits = true
		}
	}
	if !hasIntDigits {
		return 0, 0
	}
	if i < v.len && (v.At(i) == 'e' || v.At(i) == 'E') {
		j := i + 1
		if j < v.len && (v.At(j) == '-' || v.At(j) == '+') {
			j++
		}
		k := j
		for k < v.len && isDigit16(v.At(k)) {
			k++
		}
		if k > j {
			i = k
		}
	}
	f, err := strconv.ParseFloat(v.Slice(0, i).String(), 64)
	if err != nil {
		return 0, 0
	}
	return f, i
}
