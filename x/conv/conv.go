// Package conv formats numbers into caller-supplied buffers without fmt or
// strconv, so error messages can be built on MCU targets.
package conv

const hexd = "0123456789abcdef"

// AppendUint appends the base-10 representation of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	var tmp [20]byte
	i := len(tmp)
	if n == 0 {
		i--
		tmp[i] = '0'
	}
	for n > 0 {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
	}
	return append(dst, tmp[i:]...)
}

// AppendHex appends n as 0x-prefixed lowercase hex, zero-padded to at least
// minDigits digits.
func AppendHex(dst []byte, n uint64, minDigits int) []byte {
	var tmp [16]byte
	i := len(tmp)
	for n > 0 || len(tmp)-i < minDigits || i == len(tmp) {
		if i == 0 {
			break
		}
		i--
		tmp[i] = hexd[n&0xF]
		n >>= 4
	}
	dst = append(dst, '0', 'x')
	return append(dst, tmp[i:]...)
}

// Hex returns n formatted as by AppendHex with 8 digits.
func Hex(n uint64) string {
	var buf [18]byte
	return string(AppendHex(buf[:0], n, 8))
}

// Uint returns n in base 10.
func Uint(n uint64) string {
	var buf [20]byte
	return string(AppendUint(buf[:0], n))
}
