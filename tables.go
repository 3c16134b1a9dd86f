package rapidhex

// invalidNibble marks bytes outside the hex alphabet in hexNibbleDecode.
// It is larger than any nibble so a single comparison rejects it.
const invalidNibble = 0xFF

const hexDigits = "0123456789abcdef"

// hexNibbleDecode maps each byte to its nibble value, or invalidNibble.
var hexNibbleDecode [256]byte

// hexEncode holds the two lowercase characters of every byte value:
// byte b encodes to hexEncode[2*b : 2*b+2].
var hexEncode [512]byte

func init() {
	for i := range hexNibbleDecode {
		hexNibbleDecode[i] = invalidNibble
	}
	for i := 0; i < 10; i++ {
		hexNibbleDecode['0'+i] = byte(i)
	}
	for i := 0; i < 6; i++ {
		hexNibbleDecode['a'+i] = byte(10 + i)
		hexNibbleDecode['A'+i] = byte(10 + i)
	}

	for i := 0; i < 256; i++ {
		hexEncode[2*i] = hexDigits[i>>4]
		hexEncode[2*i+1] = hexDigits[i&0x0f]
	}
}
