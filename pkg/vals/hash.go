package vals

import (
	"math"
	"math/big"
)

// Hasher wraps the Hash method.
type Hasher interface {
	// Hash computes the hash code of the receiver.
	Hash() uint32
}

// Hash returns the 32-bit hash of a value. It is implemented for the builtin
// scalar types and types satisfying the Hasher interface. For other values,
// it returns 0, which is correct but causes all such values to collide.
func Hash(v any) uint32 {
	switch v := v.(type) {
	case bool:
		if v {
			return 1
		}
		return 0
	case int:
		return hashUint64(uint64(v))
	case uint:
		return hashUint64(uint64(v))
	case float64:
		if v == 0 {
			// -0.0 == 0.0
			v = 0
		}
		return hashUint64(math.Float64bits(v))
	case *big.Int:
		h := DJBCombine(DJBInit, uint32(v.Sign()))
		for _, word := range v.Bits() {
			h = DJBCombine(h, hashUint64(uint64(word)))
		}
		return h
	case string:
		h := DJBInit
		for i := 0; i < len(v); i++ {
			h = DJBCombine(h, uint32(v[i]))
		}
		return h
	case Hasher:
		return v.Hash()
	default:
		return 0
	}
}

// DJBInit is the initial value of the DJB hash.
const DJBInit uint32 = 5381

// DJBCombine folds the hash code h into the DJB accumulator acc.
func DJBCombine(acc, h uint32) uint32 {
	return acc<<5 + acc + h
}

// DJB computes the DJB hash of a sequence of hash codes.
func DJB(hs ...uint32) uint32 {
	acc := DJBInit
	for _, h := range hs {
		acc = DJBCombine(acc, h)
	}
	return acc
}

func hashUint64(u uint64) uint32 {
	hi := uint32(u >> 32)
	return hi<<5 + hi + uint32(u&0xffffffff)
}
