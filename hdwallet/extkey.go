package hdwallet

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
)

// KeyEncoding tells DecodeExtendedKey what form its input is in.
type KeyEncoding int

const (
	// EncodingRaw is the 78-byte binary serialization. It is hex-encoded
	// before length validation.
	EncodingRaw KeyEncoding = iota

	// EncodingHex is the serialization already written as 156 hex characters.
	EncodingHex
)

const (
	// SerializedKeyLen is the length of a serialized extended key without
	// its base58 checksum.
	SerializedKeyLen = 4 + 1 + 4 + 4 + ChainCodeLen + 1 + KeyLen

	// EncodedKeyLen is SerializedKeyLen in hex characters.
	EncodedKeyLen = SerializedKeyLen * 2
)

// RootPrivateVersion is the version prefix of a mainnet private extended key
// (xprv).
var RootPrivateVersion = [4]byte{0x04, 0x88, 0xad, 0xe4}

// ExtendedKeyFields are the structural fields of one serialized private node.
type ExtendedKeyFields struct {
	Version           [4]byte
	Depth             uint8
	ParentFingerprint [4]byte
	ChildIndex        uint32
	ChainCode         []byte
	PrivateKey        []byte
}

// IsRoot reports whether the fields describe a mainnet master node.
func (f *ExtendedKeyFields) IsRoot() bool {
	return f.Version == RootPrivateVersion && f.Depth == 0
}

// SigningKey rebuilds the secp256k1 signing key and its verifying key.
func (f *ExtendedKeyFields) SigningKey() (*btcec.PrivateKey, *btcec.PublicKey) {
	return btcec.PrivKeyFromBytes(f.PrivateKey)
}

// keyCursor walks a serialized key front to back so that every field
// boundary is named once.
type keyCursor struct {
	buf []byte
	off int
}

func (c *keyCursor) take(n int) []byte {
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b
}

func (c *keyCursor) readByte() byte {
	return c.take(1)[0]
}

func (c *keyCursor) readUint32() uint32 {
	return binary.BigEndian.Uint32(c.take(4))
}

// DecodeExtendedKey parses a serialized private extended key.
//
// Layout (BIP32):
//
//	[0:4]   version
//	[4]     depth
//	[5:9]   parent fingerprint
//	[9:13]  child index, big-endian
//	[13:45] chain code
//	[45]    0x00 private key pad
//	[46:78] private key
//
// With strict set, anything but a mainnet depth-0 xprv is rejected with
// NotARootKey.
func DecodeExtendedKey(data []byte, enc KeyEncoding, strict bool) (*ExtendedKeyFields, error) {
	var encoded string
	switch enc {
	case EncodingRaw:
		encoded = hex.EncodeToString(data)
	case EncodingHex:
		encoded = string(data)
	default:
		return nil, newError(MalformedExtendedKey, nil, "unknown key encoding %d", enc)
	}

	if len(encoded) != EncodedKeyLen {
		return nil, newError(InvalidExtendedKeyLength, nil,
			"encoded extended key is %d characters, want %d", len(encoded), EncodedKeyLen)
	}

	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, newError(MalformedExtendedKey, err, "extended key is not valid hex")
	}
	defer clear(raw)

	c := &keyCursor{buf: raw}
	f := &ExtendedKeyFields{}
	copy(f.Version[:], c.take(4))
	f.Depth = c.readByte()
	if strict && !f.IsRoot() {
		return nil, newError(NotARootKey, nil,
			"invalid root xprivate key: version %x depth %d", f.Version[:], f.Depth)
	}
	copy(f.ParentFingerprint[:], c.take(4))
	f.ChildIndex = c.readUint32()
	chainCode := c.take(ChainCodeLen)
	if pad := c.readByte(); pad != 0x00 {
		return nil, newError(MalformedExtendedKey, nil,
			"key payload prefix is 0x%02x, not a private key", pad)
	}
	privKey := c.take(KeyLen)

	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(privKey); overflow || scalar.IsZero() {
		return nil, newError(MalformedExtendedKey, nil, "private key is outside the curve order")
	}
	scalar.Zero()

	f.ChainCode = append([]byte(nil), chainCode...)
	f.PrivateKey = append([]byte(nil), privKey...)

	return f, nil
}

// EncodeExtendedKey is the inverse of DecodeExtendedKey with EncodingRaw.
func EncodeExtendedKey(f *ExtendedKeyFields) []byte {
	out := make([]byte, 0, SerializedKeyLen)
	out = append(out, f.Version[:]...)
	out = append(out, f.Depth)
	out = append(out, f.ParentFingerprint[:]...)
	out = binary.BigEndian.AppendUint32(out, f.ChildIndex)
	out = append(out, f.ChainCode...)
	out = append(out, 0x00)
	out = append(out, f.PrivateKey...)
	return out
}
