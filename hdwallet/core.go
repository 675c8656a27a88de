package hdwallet

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

// State is the lifecycle stage of a Core.
type State uint8

const (
	// StateUninitialized means no seed, mnemonic or key has been applied.
	StateUninitialized State = iota

	// StateRootDerived means the core holds a depth-0 master node computed
	// from a seed or mnemonic.
	StateRootDerived

	// StateImported means the core holds a node decoded from a serialized
	// extended private key. It may be a non-root node.
	StateImported
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateRootDerived:
		return "RootDerived"
	case StateImported:
		return "Imported"
	default:
		return "Unknown"
	}
}

// Core holds the key material and position of a single HD node.
//
// A Core is initialized exactly once, either from a seed/mnemonic or from an
// extended key. It has no internal locking; one instance belongs to one
// goroutine at a time.
type Core struct {
	state    State
	strength int

	depth             uint8
	index             uint32
	parentFingerprint [4]byte
	version           [4]byte

	privKey   []byte
	chainCode []byte

	signingKey   *btcec.PrivateKey
	verifyingKey *btcec.PublicKey
}

// New returns an uninitialized core.
func New() *Core {
	return &Core{}
}

// NewFromSeed derives a root core from raw seed bytes.
func NewFromSeed(seed []byte) (*Core, error) {
	c := New()
	if err := c.FromSeed(seed); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFromSeedHex derives a root core from a hexadecimal seed string.
func NewFromSeedHex(seedHex string) (*Core, error) {
	seed, err := ParseSeedHex(seedHex)
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	return NewFromSeed(seed)
}

// NewFromMnemonic derives a root core from a mnemonic and passphrase.
func NewFromMnemonic(mnemonic, passphrase string) (*Core, error) {
	c := New()
	if err := c.FromMnemonic(mnemonic, passphrase); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFromExtendedKey builds an imported core from a serialized extended
// private key.
func NewFromExtendedKey(data []byte, enc KeyEncoding, strict bool) (*Core, error) {
	c := New()
	if err := c.FromExtendedKey(data, enc, strict); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Core) ensureUninitialized() error {
	if c.state != StateUninitialized {
		return newError(AlreadyInitialized, nil, "core is already %s", c.state)
	}
	return nil
}

// FromSeed computes the master key and chain code from seed. The core stays
// at depth 0, index 0 with a zero parent fingerprint.
func (c *Core) FromSeed(seed []byte) error {
	if err := c.ensureUninitialized(); err != nil {
		return err
	}

	c.privKey, c.chainCode = MasterKeyFromSeed(seed)
	c.version = RootPrivateVersion
	c.state = StateRootDerived

	log.Debugf("Derived root node from %d-byte seed", len(seed))
	return nil
}

// FromMnemonic normalizes the mnemonic, records its strength, stretches it
// into a seed and derives the master node from that seed.
func (c *Core) FromMnemonic(mnemonic, passphrase string) error {
	if err := c.ensureUninitialized(); err != nil {
		return err
	}

	normalized := NormalizeMnemonic(mnemonic)
	strength, err := MnemonicStrength(normalized)
	if err != nil {
		return err
	}

	seed := MnemonicToSeed(normalized, passphrase)
	defer clear(seed)

	if err := c.FromSeed(seed); err != nil {
		return err
	}
	c.strength = strength

	log.Debugf("Derived root node from %d-bit mnemonic", strength)
	return nil
}

// FromExtendedKey decodes a serialized extended private key and adopts its
// depth, index and parent fingerprint. Nothing is changed on failure.
func (c *Core) FromExtendedKey(data []byte, enc KeyEncoding, strict bool) error {
	if err := c.ensureUninitialized(); err != nil {
		return err
	}

	f, err := DecodeExtendedKey(data, enc, strict)
	if err != nil {
		return err
	}

	c.version = f.Version
	c.depth = f.Depth
	c.parentFingerprint = f.ParentFingerprint
	c.index = f.ChildIndex
	c.privKey = f.PrivateKey
	c.chainCode = f.ChainCode
	c.signingKey, c.verifyingKey = f.SigningKey()
	c.state = StateImported

	log.Debugf("Imported node depth=%d index=%d parent=%x",
		c.depth, c.index, c.parentFingerprint[:])
	return nil
}

// State returns the lifecycle stage.
func (c *Core) State() State { return c.state }

// Strength returns the mnemonic strength in bits, or 0 when the core was not
// built from a mnemonic.
func (c *Core) Strength() int { return c.strength }

func (c *Core) Depth() uint8 { return c.depth }

func (c *Core) Index() uint32 { return c.index }

func (c *Core) ParentFingerprint() [4]byte { return c.parentFingerprint }

// ParentFingerprintUint32 returns the parent fingerprint as hdkeychain
// reports it.
func (c *Core) ParentFingerprintUint32() uint32 {
	return binary.BigEndian.Uint32(c.parentFingerprint[:])
}

func (c *Core) Version() [4]byte { return c.version }

// MasterPrivateKey returns the node's 32-byte private key. The slice is
// owned by the core.
func (c *Core) MasterPrivateKey() []byte { return c.privKey }

// ChainCode returns the node's 32-byte chain code.
func (c *Core) ChainCode() []byte { return c.chainCode }

// SigningKey returns the secp256k1 key for the node, building it on first use.
func (c *Core) SigningKey() *btcec.PrivateKey {
	if c.signingKey == nil && c.privKey != nil {
		c.signingKey, c.verifyingKey = btcec.PrivKeyFromBytes(c.privKey)
	}
	return c.signingKey
}

// VerifyingKey returns the public key matching SigningKey.
func (c *Core) VerifyingKey() *btcec.PublicKey {
	if c.SigningKey() == nil {
		return nil
	}
	return c.verifyingKey
}

// Fields returns the node as extended key fields, suitable for
// EncodeExtendedKey.
func (c *Core) Fields() *ExtendedKeyFields {
	return &ExtendedKeyFields{
		Version:           c.version,
		Depth:             c.depth,
		ParentFingerprint: c.parentFingerprint,
		ChildIndex:        c.index,
		ChainCode:         append([]byte(nil), c.chainCode...),
		PrivateKey:        append([]byte(nil), c.privKey...),
	}
}

// Zero clears the key material. The core must not be used afterwards.
func (c *Core) Zero() {
	clear(c.privKey)
	clear(c.chainCode)
	if c.signingKey != nil {
		c.signingKey.Zero()
	}
	c.signingKey, c.verifyingKey = nil, nil
}

// String never includes key material.
func (c *Core) String() string {
	return fmt.Sprintf("%s depth=%d index=%d parent=%x",
		c.state, c.depth, c.index, c.parentFingerprint[:])
}
