package hdwallet

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoreFromSeedHex(t *testing.T) {
	core, err := NewFromSeedHex(tv1SeedHex)
	require.NoError(t, err)

	require.Equal(t, StateRootDerived, core.State())
	require.Zero(t, core.Depth())
	require.Zero(t, core.Index())
	require.Equal(t, [4]byte{}, core.ParentFingerprint())
	require.Zero(t, core.Strength())
	require.Equal(t, tv1MasterPriv, hex.EncodeToString(core.MasterPrivateKey()))
	require.Equal(t, tv1MasterChain, hex.EncodeToString(core.ChainCode()))
	require.Equal(t, tv1MasterPub, hex.EncodeToString(core.VerifyingKey().SerializeCompressed()))

	_, err = NewFromSeedHex("not hex")
	require.True(t, IsKind(err, MalformedSeed))
}

func TestCoreFromMnemonic(t *testing.T) {
	core, err := NewFromMnemonic(abandonMnemonic, "TREZOR")
	require.NoError(t, err)
	require.Equal(t, StateRootDerived, core.State())
	require.Equal(t, 128, core.Strength())
	require.Zero(t, core.Depth())

	seed, err := hex.DecodeString(abandonTrezorSeedHex)
	require.NoError(t, err)
	priv, chain := MasterKeyFromSeed(seed)
	require.Equal(t, priv, core.MasterPrivateKey())
	require.Equal(t, chain, core.ChainCode())

	_, err = NewFromMnemonic(words(11), "")
	require.True(t, IsKind(err, UnsupportedMnemonicLength))
}

func TestCoreFromExtendedKey(t *testing.T) {
	core, err := NewFromExtendedKey(rawKey(t, tv1ChildXPrv), EncodingRaw, false)
	require.NoError(t, err)

	require.Equal(t, StateImported, core.State())
	require.Equal(t, uint8(1), core.Depth())
	require.Equal(t, uint32(0x80000000), core.Index())
	require.Equal(t, [4]byte{0x34, 0x42, 0x19, 0x3e}, core.ParentFingerprint())
	require.Equal(t, uint32(0x3442193e), core.ParentFingerprintUint32())
	require.Equal(t, tv1ChildPriv, hex.EncodeToString(core.MasterPrivateKey()))
	require.Equal(t, tv1ChildChain, hex.EncodeToString(core.ChainCode()))
	require.Equal(t, tv1ChildPub, hex.EncodeToString(core.VerifyingKey().SerializeCompressed()))
	require.Equal(t, rawKey(t, tv1ChildXPrv), EncodeExtendedKey(core.Fields()))
}

func TestCoreFailedImportKeepsState(t *testing.T) {
	core := New()

	err := core.FromExtendedKey(rawKey(t, tv1ChildXPrv), EncodingRaw, true)
	require.True(t, IsKind(err, NotARootKey))

	err = core.FromExtendedKey([]byte("short"), EncodingHex, false)
	require.True(t, IsKind(err, InvalidExtendedKeyLength))

	require.Equal(t, StateUninitialized, core.State())
	require.Zero(t, core.Depth())
	require.Zero(t, core.Index())
	require.Equal(t, [4]byte{}, core.ParentFingerprint())
	require.Nil(t, core.MasterPrivateKey())
	require.Nil(t, core.SigningKey())
	require.Nil(t, core.VerifyingKey())

	// A failed attempt does not use up the core.
	require.NoError(t, core.FromExtendedKey(rawKey(t, tv1MasterXPrv), EncodingRaw, true))
	require.Equal(t, StateImported, core.State())
}

func TestCoreInitializesOnce(t *testing.T) {
	core, err := NewFromSeedHex(tv1SeedHex)
	require.NoError(t, err)

	err = core.FromExtendedKey(rawKey(t, tv1ChildXPrv), EncodingRaw, false)
	require.True(t, IsKind(err, AlreadyInitialized), err)
	require.Zero(t, core.Depth())
	require.Equal(t, StateRootDerived, core.State())

	err = core.FromMnemonic(abandonMnemonic, "")
	require.True(t, IsKind(err, AlreadyInitialized))
	require.Equal(t, tv1MasterPriv, hex.EncodeToString(core.MasterPrivateKey()))

	imported, err := NewFromExtendedKey(rawKey(t, tv1ChildXPrv), EncodingRaw, false)
	require.NoError(t, err)
	err = imported.FromSeed([]byte{1, 2, 3})
	require.True(t, IsKind(err, AlreadyInitialized))
	require.Equal(t, StateImported, imported.State())
}

func TestCoreStringHidesKeys(t *testing.T) {
	core, err := NewFromSeedHex(tv1SeedHex)
	require.NoError(t, err)

	s := core.String()
	require.Equal(t, "RootDerived depth=0 index=0 parent=00000000", s)
	require.NotContains(t, s, tv1MasterPriv)
}

func TestCoreZero(t *testing.T) {
	core, err := NewFromSeedHex(tv1SeedHex)
	require.NoError(t, err)
	require.NotNil(t, core.SigningKey())

	priv := core.MasterPrivateKey()
	core.Zero()
	require.Equal(t, make([]byte, KeyLen), priv)
}
