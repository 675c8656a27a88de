package hdwallet

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/AlexZinkM/hd-wallet/internal/common"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// NetworkParams returns the chain parameters for a network name.
func NetworkParams(name string) (*chaincfg.Params, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mainnet", "main", "btc":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3", "btctest":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, newError(UnknownNetwork, nil, "unknown network %q", name)
	}
}

// Wallet pairs a Core with the hdkeychain library for path derivation and
// key encoding. The network is fixed at construction.
type Wallet struct {
	core *Core
	net  *chaincfg.Params

	root *hdkeychain.ExtendedKey
	key  *hdkeychain.ExtendedKey
	path string
}

// NewWallet wraps an initialized core. Root cores are serialized with the
// network's private key version; imported cores keep the version they were
// decoded with.
func NewWallet(core *Core, net *chaincfg.Params) (*Wallet, error) {
	if core == nil || core.State() == StateUninitialized {
		return nil, fmt.Errorf("core is not initialized")
	}
	if net == nil {
		return nil, newError(UnknownNetwork, nil, "network params are required")
	}

	version := net.HDPrivateKeyID
	if core.State() == StateImported {
		version = core.Version()
		if version != net.HDPrivateKeyID {
			log.Warnf("Imported key version %x does not match %s version %x",
				version[:], net.Name, net.HDPrivateKeyID[:])
		}
	}

	fp := core.ParentFingerprint()
	root := hdkeychain.NewExtendedKey(
		version[:],
		append([]byte(nil), core.MasterPrivateKey()...),
		append([]byte(nil), core.ChainCode()...),
		fp[:],
		core.Depth(),
		core.Index(),
		true,
	)

	return &Wallet{
		core: core,
		net:  net,
		root: root,
		key:  root,
		path: common.RootPath,
	}, nil
}

// WalletFromMnemonic checks the mnemonic against the BIP39 wordlist and
// checksum and derives a root wallet from it.
func WalletFromMnemonic(mnemonic, passphrase string, net *chaincfg.Params) (*Wallet, error) {
	if err := ValidateMnemonic(mnemonic); err != nil {
		return nil, err
	}

	core, err := NewFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}

	return NewWallet(core, net)
}

// WalletFromExtendedKey imports a base58check extended private key and moves
// to path. A path is required; use "m" to stay on the imported node.
func WalletFromExtendedKey(xprv, path string, net *chaincfg.Params) (*Wallet, error) {
	if strings.TrimSpace(path) == "" {
		return nil, newError(InvalidPath, nil, "path must be provided with an extended key")
	}

	raw, err := DecodeBase58ExtendedKey(xprv)
	if err != nil {
		return nil, err
	}
	defer clear(raw)

	core, err := NewFromExtendedKey(raw, EncodingRaw, false)
	if err != nil {
		return nil, err
	}

	w, err := NewWallet(core, net)
	if err != nil {
		return nil, err
	}
	if err := w.FromPath(path); err != nil {
		return nil, err
	}
	return w, nil
}

// DecodeBase58ExtendedKey strips the base58check encoding of an extended key
// and returns the serialized bytes. The length is left to DecodeExtendedKey.
func DecodeBase58ExtendedKey(s string) ([]byte, error) {
	decoded := base58.Decode(strings.TrimSpace(s))
	if len(decoded) <= 4 {
		return nil, newError(MalformedExtendedKey, nil, "extended key is not valid base58")
	}

	payload := decoded[:len(decoded)-4]
	checksum := decoded[len(decoded)-4:]
	if !bytes.Equal(chainhash.DoubleHashB(payload)[:4], checksum) {
		return nil, newError(MalformedExtendedKey, nil, "bad extended key checksum")
	}
	return payload, nil
}

// FromPath resets any previous derivation and derives the node at path,
// relative to the wallet's root node.
func (w *Wallet) FromPath(path string) error {
	indices, err := common.ParseDerivationPath(path)
	if err != nil {
		return newError(InvalidPath, err, "invalid derivation path %q", path)
	}

	w.ResetDerivation()

	key := w.root
	for _, idx := range indices {
		key, err = key.Derive(idx)
		if err != nil {
			return fmt.Errorf("failed to derive child %d: %w", idx, err)
		}
	}

	w.key = key
	w.path = common.FormatDerivationPath(indices)

	log.Debugf("Derived %s (depth %d)", w.path, key.Depth())
	return nil
}

// ResetDerivation returns the wallet to its root node.
func (w *Wallet) ResetDerivation() {
	w.key = w.root
	w.path = common.RootPath
}

// Core returns the wrapped root core.
func (w *Wallet) Core() *Core { return w.core }

// Net returns the wallet's network.
func (w *Wallet) Net() *chaincfg.Params { return w.net }

// Path returns the path of the current node.
func (w *Wallet) Path() string { return w.path }

// Depth returns the absolute depth of the current node.
func (w *Wallet) Depth() uint8 { return w.key.Depth() }

// ChildIndex returns the child index of the current node.
func (w *Wallet) ChildIndex() uint32 { return w.key.ChildIndex() }

// ParentFingerprint returns the parent fingerprint of the current node.
func (w *Wallet) ParentFingerprint() uint32 { return w.key.ParentFingerprint() }

// PrivateKey returns the current node's key in wallet import format.
func (w *Wallet) PrivateKey() (*btcutil.WIF, error) {
	priv, err := w.key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get private key: %w", err)
	}
	return btcutil.NewWIF(priv, w.net, true)
}

// PublicKey returns the current node's public key.
func (w *Wallet) PublicKey() (*btcec.PublicKey, error) {
	return w.key.ECPubKey()
}

// Address returns the P2PKH address of the current node.
func (w *Wallet) Address() (string, error) {
	pub, err := w.key.ECPubKey()
	if err != nil {
		return "", fmt.Errorf("failed to get public key: %w", err)
	}

	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(pub.SerializeCompressed()), w.net)
	if err != nil {
		return "", fmt.Errorf("failed to create address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

// ExtendedPrivateKey serializes the current node. Callers are responsible for
// where the result goes.
func (w *Wallet) ExtendedPrivateKey() string {
	return w.key.String()
}

// RootExtendedPrivateKey serializes the wallet's root node.
func (w *Wallet) RootExtendedPrivateKey() string {
	return w.root.String()
}

// ExtendedPublicKey serializes the public half of the current node.
func (w *Wallet) ExtendedPublicKey() (string, error) {
	pub, err := w.key.Neuter()
	if err != nil {
		return "", fmt.Errorf("failed to neuter key: %w", err)
	}
	return pub.String(), nil
}
