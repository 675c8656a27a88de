package hdwallet

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlexZinkM/hd-wallet/internal/crypto"
	"github.com/AlexZinkM/hd-wallet/internal/model"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/skip2/go-qrcode"
)

// KeystoreOptions controls where and how a wallet keystore is written.
type KeystoreOptions struct {
	Net  *chaincfg.Params
	Path string // derivation path of the address shown in the file
	Bits int    // mnemonic entropy for GenerateWallet
}

// GenerateWallet creates a new mnemonic, derives its receive address and
// saves the mnemonic encrypted to a .cwt file.
// Returns the generated address on success.
// password must be []byte for security (caller should zero it after use)
func GenerateWallet(filePath string, password []byte, opts KeystoreOptions) (address string, err error) {
	if err := checkKeystorePath(filePath); err != nil {
		return "", err
	}

	mnemonic, err := GenerateMnemonic(opts.Bits)
	if err != nil {
		return "", err
	}

	return saveWallet(filePath, password, opts, &model.WalletData{Mnemonic: mnemonic})
}

// ImportWallet saves an existing mnemonic (with optional passphrase) or a
// base58 extended private key to a .cwt file. Exactly one of mnemonic and
// xprv must be non-empty.
func ImportWallet(filePath string, password []byte, mnemonic, passphrase, xprv string,
	opts KeystoreOptions) (address string, err error) {

	if err := checkKeystorePath(filePath); err != nil {
		return "", err
	}

	mnemonic = strings.TrimSpace(mnemonic)
	xprv = strings.TrimSpace(xprv)
	if (mnemonic == "") == (xprv == "") {
		return "", newError(InvalidMnemonic, nil, "exactly one of mnemonic and extended key is required")
	}

	return saveWallet(filePath, password, opts, &model.WalletData{
		Mnemonic:    mnemonic,
		Passphrase:  passphrase,
		ExtendedKey: xprv,
	})
}

// LoadWallet decrypts a .cwt file and rebuilds its wallet at the root node.
func LoadWallet(filePath string, password []byte, net *chaincfg.Params) (*Wallet, error) {
	cwtFile, walletData, err := crypto.DecryptWallet(filePath, password)
	if err != nil {
		return nil, err
	}
	defer walletData.Zero()

	if cwtFile.Network != "" && cwtFile.Network != net.Name {
		return nil, fmt.Errorf("keystore is for %s, not %s", cwtFile.Network, net.Name)
	}

	return walletFromData(walletData, net)
}

func walletFromData(data *model.WalletData, net *chaincfg.Params) (*Wallet, error) {
	if data.Mnemonic != "" {
		return WalletFromMnemonic(data.Mnemonic, data.Passphrase, net)
	}
	if data.ExtendedKey != "" {
		return WalletFromExtendedKey(data.ExtendedKey, "m", net)
	}
	return nil, errors.New("keystore holds neither a mnemonic nor an extended key")
}

func saveWallet(filePath string, password []byte, opts KeystoreOptions, data *model.WalletData) (string, error) {
	defer data.Zero()

	w, err := walletFromData(data, opts.Net)
	if err != nil {
		return "", err
	}
	defer w.Core().Zero()

	if err := w.FromPath(opts.Path); err != nil {
		return "", err
	}

	address, err := w.Address()
	if err != nil {
		return "", err
	}

	qrCode, err := generateQRCode(address)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	data.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	header := &model.CWTFile{
		Network: opts.Net.Name,
		Address: address,
		Path:    w.Path(),
		QR:      qrCode,
	}

	if err := crypto.EncryptWallet(filePath, header, data, password); err != nil {
		return "", fmt.Errorf("failed to encrypt wallet: %w", err)
	}

	log.Infof("Saved wallet for %s at %s (strength %d)", address, w.Path(), w.Core().Strength())
	return address, nil
}

// checkKeystorePath refuses anything but an absent or empty .cwt file.
func checkKeystorePath(filePath string) error {
	if filepath.Ext(filePath) != ".cwt" {
		return fmt.Errorf("file must have .cwt extension")
	}

	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return &FileExistsError{Message: "file is not empty"}
	}
	return nil
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
