package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlexZinkM/hd-wallet/internal/model"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12
)

// KDFParams is the scrypt cost used to seal a keystore.
type KDFParams struct {
	N int
	R int
	P int
}

var (
	// DefaultKDFParams protect the root secret of a local wallet.
	//
	// N=2^18 (~256MB RAM, 0.5-2s) still fits the per-app memory limit on
	// phones. N=2^20 (~1GB) does not.
	DefaultKDFParams = KDFParams{N: 1 << 18, R: 8, P: 1}

	// FastKDFParams are for tests only.
	FastKDFParams = KDFParams{N: 16, R: 8, P: 1}
)

// kdfParams is the cost applied to newly written files. Reading always uses
// the cost recorded in the file.
var kdfParams = DefaultKDFParams

// SetKDFParams changes the cost used by EncryptWallet and returns the
// previous value.
func SetKDFParams(p KDFParams) KDFParams {
	prev := kdfParams
	kdfParams = p
	return prev
}

// EncryptWallet encrypts wallet data and writes it to .cwt
// password must be []byte for security (caller should zero it after use)
func EncryptWallet(filePath string, header *model.CWTFile, walletData *model.WalletData, password []byte) error {
	// Check file extension (should be .cwt)
	if !strings.HasSuffix(filePath, ".cwt") {
		return errors.New("file must have .cwt extension")
	}
	if len(password) == 0 {
		return errors.New("password cannot be empty")
	}

	// Refuse to overwrite an existing keystore
	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return fmt.Errorf("file is not empty: %w", os.ErrExist)
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	params := kdfParams
	aesGCM, err := newGCM(password, salt, params)
	if err != nil {
		return err
	}

	plaintext, err := json.Marshal(walletData)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet data: %w", err)
	}
	defer clear(plaintext) // wipe plaintext bytes from memory

	ciphertext := aesGCM.Seal(nil, nonce, plaintext, nil)

	cwtFile := *header
	cwtFile.KDF = model.KDF{N: params.N, R: params.R, P: params.P}
	cwtFile.Salt = base64.StdEncoding.EncodeToString(salt)
	cwtFile.Nonce = base64.StdEncoding.EncodeToString(nonce)
	cwtFile.CipherText = base64.StdEncoding.EncodeToString(ciphertext)

	fileData, err := json.MarshalIndent(cwtFile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cwt file: %w", err)
	}

	// Add UTF-8 BOM for proper display in Windows
	fileDataWithBOM := append([]byte{0xEF, 0xBB, 0xBF}, fileData...)

	if err := os.WriteFile(filePath, fileDataWithBOM, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Infof("Wrote keystore %s (network %s, scrypt N=%d)", filePath, header.Network, params.N)
	return nil
}

// newGCM derives the file key from the password and wraps it in AES-GCM.
func newGCM(password, salt []byte, params KDFParams) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, params.N, params.R, params.P, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
