package hdwallet

import (
	"crypto/sha512"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// seedSaltPrefix and seedIterations are fixed by BIP39. Changing either
	// produces seeds no other wallet will reproduce.
	seedSaltPrefix = "mnemonic"
	seedIterations = 2048

	// SeedLen is the length of a stretched mnemonic seed.
	SeedLen = 64
)

// strengthByWords maps a mnemonic word count to its entropy in bits.
var strengthByWords = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// NormalizeMnemonic returns the NFKD form of the phrase.
func NormalizeMnemonic(mnemonic string) string {
	return norm.NFKD.String(mnemonic)
}

// MnemonicStrength returns the entropy strength in bits of a mnemonic,
// judged by its word count alone. Words are separated by single spaces.
func MnemonicStrength(mnemonic string) (int, error) {
	words := len(strings.Split(NormalizeMnemonic(mnemonic), " "))
	strength, ok := strengthByWords[words]
	if !ok {
		return 0, newError(UnsupportedMnemonicLength, nil,
			"unsupported number of words in mnemonic: %d", words)
	}
	return strength, nil
}

// MnemonicToSeed stretches a mnemonic and optional passphrase into a 64-byte
// seed with PBKDF2-HMAC-SHA512. The mnemonic is NFKD normalized first; the
// passphrase is used as given.
func MnemonicToSeed(mnemonic, passphrase string) []byte {
	password := []byte(NormalizeMnemonic(mnemonic))
	defer clear(password)

	salt := []byte(seedSaltPrefix + passphrase)
	defer clear(salt)

	stretched := pbkdf2.Key(password, salt, seedIterations, SeedLen, sha512.New)
	return stretched[:SeedLen]
}

// GenerateMnemonic creates a new English BIP39 mnemonic with the given
// entropy in bits (128-256, multiple of 32).
func GenerateMnemonic(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", newError(UnsupportedMnemonicLength, err, "invalid entropy size %d", bits)
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks the word count, the English wordlist and the BIP39
// checksum. MnemonicStrength alone only looks at the word count.
func ValidateMnemonic(mnemonic string) error {
	if _, err := MnemonicStrength(mnemonic); err != nil {
		return err
	}
	if !bip39.IsMnemonicValid(NormalizeMnemonic(mnemonic)) {
		return newError(InvalidMnemonic, nil, "mnemonic failed wordlist or checksum validation")
	}
	return nil
}
