package hdwallet

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strings"
)

// masterKeyHMACKey is the BIP32 key for deriving the master node from a seed.
var masterKeyHMACKey = []byte("Bitcoin seed")

const (
	// KeyLen is the length of a private key.
	KeyLen = 32

	// ChainCodeLen is the length of a chain code.
	ChainCodeLen = 32
)

// MasterKeyFromSeed computes HMAC-SHA512("Bitcoin seed", seed) and splits it
// into the master private key (left half) and chain code (right half).
// Seed length is the producer's concern and is not checked here.
func MasterKeyFromSeed(seed []byte) (privKey, chainCode []byte) {
	mac := hmac.New(sha512.New, masterKeyHMACKey)
	mac.Write(seed)
	sum := mac.Sum(nil)

	privKey = make([]byte, KeyLen)
	chainCode = make([]byte, ChainCodeLen)
	copy(privKey, sum[:KeyLen])
	copy(chainCode, sum[KeyLen:])
	clear(sum)

	return privKey, chainCode
}

// ParseSeedHex decodes a hexadecimal seed string.
func ParseSeedHex(seedHex string) ([]byte, error) {
	seed, err := hex.DecodeString(strings.TrimSpace(seedHex))
	if err != nil {
		return nil, newError(MalformedSeed, err, "seed is not valid hex")
	}
	if len(seed) == 0 {
		return nil, newError(MalformedSeed, nil, "seed is empty")
	}
	return seed, nil
}
