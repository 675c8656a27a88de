package model

// DeriveRequest represents request for POST /hd/derive
type DeriveRequest struct {
	Path string `json:"path" binding:"required"`
}

// DeriveResponse represents response for POST /hd/derive
type DeriveResponse struct {
	Path              string `json:"path"`
	Address           string `json:"address"`
	PublicKey         string `json:"publicKey"`
	ExtendedPublicKey string `json:"xpub"`
	Depth             uint8  `json:"depth"`
	ChildIndex        uint32 `json:"childIndex"`
	ParentFingerprint string `json:"parentFingerprint"`
}

// InspectRequest represents request for POST /hd/inspect
type InspectRequest struct {
	ExtendedKey string `json:"extendedKey" binding:"required"`
	Encoding    string `json:"encoding"` // "base58" (default) or "hex"
	Strict      bool   `json:"strict"`
}

// InspectResponse represents response for POST /hd/inspect.
// The private key is never included.
type InspectResponse struct {
	Version           string `json:"version"`
	Depth             uint8  `json:"depth"`
	ParentFingerprint string `json:"parentFingerprint"`
	ChildIndex        uint32 `json:"childIndex"`
	IsRoot            bool   `json:"isRoot"`
	PublicKey         string `json:"publicKey"`
}

// StrengthRequest represents request for POST /hd/strength
type StrengthRequest struct {
	Mnemonic string `json:"mnemonic" binding:"required"`
}

// StrengthResponse represents response for POST /hd/strength
type StrengthResponse struct {
	Words    int  `json:"words"`
	Strength int  `json:"strength"`
	Valid    bool `json:"valid"` // wordlist and checksum
}
