package model

// GenerateRequest represents request for POST /hd/generate
type GenerateRequest struct {
	Bits int `json:"bits,omitempty"` // mnemonic entropy: 128, 160, 192, 224 or 256
}

// ImportRequest represents request for POST /hd/import.
// Exactly one of Mnemonic and ExtendedKey must be set.
type ImportRequest struct {
	Mnemonic    string `json:"mnemonic,omitempty"`
	Passphrase  string `json:"passphrase,omitempty"`
	ExtendedKey string `json:"extendedKey,omitempty"`
}

// GenerateResponse represents response for POST .../generate and .../import
type GenerateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Address string `json:"address,omitempty"`
	Path    string `json:"path,omitempty"`
}

// AddressResponse represents response for GET /hd/address
type AddressResponse struct {
	Network string `json:"network"`
	Address string `json:"address"`
	Path    string `json:"path"`
}
