package model

// CWTFile represents .cwt keystore file structure
type CWTFile struct {
	Network    string `json:"network"`
	Address    string `json:"address"`
	Path       string `json:"path"`
	QR         string `json:"QR"`
	KDF        KDF    `json:"kdf"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// KDF records the scrypt cost the file was sealed with
type KDF struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

// WalletData represents decrypted wallet data.
// Exactly one of Mnemonic and ExtendedKey is set.
type WalletData struct {
	Mnemonic    string `json:"mnemonic,omitempty"`
	Passphrase  string `json:"passphrase,omitempty"`
	ExtendedKey string `json:"extendedKey,omitempty"` // base58 xprv of an imported node
	CreatedAt   string `json:"createdAt"`
}

// Zero overwrites the secrets held by the struct's strings. Go strings are
// immutable, so this only drops the references.
func (d *WalletData) Zero() {
	d.Mnemonic = ""
	d.Passphrase = ""
	d.ExtendedKey = ""
}
