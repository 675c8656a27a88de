package handler

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/AlexZinkM/hd-wallet/hdwallet"
	"github.com/AlexZinkM/hd-wallet/internal/common"
	"github.com/AlexZinkM/hd-wallet/internal/config"
	"github.com/AlexZinkM/hd-wallet/internal/crypto"
	"github.com/AlexZinkM/hd-wallet/internal/model"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btclog"
)

// HDHandler holds configuration for HD wallet operations
type HDHandler struct {
	filePath    string
	net         *chaincfg.Params
	defaultPath string
	bits        int
	log         btclog.Logger
}

// NewHDHandler creates a new HDHandler with config values
func NewHDHandler(logger btclog.Logger) (*HDHandler, error) {
	filePath := config.GetWalletFilePath()
	if filePath == "" {
		return nil, errors.New("HD_FILE_PATH not set")
	}

	net, err := hdwallet.NetworkParams(config.GetNetwork())
	if err != nil {
		return nil, err
	}

	indices, err := common.ParseDerivationPath(config.GetDefaultPath())
	if err != nil {
		return nil, err
	}

	return &HDHandler{
		filePath:    filePath,
		net:         net,
		defaultPath: common.FormatDerivationPath(indices),
		bits:        config.GetMnemonicBits(),
		log:         logger,
	}, nil
}

// Generate handles POST /hd/generate
// @Summary      Generate new wallet
// @Description  Generates a new BIP39 mnemonic and saves it encrypted to the .cwt file
// @Tags         hd
// @Accept       json
// @Produce      json
// @Param        request  body      model.GenerateRequest  false  "Mnemonic strength"
// @Success      200      {object}  model.GenerateResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /hd/generate [post]
func (h *HDHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.GenerateRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	bits := req.Bits
	if bits == 0 {
		bits = h.bits
	}

	// Get password as []byte, use it, then zero it immediately
	passwordBytes, err := config.GetPasswordBytes()
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	defer clear(passwordBytes) // Always clear password from memory

	address, err := hdwallet.GenerateWallet(h.filePath, passwordBytes, h.keystoreOptions(bits))
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet generated successfully",
		Address: address,
		Path:    h.defaultPath,
	})
}

// Import handles POST /hd/import
// @Summary      Import wallet
// @Description  Saves an existing mnemonic or extended private key encrypted to the .cwt file
// @Tags         hd
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportRequest  true  "Wallet secret"
// @Success      200      {object}  model.GenerateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /hd/import [post]
func (h *HDHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	passwordBytes, err := config.GetPasswordBytes()
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	defer clear(passwordBytes)

	address, err := hdwallet.ImportWallet(h.filePath, passwordBytes, req.Mnemonic, req.Passphrase,
		req.ExtendedKey, h.keystoreOptions(h.bits))
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet imported successfully",
		Address: address,
		Path:    h.defaultPath,
	})
}

// Address handles GET /hd/address
// @Summary      Get wallet address
// @Description  Reads the display address from the .cwt file without decrypting it
// @Tags         hd
// @Produce      json
// @Success      200  {object}  model.AddressResponse
// @Router       /hd/address [get]
func (h *HDHandler) Address(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	header, err := crypto.ReadWalletHeader(h.filePath)
	if err != nil {
		h.writeError(w, http.StatusNotFound, err)
		return
	}

	writeJSON(w, http.StatusOK, model.AddressResponse{
		Network: header.Network,
		Address: header.Address,
		Path:    header.Path,
	})
}

// Derive handles POST /hd/derive
// @Summary      Derive a child node
// @Description  Decrypts the wallet and returns the public data of the node at the given path
// @Tags         hd
// @Accept       json
// @Produce      json
// @Param        request  body      model.DeriveRequest  true  "Derivation path"
// @Success      200      {object}  model.DeriveResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /hd/derive [post]
func (h *HDHandler) Derive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.DeriveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Path == "" {
		req.Path = h.defaultPath
	}

	passwordBytes, err := config.GetPasswordBytes()
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	defer clear(passwordBytes)

	wallet, err := hdwallet.LoadWallet(h.filePath, passwordBytes, h.net)
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}
	defer wallet.Core().Zero()

	if err := wallet.FromPath(req.Path); err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}

	address, err := wallet.Address()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	pub, err := wallet.PublicKey()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	xpub, err := wallet.ExtendedPublicKey()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, model.DeriveResponse{
		Path:              wallet.Path(),
		Address:           address,
		PublicKey:         hex.EncodeToString(pub.SerializeCompressed()),
		ExtendedPublicKey: xpub,
		Depth:             wallet.Depth(),
		ChildIndex:        wallet.ChildIndex(),
		ParentFingerprint: common.FormatFingerprint(wallet.ParentFingerprint()),
	})
}

// Inspect handles POST /hd/inspect
// @Summary      Inspect an extended private key
// @Description  Decodes the structural fields of an xprv. The private key is never returned.
// @Tags         hd
// @Accept       json
// @Produce      json
// @Param        request  body      model.InspectRequest  true  "Extended key"
// @Success      200      {object}  model.InspectResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /hd/inspect [post]
func (h *HDHandler) Inspect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.InspectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	var (
		data []byte
		enc  hdwallet.KeyEncoding
		err  error
	)
	switch strings.ToLower(req.Encoding) {
	case "", "base58":
		data, err = hdwallet.DecodeBase58ExtendedKey(req.ExtendedKey)
		enc = hdwallet.EncodingRaw
	case "hex":
		data, enc = []byte(strings.TrimSpace(req.ExtendedKey)), hdwallet.EncodingHex
	default:
		err = errors.New("encoding must be base58 or hex")
	}
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	defer clear(data)

	core, err := hdwallet.NewFromExtendedKey(data, enc, req.Strict)
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}
	defer core.Zero()

	version := core.Version()
	fp := core.ParentFingerprint()
	writeJSON(w, http.StatusOK, model.InspectResponse{
		Version:           hex.EncodeToString(version[:]),
		Depth:             core.Depth(),
		ParentFingerprint: hex.EncodeToString(fp[:]),
		ChildIndex:        core.Index(),
		IsRoot:            core.Fields().IsRoot(),
		PublicKey:         hex.EncodeToString(core.VerifyingKey().SerializeCompressed()),
	})
}

// Strength handles POST /hd/strength
// @Summary      Classify a mnemonic
// @Description  Returns the entropy strength implied by the mnemonic's word count
// @Tags         hd
// @Accept       json
// @Produce      json
// @Param        request  body      model.StrengthRequest  true  "Mnemonic"
// @Success      200      {object}  model.StrengthResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /hd/strength [post]
func (h *HDHandler) Strength(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.StrengthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	strength, err := hdwallet.MnemonicStrength(req.Mnemonic)
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, model.StrengthResponse{
		Words:    strength / 32 * 3,
		Strength: strength,
		Valid:    hdwallet.ValidateMnemonic(req.Mnemonic) == nil,
	})
}

func (h *HDHandler) keystoreOptions(bits int) hdwallet.KeystoreOptions {
	return hdwallet.KeystoreOptions{Net: h.net, Path: h.defaultPath, Bits: bits}
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case hdwallet.IsValidationError(err):
		return http.StatusBadRequest
	case hdwallet.IsFileExistsError(err):
		return http.StatusConflict
	case errors.Is(err, crypto.ErrInvalidPassword):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (h *HDHandler) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.log.Errorf("Request failed: %v", err)
	} else {
		h.log.Debugf("Rejected request: %v", err)
	}
	writeJSON(w, status, model.ErrorResponse{
		Error: err.Error(),
		Code:  string(hdwallet.KindOf(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
