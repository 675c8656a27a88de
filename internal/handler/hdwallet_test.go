package handler

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexZinkM/hd-wallet/internal/config"
	"github.com/AlexZinkM/hd-wallet/internal/crypto"
	"github.com/AlexZinkM/hd-wallet/internal/model"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

const (
	abandonMnemonic = "abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon about"

	tv1ChildXPrv = "xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7"
)

func newTestHandler(t *testing.T) *HDHandler {
	t.Helper()

	prev := crypto.SetKDFParams(crypto.FastKDFParams)
	t.Cleanup(func() { crypto.SetKDFParams(prev) })

	dir := t.TempDir()
	pwFile := filepath.Join(dir, "password")
	require.NoError(t, os.WriteFile(pwFile, []byte("test-password\n"), 0600))

	t.Setenv("HD_FILE_PATH", filepath.Join(dir, "wallet.cwt"))
	t.Setenv("HD_PASSWORD_FILE", pwFile)
	t.Setenv("HD_MNEMONIC_BITS", "128")
	require.NoError(t, config.Init())
	require.NoError(t, config.LoadPassword())

	h, err := NewHDHandler(btclog.Disabled)
	require.NoError(t, err)
	return h
}

func do(t *testing.T, fn http.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	fn(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestImportReportsCanonicalPath(t *testing.T) {
	t.Setenv("HD_DEFAULT_PATH", "m/44h/0H/0h/0/0")
	h := newTestHandler(t)

	rec := do(t, h.Import, http.MethodPost, "/hd/import", model.ImportRequest{Mnemonic: abandonMnemonic})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	gen := decode[model.GenerateResponse](t, rec)
	require.Equal(t, "m/44'/0'/0'/0/0", gen.Path)
	require.Equal(t, "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA", gen.Address)

	rec = do(t, h.Address, http.MethodGet, "/hd/address", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, gen.Path, decode[model.AddressResponse](t, rec).Path)
}

func TestImportDeriveAddress(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.Import, http.MethodPost, "/hd/import", model.ImportRequest{Mnemonic: abandonMnemonic})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	gen := decode[model.GenerateResponse](t, rec)
	require.True(t, gen.Success)
	require.Equal(t, "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA", gen.Address)

	rec = do(t, h.Address, http.MethodGet, "/hd/address", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	addr := decode[model.AddressResponse](t, rec)
	require.Equal(t, gen.Address, addr.Address)
	require.Equal(t, "mainnet", addr.Network)

	rec = do(t, h.Derive, http.MethodPost, "/hd/derive", model.DeriveRequest{Path: "m/44'/0'/0'/0/0"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	derived := decode[model.DeriveResponse](t, rec)
	require.Equal(t, gen.Address, derived.Address)
	require.Equal(t, uint8(5), derived.Depth)
	require.Equal(t, "03aaeb52dd7494c361049de67cc680e83ebcbbbdbeb13637d92cd845f70308af5e", derived.PublicKey)
	require.Equal(t, "xpub", derived.ExtendedPublicKey[:4])

	rec = do(t, h.Derive, http.MethodPost, "/hd/derive", model.DeriveRequest{Path: "m/x"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "InvalidPath", decode[model.ErrorResponse](t, rec).Code)

	// The keystore is never overwritten.
	rec = do(t, h.Generate, http.MethodPost, "/hd/generate", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestGenerate(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.Generate, http.MethodPost, "/hd/generate", model.GenerateRequest{Bits: 256})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	gen := decode[model.GenerateResponse](t, rec)
	require.True(t, gen.Success)
	require.NotEmpty(t, gen.Address)

	rec = do(t, h.Generate, http.MethodGet, "/hd/generate", nil)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestInspect(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.Inspect, http.MethodPost, "/hd/inspect", model.InspectRequest{ExtendedKey: tv1ChildXPrv})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[model.InspectResponse](t, rec)
	require.Equal(t, "0488ade4", resp.Version)
	require.Equal(t, uint8(1), resp.Depth)
	require.Equal(t, "3442193e", resp.ParentFingerprint)
	require.Equal(t, uint32(0x80000000), resp.ChildIndex)
	require.False(t, resp.IsRoot)
	require.Equal(t, "035a784662a4a20a65bf6aab9ae98a6c068a81c52e4b032c0fb5400c706cfccc56", resp.PublicKey)

	raw := base58.Decode(tv1ChildXPrv)
	hexKey := hex.EncodeToString(raw[:len(raw)-4])
	rec = do(t, h.Inspect, http.MethodPost, "/hd/inspect",
		model.InspectRequest{ExtendedKey: hexKey, Encoding: "hex", Strict: true})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "NotARootKey", decode[model.ErrorResponse](t, rec).Code)

	rec = do(t, h.Inspect, http.MethodPost, "/hd/inspect",
		model.InspectRequest{ExtendedKey: hexKey[:10], Encoding: "hex"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "InvalidExtendedKeyLength", decode[model.ErrorResponse](t, rec).Code)

	rec = do(t, h.Inspect, http.MethodPost, "/hd/inspect",
		model.InspectRequest{ExtendedKey: hexKey, Encoding: "wif"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStrength(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.Strength, http.MethodPost, "/hd/strength", model.StrengthRequest{Mnemonic: abandonMnemonic})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[model.StrengthResponse](t, rec)
	require.Equal(t, model.StrengthResponse{Words: 12, Strength: 128, Valid: true}, resp)

	rec = do(t, h.Strength, http.MethodPost, "/hd/strength", model.StrengthRequest{Mnemonic: "abandon about"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "UnsupportedMnemonicLength", decode[model.ErrorResponse](t, rec).Code)
}

func TestAddressWithoutKeystore(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.Address, http.MethodGet, "/hd/address", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
