package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: Password is loaded at runtime and stored in memory - use GetPasswordBytes()
type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	WalletFilePath string `envconfig:"HD_FILE_PATH" required:"true"`
	Network        string `envconfig:"HD_NETWORK" default:"mainnet"`
	DefaultPath    string `envconfig:"HD_DEFAULT_PATH" default:"m/44'/0'/0'/0/0"`
	MnemonicBits   int    `envconfig:"HD_MNEMONIC_BITS" default:"256"`
	PasswordFile   string `envconfig:"HD_PASSWORD_FILE"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile        string `envconfig:"LOG_FILE"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.validate(); err != nil {
		return err
	}
	cfg = c
	return nil
}

func (c *Config) validate() error {
	switch c.MnemonicBits {
	case 128, 160, 192, 224, 256:
	default:
		return fmt.Errorf("HD_MNEMONIC_BITS must be one of 128, 160, 192, 224, 256, got %d", c.MnemonicBits)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetWalletFilePath returns path to .cwt file from configuration
func GetWalletFilePath() string {
	return Get().WalletFilePath
}

// GetNetwork returns the network name from configuration
func GetNetwork() string {
	return Get().Network
}

// GetDefaultPath returns the derivation path of the keystore's display address
func GetDefaultPath() string {
	return Get().DefaultPath
}

// GetMnemonicBits returns entropy of generated mnemonics
func GetMnemonicBits() int {
	return Get().MnemonicBits
}

var passwordBytes []byte

// LoadPassword reads the keystore password from HD_PASSWORD_FILE when set,
// otherwise prompts for it in the terminal.
// Call this at startup before the server begins handling requests.
func LoadPassword() error {
	if path := Get().PasswordFile; path != "" {
		return ReadPasswordFile(path)
	}
	return PromptForPassword()
}

// ReadPasswordFile loads the password from the first line of a file.
func ReadPasswordFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read password file: %w", err)
	}
	defer clear(raw)

	line := raw
	if i := bytes.IndexAny(raw, "\r\n"); i >= 0 {
		line = raw[:i]
	}
	return setPassword(line)
}

// PromptForPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
func PromptForPassword() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal: run the app interactively or set HD_PASSWORD_FILE")
	}
	fmt.Fprint(os.Stderr, "Enter wallet password: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	defer clear(raw)

	return setPassword(raw)
}

func setPassword(raw []byte) error {
	if len(raw) == 0 {
		return errors.New("password cannot be empty")
	}
	clear(passwordBytes)
	passwordBytes = make([]byte, len(raw))
	copy(passwordBytes, raw)
	return nil
}

// GetPasswordBytes returns a copy of the password stored in memory.
// Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call LoadPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
