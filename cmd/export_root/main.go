// One-off: decrypt a .cwt keystore and print its root extended private key.
// Usage: HD_FILE_PATH=wallet.cwt go run ./cmd/export_root
package main

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/hd-wallet/hdwallet"
	"github.com/AlexZinkM/hd-wallet/internal/config"
	"github.com/AlexZinkM/hd-wallet/internal/log"
)

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.SetLogLevels(config.Get().LogLevel)

	net, err := hdwallet.NetworkParams(config.GetNetwork())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := config.LoadPassword(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	password, err := config.GetPasswordBytes()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer clear(password)

	wallet, err := hdwallet.LoadWallet(config.GetWalletFilePath(), password, net)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decrypt failed:", err)
		os.Exit(1)
	}
	defer wallet.Core().Zero()

	log.MainLog.Infof("Exporting root key (%s, depth %d)", net.Name, wallet.Depth())
	fmt.Println(wallet.RootExtendedPrivateKey())
}
