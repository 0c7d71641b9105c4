/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"os"

	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metadata"
	"github.com/xxzx6uzm3/asymmetric-ciphers/internal/keyutil"
	"gopkg.in/alecthomas/kingpin.v2"
)

const errorPrefix = "Key Utility Error: "

var (
	app = kingpin.New("keyutil", "Utility for key pairs written by rsagen")

	inspect     = app.Command("inspect", "Print the sizes of a stored key pair.")
	inspectDir  = inspect.Arg("dir", "Keystore directory.").Required().String()
	inspectName = inspect.Arg("name", "Key name.").Required().String()

	verify     = app.Command("verify", "Round trip a sample message through a stored key pair.")
	verifyDir  = verify.Arg("dir", "Keystore directory.").Required().String()
	verifyName = verify.Arg("name", "Key name.").Required().String()

	args = os.Args[1:]
)

func main() {
	app.Version(metadata.Version)

	command, err := app.Parse(args)
	if err != nil {
		kingpin.Fatalf("parsing arguments: %s. Try --help", err)
		return
	}

	switch command {
	case inspect.FullCommand():
		info, err := keyutil.Inspect(*inspectDir, *inspectName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s%s\n", errorPrefix, err)
			os.Exit(1)
		}
		keyutil.WriteInfo(os.Stdout, info)

	case verify.FullCommand():
		if err := keyutil.Verify(*verifyDir, *verifyName); err != nil {
			fmt.Fprintf(os.Stderr, "%s%s\n", errorPrefix, err)
			os.Exit(1)
		}
		fmt.Printf("Key pair %s verified.\n", *verifyName)
	}
}
