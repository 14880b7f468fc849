package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/urfave/cli/v2"
)

var keysCommand = &cli.Command{
	Name:  "keys",
	Usage: "Generate base64 cookie encryption keys for the environment",
	Action: func(c *cli.Context) error {
		hashKey := make([]byte, 32)
		blockKey := make([]byte, 32)

		if _, err := rand.Read(hashKey); err != nil {
			return err
		}
		if _, err := rand.Read(blockKey); err != nil {
			return err
		}

		fmt.Printf("COOKIE_HASH_KEY=%s\n", base64.StdEncoding.EncodeToString(hashKey))
		fmt.Printf("COOKIE_BLOCK_KEY=%s\n", base64.StdEncoding.EncodeToString(blockKey))

		return nil
	},
}
