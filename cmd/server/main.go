// Plain server entrypoint: boots the web app without the management CLI.
package main

import (
	"fmt"
	"os"

	"github.com/grocerly/grocerly/internal/server"
)

func main() {
	if err := server.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
