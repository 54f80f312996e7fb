package main

import (
	"os"

	"assetd/internal/assetctl"
)

func main() {
	os.Exit(assetctl.Main(os.Args[1:]))
}
