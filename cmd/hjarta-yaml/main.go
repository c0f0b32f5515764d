package main

import (
	"fmt"
	"os"

	"github.com/0xalexb/hjarta-yaml/internal/cmd"
)

func main() {
	err := cmd.NewDefaultCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hjarta-yaml: %s\n", err)
		os.Exit(1)
	}
}
