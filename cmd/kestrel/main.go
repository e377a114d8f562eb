// Package main provides the Kestrel estimation toolkit CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Kestrel %s\n", version)
		return
	}

	fmt.Println("Kestrel - Sensor Fusion and State Estimation for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("Coming soon: solve, smooth, inspect")
}
