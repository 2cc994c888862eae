package main

import (
	"fmt"
	"os"

	"suited/internal/suitectl"
)

func main() {
	if err := suitectl.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
