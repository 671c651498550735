package main

import (
	"os"

	"github.com/m04kA/FarrierBookingService/internal/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
