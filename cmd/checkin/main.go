package main

import (
	"os"

	"github.com/bnema/internship-checkin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
