package main

import (
	"os"

	"github.com/gabriel1680/jira-cli/internal/app"
)

func main() {
	if err := app.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
