//go:build tools
// +build tools

package webtest

// Import modules for external tools for correct version pinning und usage with "go run ..."
import (
	_ "github.com/playwright-community/playwright-go/cmd/playwright"
)
