// file: main_test.go
// version: 1.0.0
// guid: fb6c1088-b0ba-4dd9-950a-0188bf59a8ec

package main

import (
	"os"
	"testing"
)

func TestMainHelp(t *testing.T) {
	origArgs := os.Args
	defer func() {
		os.Args = origArgs
	}()

	os.Args = []string{"medbox-reader", "--help"}

	main()
}
