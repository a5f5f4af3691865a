// SPDX-License-Identifier: MIT

// Command polyroute computes shortest paths over .poly point/edge files.
//
//	polyroute sample --out example.poly
//	polyroute route --file example.poly --from 0 --to 2
//	polyroute route --file example.poly --from-xy 600,500 --to-xy 1180,860
//	polyroute nearest --file example.poly --x 720 --y 770
//	polyroute inspect --file example.poly
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newApp().execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadDotEnv loads path into the environment if it exists. Variables that
// are already set win.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
