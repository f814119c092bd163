//go:build !windows

package main

import "github.com/atotto/clipboard"

// copyReport places the latest progress report on the system clipboard.
func copyReport(text string) error {
	return clipboard.WriteAll(text)
}
