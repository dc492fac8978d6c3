//go:build darwin

package platform

import (
	"os"
	"path/filepath"
)

func configHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "Application Support"), nil
}

func dataHome() (string, error) {
	return configHome()
}
