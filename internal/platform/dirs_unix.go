//go:build !darwin && !windows

package platform

func configHome() (string, error) {
	return fromEnvOrHome("XDG_CONFIG_HOME", ".config")
}

func dataHome() (string, error) {
	return fromEnvOrHome("XDG_DATA_HOME", ".local", "share")
}
