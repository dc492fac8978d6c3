//go:build windows

package platform

func configHome() (string, error) {
	return fromEnvOrHome("APPDATA", "AppData", "Roaming")
}

func dataHome() (string, error) {
	return fromEnvOrHome("LOCALAPPDATA", "AppData", "Local")
}
