package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dirs are the per-application directories on this system.
type Dirs struct {
	// Config holds user-editable settings.
	Config string
	// Data holds state the application writes on its own, like history.
	Data string
}

// Service resolves where an application keeps its files.
type Service interface {
	AppDirs(appName string) (Dirs, error)
}

type platformService struct{}

// NewService returns the implementation for the running OS.
func NewService() Service {
	return platformService{}
}

// AppDirs returns <config home>/<appName> and <data home>/<appName>.
func (platformService) AppDirs(appName string) (Dirs, error) {
	appName = strings.TrimSpace(appName)
	if appName == "" {
		return Dirs{}, fmt.Errorf("resolve app dirs: empty application name")
	}
	configDir, err := configHome()
	if err != nil {
		return Dirs{}, fmt.Errorf("resolve config home: %w", err)
	}
	dataDir, err := dataHome()
	if err != nil {
		return Dirs{}, fmt.Errorf("resolve data home: %w", err)
	}
	return Dirs{
		Config: filepath.Join(configDir, appName),
		Data:   filepath.Join(dataDir, appName),
	}, nil
}

func fromEnvOrHome(envKey string, elem ...string) (string, error) {
	if dir := os.Getenv(envKey); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, elem...)...), nil
}
