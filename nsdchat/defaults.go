package nsdchat

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/BurntSushi/toml"
)

// Defaults holds the process-wide fallback settings used to fill in
// Config fields that are left unset when constructing a Connection.
type Defaults struct {
	// User is the P5 account name.
	User string `toml:"user"`

	// Password is the P5 account password.
	Password string `toml:"password"`

	// Host is the address of the machine running the P5 server.
	Host string `toml:"host"`

	// Port is the base port of the P5 server as configured in
	// config/lexxsrv. The CLI port is derived from it by adding 1001.
	Port int `toml:"port"`

	// InstallPath is the P5 installation directory. The nsdchat binary is
	// expected under its bin subdirectory.
	InstallPath string `toml:"install_path"`
}

// builtinDefaults mirrors a stock localhost P5 installation.
func builtinDefaults() Defaults {
	return Defaults{
		User:        "Administrator",
		Password:    "password",
		Host:        "127.0.0.1",
		Port:        8000,
		InstallPath: defaultInstallPath(),
	}
}

// defaultInstallPath returns the vendor's default installation directory
// for the current platform.
func defaultInstallPath() string {
	if runtime.GOOS == "windows" {
		return `C:\Program Files\ARCHIWARE\Data_Lifecycle_Management_Suite`
	}
	return "/usr/local/aw"
}

var (
	defaultsMu sync.RWMutex
	defaults   = builtinDefaults()
)

// CurrentDefaults returns a copy of the process-wide defaults.
func CurrentDefaults() Defaults {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

// SetDefaults replaces the process-wide defaults. Zero fields of d fall
// back to the built-in localhost defaults. Connections already constructed
// are unaffected.
func SetDefaults(d Defaults) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = d.orBuiltin()
}

// LoadDefaults reads defaults from a TOML file and installs them as the
// process-wide defaults. Fields missing from the file keep their built-in
// values.
func LoadDefaults(path string) (Defaults, error) {
	var d Defaults
	if _, err := toml.DecodeFile(path, &d); err != nil {
		return Defaults{}, fmt.Errorf("nsdchat: load defaults %s: %w", path, err)
	}
	SetDefaults(d)
	return CurrentDefaults(), nil
}

func (d Defaults) orBuiltin() Defaults {
	b := builtinDefaults()
	if d.User == "" {
		d.User = b.User
	}
	if d.Password == "" {
		d.Password = b.Password
	}
	if d.Host == "" {
		d.Host = b.Host
	}
	if d.Port == 0 {
		d.Port = b.Port
	}
	if d.InstallPath == "" {
		d.InstallPath = b.InstallPath
	}
	return d
}
