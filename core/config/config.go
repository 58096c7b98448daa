package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"
	LogsDirName       = "session_logs"
	AppLogName        = "app.log"
)

// Tokenizer names.
const (
	TokenizerSplit = "split"
	TokenizerShell = "shell"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Configuration struct {
	configFs         afero.Fs
	configurationDir string

	Motd          string   `json:"motd"`
	Hostname      string   `json:"hostname" validate:"required,hostname_rfc1123"`
	DefaultVolume string   `json:"default_volume" validate:"required,alphanum"`
	Volumes       []Volume `json:"volumes" validate:"required,min=1,unique=Label,dive"`

	ExecutableSuffixes []string `json:"executable_suffixes" validate:"required,min=1,unique,dive,startswith=."`

	Tokenizer      string `json:"tokenizer" validate:"oneof=split shell"`
	RootParent     string `json:"root_parent" validate:"oneof=stay error"`
	Color          string `json:"color" validate:"oneof=auto always never"`
	RecordSessions bool   `json:"record_sessions"`

	Users []User `json:"users" validate:"required,min=1,unique=Username,dive"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	if err := validate.Struct(c); err != nil {
		return err
	}

	for _, v := range c.Volumes {
		if v.Label == c.DefaultVolume {
			return nil
		}
	}
	return fmt.Errorf("default_volume %q is not in volumes", c.DefaultVolume)
}

type Volume struct {
	Label         string `json:"label" validate:"required,alphanum"`
	CapacityBytes int64  `json:"capacity_bytes" validate:"gt=0"`
	BackingDir    string `json:"backing_dir"`
	Seed          string `json:"seed"`
}

type User struct {
	Username  string   `json:"username" validate:"required"`
	Passwords []string `json:"passwords" validate:"required,min=1,unique"`
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// Dir returns the directory the configuration was loaded from, empty for the
// built-in configuration.
func (c *Configuration) Dir() string {
	return c.configurationDir
}

// ResolvePath makes paths in the configuration relative to its directory.
func (c *Configuration) ResolvePath(p string) string {
	if filepath.IsAbs(p) || c.configurationDir == "" {
		return p
	}
	return filepath.Join(c.configurationDir, p)
}

func (c *Configuration) CreateSessionLog(name string) (afero.File, error) {
	if err := c.fs().MkdirAll(LogsDirName, 0700); err != nil {
		return nil, err
	}
	toCreate := filepath.Join(LogsDirName, name)
	return c.fs().Create(toCreate)
}

// OpenSessionLog opens a session log for reading.
func (c *Configuration) OpenSessionLog(name string) (afero.File, error) {
	return c.fs().Open(filepath.Join(LogsDirName, filepath.Base(name)))
}

// OpenAppLog opens the application log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	return c.fs().OpenFile(AppLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

func (c *Configuration) ReadAppLog() (afero.File, error) {
	return c.fs().OpenFile(AppLogName, os.O_RDONLY, 0600)
}

// OpenVolumeSeed opens a .tar.gz used to populate a volume.
func (c *Configuration) OpenVolumeSeed(name string) (afero.File, error) {
	return c.fs().Open(name)
}

// GetPasswords returns allowable passwords for the given username.
func (c *Configuration) GetPasswords(username string) []string {
	var out []string
	for _, v := range c.Users {
		if v.Username == username {
			out = append(out, v.Passwords...)
		}
	}
	return out
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// Default returns the built-in configuration with an in-memory config
// directory, useful for running without any files on disk.
func Default() *Configuration {
	out := defaultConfig()
	out.configFs = afero.NewMemMapFs()
	return out
}
