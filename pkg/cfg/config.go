// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Loads YAML config files for the harness.

// Package cfg loads harness config files.
//
// Every component that needs config defines a strongly typed struct
// for it and loads it by file name:
//
//	type Config struct {
//	    Defaults map[string]string `yaml:"Defaults"`
//	}
//
//	var c Config
//	if err := cfg.Load("testenv.yaml", &c); err != nil {
//	    return err
//	}
//
// The default reader resolves file names against the directory named by
// TESTHARNESS_CONFIG_DIR, or the working directory when it is unset.
// Under `go test` the working directory is the package directory, so a
// package can keep its config next to its tests.
//
// Tests can swap the reader with SetDefaultReader or build one with
// StaticReader.
package cfg

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// DirEnv names the environment variable holding the config directory.
const DirEnv = "TESTHARNESS_CONFIG_DIR"

// nolint:gochecknoglobals // Why: overridable by tests
var (
	defaultReaderMu sync.RWMutex
	defaultReader   = DirReader("")
)

// Reader reads the config from the provided file
type Reader func(fileName string) ([]byte, error)

// DirReader returns a Reader rooted at dir. An empty dir defers to
// DirEnv and then the working directory at read time.
func DirReader(dir string) Reader {
	return func(fileName string) ([]byte, error) {
		root := dir
		if root == "" {
			// unset means the working directory
			root, _ = EnvString(DirEnv)
		}
		return os.ReadFile(filepath.Join(root, fileName))
	}
}

// StaticReader serves file contents from memory. Unknown files fail
// with an error satisfying os.IsNotExist.
func StaticReader(files map[string]string) Reader {
	return func(fileName string) ([]byte, error) {
		data, ok := files[fileName]
		if !ok {
			return nil, &os.PathError{Op: "open", Path: fileName, Err: os.ErrNotExist}
		}
		return []byte(data), nil
	}
}

// Load reads and parses the YAML config into ptr.
func (r Reader) Load(fileName string, ptr interface{}) error {
	data, err := r(fileName)
	if err != nil {
		return err
	}

	return errors.Wrapf(yaml.UnmarshalStrict(data, ptr), "parse %s", fileName)
}

// Load uses the default config reader to load config
func Load(fileName string, ptr interface{}) error {
	return DefaultReader().Load(fileName, ptr)
}

// SetDefaultReader sets the default reader and returns a func that
// restores the previous one. Only meant for tests.
func SetDefaultReader(r Reader) func() {
	defaultReaderMu.Lock()
	defer defaultReaderMu.Unlock()

	old := defaultReader
	defaultReader = r
	return func() {
		defaultReaderMu.Lock()
		defer defaultReaderMu.Unlock()
		defaultReader = old
	}
}

// DefaultReader returns the current default reader.
func DefaultReader() Reader {
	defaultReaderMu.RLock()
	defer defaultReaderMu.RUnlock()
	return defaultReader
}
