// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads minisrc settings from a Starlark file.
//
// A configuration file is a Starlark program whose top level assignments
// set the recognised settings:
//
//	format = "mif"
//	output = "build/" + "rom.mif"
//	verbose = True
//	listen = ":9000"
//
// Names starting with an underscore are private to the file and ignored.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang/glog"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/minisrc/translate"
)

var f = translate.From

// DEFAULT_FILE is read from the working directory when no file is named.
const DEFAULT_FILE = "minisrc.star"

var (
	ErrSettingUnknown = errors.New(f("unknown setting"))
	ErrSettingType    = errors.New(f("setting has the wrong type"))
)

// ErrSetting is an error with a specific setting.
type ErrSetting struct {
	Name string
	Err  error
}

func (err *ErrSetting) Error() string {
	return f("setting '%v': %v", err.Name, err.Err)
}

func (err *ErrSetting) Unwrap() error {
	return err.Err
}

// Config holds the settings of a minisrc run.
type Config struct {
	Format  string // Listing dialect name.
	Output  string // Listing path.
	Verbose bool   // Log each assembler pass.
	Listen  string // Address of the HTTP service.
}

// Default returns the built in settings.
func Default() (cfg *Config) {
	cfg = &Config{
		Format: "mem",
		Listen: ":8080",
	}
	return
}

// Parse executes a configuration program, and applies its settings over
// the defaults. If src is nil, the program is read from filename.
func Parse(filename string, src any) (cfg *Config, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			glog.Infof("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, nil)
	if err != nil {
		return
	}

	cfg = Default()
	for _, name := range globals.Keys() {
		if strings.HasPrefix(name, "_") {
			continue
		}

		err = cfg.set(name, globals[name])
		if err != nil {
			cfg = nil
			err = fmt.Errorf("%v: %w", filename, err)
			return
		}
	}

	return
}

// Load executes the configuration file at path.
func Load(path string) (cfg *Config, err error) {
	return Parse(path, nil)
}

func (cfg *Config) set(name string, value starlark.Value) (err error) {
	var target any
	switch name {
	case "format":
		target = &cfg.Format
	case "output":
		target = &cfg.Output
	case "verbose":
		target = &cfg.Verbose
	case "listen":
		target = &cfg.Listen
	default:
		err = &ErrSetting{Name: name, Err: ErrSettingUnknown}
		return
	}

	switch ptr := target.(type) {
	case *string:
		str, ok := value.(starlark.String)
		if !ok {
			err = &ErrSetting{Name: name, Err: fmt.Errorf("%w: %v", ErrSettingType, value.Type())}
			return
		}
		*ptr = string(str)
	case *bool:
		b, ok := value.(starlark.Bool)
		if !ok {
			err = &ErrSetting{Name: name, Err: fmt.Errorf("%w: %v", ErrSettingType, value.Type())}
			return
		}
		*ptr = bool(b)
	}

	return
}
