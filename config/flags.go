// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"reflect"

	"github.com/glboot/hii/base/errors"
	"github.com/spf13/pflag"
)

// AddFlags adds a flag to fs for every field of cfg with a `flag:` tag,
// bound to that field and using its `desc:` tag as the usage string.
// The current field values are the flag defaults.
func AddFlags(fs *pflag.FlagSet, cfg *Config) {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		name, ok := f.Tag.Lookup("flag")
		if !ok {
			continue
		}
		desc := f.Tag.Get("desc")
		switch p := v.Field(i).Addr().Interface().(type) {
		case *string:
			fs.StringVar(p, name, *p, desc)
		case *int:
			fs.IntVar(p, name, *p, desc)
		case *bool:
			fs.BoolVar(p, name, *p, desc)
		default:
			panic(errors.Errorf("config.AddFlags: unsupported type %T for field %s", p, f.Name))
		}
	}
}

// ApplyFlags copies into dst the fields of src whose flags
// were explicitly set on fs, where src is the config that
// was bound to fs with [AddFlags].
func ApplyFlags(fs *pflag.FlagSet, src, dst *Config) {
	sv := reflect.ValueOf(src).Elem()
	dv := reflect.ValueOf(dst).Elem()
	t := sv.Type()
	for i := range t.NumField() {
		name, ok := t.Field(i).Tag.Lookup("flag")
		if !ok || !fs.Changed(name) {
			continue
		}
		dv.Field(i).Set(sv.Field(i))
	}
}
