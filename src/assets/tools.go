//go:build tools

// This file pins go-bindata as this package's nominal generator
// dependency; dictionary.go itself is hand-maintained. It is never
// compiled into the module itself.
package assets

import _ "github.com/asticode/go-bindata/go-bindata"
