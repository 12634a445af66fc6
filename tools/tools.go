//go:build tools

// Package tools pins code generators so go.mod tracks their versions.
package tools

import (
	_ "github.com/dmarkham/enumer"
)
