// Package plugin provides the public API for iroha backend plugins.
// External backends import this package and call Serve from main.
package plugin

import (
	"github.com/hashicorp/go-plugin"
)

const (
	// ProtocolVersion defines the current plugin API version.
	// Format: MAJOR.MINOR.PATCH.
	ProtocolVersion = "1.0.0"

	// BackendPluginName is the key under which backends are dispensed.
	BackendPluginName = "backend"
)

// Handshake is the go-plugin handshake shared by iroha and its plugins.
// A binary started without the cookie refuses to serve.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "IROHA_PLUGIN",
	MagicCookieValue: "iroha_colour_scheme",
}
