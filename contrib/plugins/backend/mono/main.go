// mono - Greyscale backend plugin for iroha
//
// Derives the usual Material schemes and reduces every role to its
// luminance, keeping the tone structure while dropping all hue.
//
// Build:
//
//	go build -o iroha-mono ./contrib/plugins/backend/mono
//
// Usage:
//
//	iroha --plugin mono=./iroha-mono from-image -b mono wallpaper.jpg
//	IROHA_PLUGINS=mono=/usr/local/bin/iroha-mono iroha backends
package main

import (
	pluginapi "github.com/jmylchreest/iroha/pkg/plugin"
)

func main() {
	pluginapi.Serve(NewMono())
}
