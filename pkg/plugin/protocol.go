package plugin

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-plugin"
)

// PluginMap returns the go-plugin plugin set for impl. Hosts pass a nil impl.
func PluginMap(impl BackendPlugin) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		BackendPluginName: &BackendPluginRPC{Impl: impl},
	}
}

// Serve runs impl as a backend plugin. Invoked with --plugin-info it prints
// the metadata as JSON and exits instead.
func Serve(impl BackendPlugin) {
	if len(os.Args) > 1 && os.Args[1] == "--plugin-info" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(impl.GetMetadata()); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding plugin info: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins:         PluginMap(impl),
	})
}
