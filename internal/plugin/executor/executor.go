// Package executor starts external backend plugins and hands out their RPC
// clients.
package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	pluginapi "github.com/jmylchreest/iroha/pkg/plugin"
)

// InfoTimeout bounds a --plugin-info query.
const InfoTimeout = 5 * time.Second

// PluginExecutor owns one plugin process. The process is started on first
// use and lives until Close.
type PluginExecutor struct {
	path   string
	logger hclog.Logger
	runner ProcessRunner

	mu      sync.Mutex
	client  *plugin.Client
	backend pluginapi.BackendPlugin
}

// New returns an executor for the plugin binary at pluginPath.
func New(pluginPath string, logger hclog.Logger) (*PluginExecutor, error) {
	info, err := os.Stat(pluginPath)
	if err != nil {
		return nil, fmt.Errorf("plugin not found: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("plugin path is a directory: %s", pluginPath)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &PluginExecutor{
		path:   pluginPath,
		logger: logger,
		runner: NewRealProcessRunner(),
	}, nil
}

// WithRunner replaces the process runner used for metadata queries.
func (e *PluginExecutor) WithRunner(runner ProcessRunner) *PluginExecutor {
	e.runner = runner
	return e
}

// Path returns the plugin binary path.
func (e *PluginExecutor) Path() string { return e.path }

// Backend starts the plugin if needed and returns its backend client.
func (e *PluginExecutor) Backend() (pluginapi.BackendPlugin, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.backend != nil {
		return e.backend, nil
	}

	e.logger.Debug("starting plugin", "path", e.path)
	e.client = plugin.NewClient(e.clientConfig())

	rpcClient, err := e.client.Client()
	if err != nil {
		e.client.Kill()
		e.client = nil
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	raw, err := rpcClient.Dispense(pluginapi.BackendPluginName)
	if err != nil {
		e.client.Kill()
		e.client = nil
		return nil, fmt.Errorf("failed to dispense plugin: %w", err)
	}

	backend, ok := raw.(pluginapi.BackendPlugin)
	if !ok {
		e.client.Kill()
		e.client = nil
		return nil, fmt.Errorf("plugin returned unexpected type %T", raw)
	}

	e.backend = backend
	return backend, nil
}

// clientConfig describes how the plugin process is launched. Clients are
// managed so plugin.CleanupClients kills any process Close missed.
func (e *PluginExecutor) clientConfig() *plugin.ClientConfig {
	return &plugin.ClientConfig{
		HandshakeConfig:  pluginapi.Handshake,
		Plugins:          pluginapi.PluginMap(nil),
		Cmd:              exec.Command(e.path), // #nosec G204 - plugin path supplied by the user
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
		Logger:           e.logger,
		Managed:          true,
	}
}

// Info runs the plugin with --plugin-info and decodes its metadata without
// starting an RPC session. An unsupported protocol version is reported as
// pluginapi.ErrIncompatible alongside the decoded metadata.
func (e *PluginExecutor) Info(ctx context.Context) (pluginapi.PluginInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, InfoTimeout)
	defer cancel()

	stdout, stderr, err := e.runner.Run(ctx, e.path, []string{"--plugin-info"}, nil)
	if err != nil {
		if len(stderr) > 0 {
			return pluginapi.PluginInfo{}, fmt.Errorf("plugin info failed: %w: %s", err, stderr)
		}
		return pluginapi.PluginInfo{}, fmt.Errorf("plugin info failed: %w", err)
	}

	var info pluginapi.PluginInfo
	if err := json.Unmarshal(stdout, &info); err != nil {
		return pluginapi.PluginInfo{}, fmt.Errorf("invalid plugin info: %w", err)
	}
	if err := pluginapi.CheckCompatible(info.ProtocolVersion); err != nil {
		return info, err
	}
	return info, nil
}

// Close kills the plugin process, if one was started.
func (e *PluginExecutor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.client != nil {
		e.client.Kill()
		e.client = nil
		e.backend = nil
	}
}
