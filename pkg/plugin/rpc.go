package plugin

import (
	"context"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// BackendPluginRPC implements the go-plugin Plugin interface for backends.
type BackendPluginRPC struct {
	plugin.Plugin
	Impl BackendPlugin
}

// Server returns an RPC server for this plugin.
func (p *BackendPluginRPC) Server(*plugin.MuxBroker) (any, error) {
	return &BackendPluginRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *BackendPluginRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &BackendPluginRPCClient{client: c}, nil
}

// BackendPluginRPCServer runs inside the plugin process.
type BackendPluginRPCServer struct {
	Impl BackendPlugin
}

// FromImage implements the RPC method for image derivation.
func (s *BackendPluginRPCServer) FromImage(req ImageRequest, resp *SchemePair) error {
	pair, err := s.Impl.FromImage(context.Background(), req)
	if err != nil {
		return err
	}
	*resp = pair
	return nil
}

// FromColor implements the RPC method for seed colour derivation.
func (s *BackendPluginRPCServer) FromColor(req ColorRequest, resp *SchemePair) error {
	pair, err := s.Impl.FromColor(context.Background(), req)
	if err != nil {
		return err
	}
	*resp = pair
	return nil
}

// GetMetadata implements the RPC method for fetching plugin metadata.
func (s *BackendPluginRPCServer) GetMetadata(_ any, resp *PluginInfo) error {
	*resp = s.Impl.GetMetadata()
	return nil
}

// BackendPluginRPCClient is the host side of a backend plugin.
type BackendPluginRPCClient struct {
	client *rpc.Client
}

// FromImage calls the remote FromImage method.
func (c *BackendPluginRPCClient) FromImage(ctx context.Context, req ImageRequest) (SchemePair, error) {
	var pair SchemePair
	err := c.call(ctx, "Plugin.FromImage", req, &pair)
	return pair, err
}

// FromColor calls the remote FromColor method.
func (c *BackendPluginRPCClient) FromColor(ctx context.Context, req ColorRequest) (SchemePair, error) {
	var pair SchemePair
	err := c.call(ctx, "Plugin.FromColor", req, &pair)
	return pair, err
}

// GetMetadata calls the remote GetMetadata method. A failed call yields
// an empty PluginInfo.
func (c *BackendPluginRPCClient) GetMetadata() PluginInfo {
	var info PluginInfo
	if err := c.client.Call("Plugin.GetMetadata", new(any), &info); err != nil {
		return PluginInfo{}
	}
	return info
}

// call runs an RPC and gives up when ctx is done. The plugin keeps working
// on an abandoned call until the host kills it.
func (c *BackendPluginRPCClient) call(ctx context.Context, method string, args, reply any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	call := c.client.Go(method, args, reply, make(chan *rpc.Call, 1))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-call.Done:
		if call.Error != nil {
			return &RPCError{Message: call.Error.Error()}
		}
		return nil
	}
}

// RPCError represents an error returned from an RPC call.
type RPCError struct {
	Message string
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return e.Message
}
