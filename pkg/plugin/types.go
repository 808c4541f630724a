package plugin

// PluginInfo contains metadata about a backend plugin.
type PluginInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
}

// Options mirrors the host's backend configuration. Zero values mean the
// plugin's own default.
type Options struct {
	Stride    int `json:"stride,omitempty"`
	NumColors int `json:"num_colors,omitempty"`
}

// ImageRequest asks a plugin to derive schemes from an image on disk.
type ImageRequest struct {
	ImagePath string  `json:"image_path"`
	Options   Options `json:"options"`
}

// ColorRequest asks a plugin to derive schemes from a packed 0xAARRGGBB seed.
type ColorRequest struct {
	ARGB    uint32  `json:"argb"`
	Options Options `json:"options"`
}

// RawScheme maps role names (primary, onPrimary, ...) to r, g, b, a channels.
type RawScheme map[string][4]int

// SchemePair is the light and dark raw scheme a plugin returns.
// The host assembles and validates both.
type SchemePair struct {
	Light RawScheme `json:"light"`
	Dark  RawScheme `json:"dark"`
}
