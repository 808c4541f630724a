package colour

import (
	"fmt"
	"strings"
)

// Theme selects which derived variant becomes the default scheme.
type Theme string

const (
	// ThemeLight is a light background with dark content.
	ThemeLight Theme = "light"

	// ThemeDark is a dark background with light content.
	ThemeDark Theme = "dark"
)

// Valid reports whether t is light or dark.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// ParseTheme parses a theme name, case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: light, dark)", ErrInvalidTheme, s)
	}
}

// Role is one named slot of a Scheme.
type Role string

// Scheme roles, in the order they are serialised.
const (
	RolePrimary              Role = "primary"
	RoleOnPrimary            Role = "onPrimary"
	RolePrimaryContainer     Role = "primaryContainer"
	RoleOnPrimaryContainer   Role = "onPrimaryContainer"
	RoleSecondary            Role = "secondary"
	RoleOnSecondary          Role = "onSecondary"
	RoleSecondaryContainer   Role = "secondaryContainer"
	RoleOnSecondaryContainer Role = "onSecondaryContainer"
	RoleTertiary             Role = "tertiary"
	RoleOnTertiary           Role = "onTertiary"
	RoleTertiaryContainer    Role = "tertiaryContainer"
	RoleOnTertiaryContainer  Role = "onTertiaryContainer"
	RoleError                Role = "error"
	RoleOnError              Role = "onError"
	RoleErrorContainer       Role = "errorContainer"
	RoleOnErrorContainer     Role = "onErrorContainer"
	RoleBackground           Role = "background"
	RoleOnBackground         Role = "onBackground"
	RoleSurface              Role = "surface"
	RoleOnSurface            Role = "onSurface"
	RoleSurfaceVariant       Role = "surfaceVariant"
	RoleOnSurfaceVariant     Role = "onSurfaceVariant"
	RoleOutline              Role = "outline"
	RoleOutlineVariant       Role = "outlineVariant"
	RoleShadow               Role = "shadow"
	RoleScrim                Role = "scrim"
	RoleInverseSurface       Role = "inverseSurface"
	RoleInverseOnSurface     Role = "inverseOnSurface"
	RoleInversePrimary       Role = "inversePrimary"
)

// Roles returns every scheme role in canonical order.
func Roles() []Role {
	return []Role{
		RolePrimary, RoleOnPrimary, RolePrimaryContainer, RoleOnPrimaryContainer,
		RoleSecondary, RoleOnSecondary, RoleSecondaryContainer, RoleOnSecondaryContainer,
		RoleTertiary, RoleOnTertiary, RoleTertiaryContainer, RoleOnTertiaryContainer,
		RoleError, RoleOnError, RoleErrorContainer, RoleOnErrorContainer,
		RoleBackground, RoleOnBackground, RoleSurface, RoleOnSurface,
		RoleSurfaceVariant, RoleOnSurfaceVariant, RoleOutline, RoleOutlineVariant,
		RoleShadow, RoleScrim, RoleInverseSurface, RoleInverseOnSurface, RoleInversePrimary,
	}
}

// RGBA is a raw colour quadruple as produced by a backend, channels in [0,255].
type RGBA [4]int

// RawScheme is the backend-produced input to Assemble: one quadruple per role name.
type RawScheme map[Role]RGBA

// Scheme maps every role to its colour. The role set is fixed.
type Scheme struct {
	Primary              Object `json:"primary"`
	OnPrimary            Object `json:"onPrimary"`
	PrimaryContainer     Object `json:"primaryContainer"`
	OnPrimaryContainer   Object `json:"onPrimaryContainer"`
	Secondary            Object `json:"secondary"`
	OnSecondary          Object `json:"onSecondary"`
	SecondaryContainer   Object `json:"secondaryContainer"`
	OnSecondaryContainer Object `json:"onSecondaryContainer"`
	Tertiary             Object `json:"tertiary"`
	OnTertiary           Object `json:"onTertiary"`
	TertiaryContainer    Object `json:"tertiaryContainer"`
	OnTertiaryContainer  Object `json:"onTertiaryContainer"`
	Error                Object `json:"error"`
	OnError              Object `json:"onError"`
	ErrorContainer       Object `json:"errorContainer"`
	OnErrorContainer     Object `json:"onErrorContainer"`
	Background           Object `json:"background"`
	OnBackground         Object `json:"onBackground"`
	Surface              Object `json:"surface"`
	OnSurface            Object `json:"onSurface"`
	SurfaceVariant       Object `json:"surfaceVariant"`
	OnSurfaceVariant     Object `json:"onSurfaceVariant"`
	Outline              Object `json:"outline"`
	OutlineVariant       Object `json:"outlineVariant"`
	Shadow               Object `json:"shadow"`
	Scrim                Object `json:"scrim"`
	InverseSurface       Object `json:"inverseSurface"`
	InverseOnSurface     Object `json:"inverseOnSurface"`
	InversePrimary       Object `json:"inversePrimary"`
}

// slot returns the field backing role, or nil for an unknown role.
func (s *Scheme) slot(role Role) *Object {
	switch role {
	case RolePrimary:
		return &s.Primary
	case RoleOnPrimary:
		return &s.OnPrimary
	case RolePrimaryContainer:
		return &s.PrimaryContainer
	case RoleOnPrimaryContainer:
		return &s.OnPrimaryContainer
	case RoleSecondary:
		return &s.Secondary
	case RoleOnSecondary:
		return &s.OnSecondary
	case RoleSecondaryContainer:
		return &s.SecondaryContainer
	case RoleOnSecondaryContainer:
		return &s.OnSecondaryContainer
	case RoleTertiary:
		return &s.Tertiary
	case RoleOnTertiary:
		return &s.OnTertiary
	case RoleTertiaryContainer:
		return &s.TertiaryContainer
	case RoleOnTertiaryContainer:
		return &s.OnTertiaryContainer
	case RoleError:
		return &s.Error
	case RoleOnError:
		return &s.OnError
	case RoleErrorContainer:
		return &s.ErrorContainer
	case RoleOnErrorContainer:
		return &s.OnErrorContainer
	case RoleBackground:
		return &s.Background
	case RoleOnBackground:
		return &s.OnBackground
	case RoleSurface:
		return &s.Surface
	case RoleOnSurface:
		return &s.OnSurface
	case RoleSurfaceVariant:
		return &s.SurfaceVariant
	case RoleOnSurfaceVariant:
		return &s.OnSurfaceVariant
	case RoleOutline:
		return &s.Outline
	case RoleOutlineVariant:
		return &s.OutlineVariant
	case RoleShadow:
		return &s.Shadow
	case RoleScrim:
		return &s.Scrim
	case RoleInverseSurface:
		return &s.InverseSurface
	case RoleInverseOnSurface:
		return &s.InverseOnSurface
	case RoleInversePrimary:
		return &s.InversePrimary
	}
	return nil
}

// Get returns the colour for role. ok is false for an unknown role.
func (s *Scheme) Get(role Role) (obj Object, ok bool) {
	p := s.slot(role)
	if p == nil {
		return Object{}, false
	}
	return *p, true
}

// TemplateData returns the scheme keyed by role name with each colour
// expanded by Object.Map.
func (s *Scheme) TemplateData() map[string]any {
	data := make(map[string]any, len(Roles()))
	for _, role := range Roles() {
		data[string(role)] = s.slot(role).Map()
	}
	return data
}

// Assemble normalises every role of raw into a Scheme. Every role must be
// present; roles raw carries beyond the fixed set are ignored.
func Assemble(raw RawScheme) (Scheme, error) {
	var s Scheme
	for _, role := range Roles() {
		q, ok := raw[role]
		if !ok {
			return Scheme{}, fmt.Errorf("%w: missing role %q", ErrConfiguration, role)
		}
		*s.slot(role) = Normalize(q[0], q[1], q[2], q[3])
	}
	return s, nil
}

// Schemes bundles the light and dark variants derived from one seed.
// Default points at whichever variant matches the requested theme.
type Schemes struct {
	Default *Scheme `json:"default"`
	Light   *Scheme `json:"light"`
	Dark    *Scheme `json:"dark"`
}

// Variant returns the scheme for a variant name: default, light or dark.
func (s *Schemes) Variant(name string) (*Scheme, error) {
	switch name {
	case "default":
		return s.Default, nil
	case string(ThemeLight):
		return s.Light, nil
	case string(ThemeDark):
		return s.Dark, nil
	}
	return nil, fmt.Errorf("unknown scheme variant %q (valid: default, light, dark)", name)
}

// BuildSchemes assembles both variants and selects the default by theme.
func BuildSchemes(theme Theme, light, dark RawScheme) (*Schemes, error) {
	if !theme.Valid() {
		return nil, fmt.Errorf("%w: %q (valid: light, dark)", ErrInvalidTheme, theme)
	}

	lightScheme, err := Assemble(light)
	if err != nil {
		return nil, fmt.Errorf("light scheme: %w", err)
	}
	darkScheme, err := Assemble(dark)
	if err != nil {
		return nil, fmt.Errorf("dark scheme: %w", err)
	}

	schemes := &Schemes{
		Light: &lightScheme,
		Dark:  &darkScheme,
	}
	if theme == ThemeDark {
		schemes.Default = schemes.Dark
	} else {
		schemes.Default = schemes.Light
	}
	return schemes, nil
}
