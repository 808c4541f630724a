package material

import (
	"image/color"

	"github.com/jmylchreest/iroha/internal/colour"
)

// toneRef names the palette and tone a role is taken from.
type toneRef struct {
	palette func(*CorePalette) *TonalPalette
	tone    int
}

func a1(t int) toneRef { return toneRef{func(p *CorePalette) *TonalPalette { return p.A1 }, t} }
func a2(t int) toneRef { return toneRef{func(p *CorePalette) *TonalPalette { return p.A2 }, t} }
func a3(t int) toneRef { return toneRef{func(p *CorePalette) *TonalPalette { return p.A3 }, t} }
func n1(t int) toneRef { return toneRef{func(p *CorePalette) *TonalPalette { return p.N1 }, t} }
func n2(t int) toneRef { return toneRef{func(p *CorePalette) *TonalPalette { return p.N2 }, t} }
func er(t int) toneRef { return toneRef{func(p *CorePalette) *TonalPalette { return p.Error }, t} }

var lightTones = map[colour.Role]toneRef{
	colour.RolePrimary:              a1(40),
	colour.RoleOnPrimary:            a1(100),
	colour.RolePrimaryContainer:     a1(90),
	colour.RoleOnPrimaryContainer:   a1(10),
	colour.RoleSecondary:            a2(40),
	colour.RoleOnSecondary:          a2(100),
	colour.RoleSecondaryContainer:   a2(90),
	colour.RoleOnSecondaryContainer: a2(10),
	colour.RoleTertiary:             a3(40),
	colour.RoleOnTertiary:           a3(100),
	colour.RoleTertiaryContainer:    a3(90),
	colour.RoleOnTertiaryContainer:  a3(10),
	colour.RoleError:                er(40),
	colour.RoleOnError:              er(100),
	colour.RoleErrorContainer:       er(90),
	colour.RoleOnErrorContainer:     er(10),
	colour.RoleBackground:           n1(99),
	colour.RoleOnBackground:         n1(10),
	colour.RoleSurface:              n1(99),
	colour.RoleOnSurface:            n1(10),
	colour.RoleSurfaceVariant:       n2(90),
	colour.RoleOnSurfaceVariant:     n2(30),
	colour.RoleOutline:              n2(50),
	colour.RoleOutlineVariant:       n2(80),
	colour.RoleShadow:               n1(0),
	colour.RoleScrim:                n1(0),
	colour.RoleInverseSurface:       n1(20),
	colour.RoleInverseOnSurface:     n1(95),
	colour.RoleInversePrimary:       a1(80),
}

var darkTones = map[colour.Role]toneRef{
	colour.RolePrimary:              a1(80),
	colour.RoleOnPrimary:            a1(20),
	colour.RolePrimaryContainer:     a1(30),
	colour.RoleOnPrimaryContainer:   a1(90),
	colour.RoleSecondary:            a2(80),
	colour.RoleOnSecondary:          a2(20),
	colour.RoleSecondaryContainer:   a2(30),
	colour.RoleOnSecondaryContainer: a2(90),
	colour.RoleTertiary:             a3(80),
	colour.RoleOnTertiary:           a3(20),
	colour.RoleTertiaryContainer:    a3(30),
	colour.RoleOnTertiaryContainer:  a3(90),
	colour.RoleError:                er(80),
	colour.RoleOnError:              er(20),
	colour.RoleErrorContainer:       er(30),
	colour.RoleOnErrorContainer:     er(80),
	colour.RoleBackground:           n1(10),
	colour.RoleOnBackground:         n1(90),
	colour.RoleSurface:              n1(10),
	colour.RoleOnSurface:            n1(90),
	colour.RoleSurfaceVariant:       n2(30),
	colour.RoleOnSurfaceVariant:     n2(80),
	colour.RoleOutline:              n2(60),
	colour.RoleOutlineVariant:       n2(30),
	colour.RoleShadow:               n1(0),
	colour.RoleScrim:                n1(0),
	colour.RoleInverseSurface:       n1(90),
	colour.RoleInverseOnSurface:     n1(20),
	colour.RoleInversePrimary:       a1(40),
}

// Schemes returns the light and dark raw schemes for seed from one core palette.
func Schemes(seed color.Color) (light, dark colour.RawScheme) {
	p := NewCorePalette(seed)
	return p.scheme(lightTones), p.scheme(darkTones)
}

func (p *CorePalette) scheme(tones map[colour.Role]toneRef) colour.RawScheme {
	raw := make(colour.RawScheme, len(tones))
	for role, ref := range tones {
		c := ref.palette(p).Tone(ref.tone)
		raw[role] = colour.RGBA{int(c.R), int(c.G), int(c.B), int(c.A)}
	}
	return raw
}
