package colour

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// fullRaw returns a raw scheme with every role set to a distinct colour.
func fullRaw(seed int) RawScheme {
	raw := make(RawScheme)
	for i, role := range Roles() {
		raw[role] = RGBA{(seed + i*8) % 256, (seed + i*3) % 256, (seed + i) % 256, 255}
	}
	return raw
}

func TestRoles(t *testing.T) {
	roles := Roles()
	if len(roles) != 29 {
		t.Fatalf("Roles() returned %d roles, want 29", len(roles))
	}

	seen := make(map[Role]bool)
	var s Scheme
	for _, role := range roles {
		if seen[role] {
			t.Errorf("role %q listed twice", role)
		}
		seen[role] = true
		if _, ok := s.Get(role); !ok {
			t.Errorf("role %q has no scheme field", role)
		}
	}
}

func TestAssemble(t *testing.T) {
	raw := fullRaw(10)
	scheme, err := Assemble(raw)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	for _, role := range Roles() {
		got, _ := scheme.Get(role)
		q := raw[role]
		if want := Normalize(q[0], q[1], q[2], q[3]); got != want {
			t.Errorf("role %s = %+v, want %+v", role, got, want)
		}
	}
}

func TestAssembleMissingRole(t *testing.T) {
	for _, role := range []Role{RolePrimary, RoleScrim, RoleInversePrimary} {
		t.Run(string(role), func(t *testing.T) {
			raw := fullRaw(0)
			delete(raw, role)

			_, err := Assemble(raw)
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("Assemble() error = %v, want ErrConfiguration", err)
			}
			if !strings.Contains(err.Error(), string(role)) {
				t.Errorf("error %q does not name role %q", err, role)
			}
		})
	}
}

func TestAssembleIgnoresExtraRoles(t *testing.T) {
	raw := fullRaw(0)
	raw["surfaceTint"] = RGBA{1, 2, 3, 255}

	scheme, err := Assemble(raw)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if _, ok := scheme.Get("surfaceTint"); ok {
		t.Error("extra role surfaceTint should not be addressable")
	}
}

func TestBuildSchemes(t *testing.T) {
	light, dark := fullRaw(1), fullRaw(200)

	t.Run("dark", func(t *testing.T) {
		schemes, err := BuildSchemes(ThemeDark, light, dark)
		if err != nil {
			t.Fatalf("BuildSchemes() error = %v", err)
		}
		if schemes.Default != schemes.Dark {
			t.Error("default should be the dark scheme")
		}
		if *schemes.Light == *schemes.Dark {
			t.Error("light and dark should differ for distinct inputs")
		}
	})

	t.Run("light", func(t *testing.T) {
		schemes, err := BuildSchemes(ThemeLight, light, dark)
		if err != nil {
			t.Fatalf("BuildSchemes() error = %v", err)
		}
		if schemes.Default != schemes.Light {
			t.Error("default should be the light scheme")
		}
	})

	t.Run("invalid theme", func(t *testing.T) {
		_, err := BuildSchemes(Theme("sepia"), light, dark)
		if !errors.Is(err, ErrInvalidTheme) {
			t.Fatalf("BuildSchemes() error = %v, want ErrInvalidTheme", err)
		}
	})

	t.Run("missing role in dark", func(t *testing.T) {
		broken := fullRaw(5)
		delete(broken, RoleOutline)
		_, err := BuildSchemes(ThemeLight, light, broken)
		if !errors.Is(err, ErrConfiguration) {
			t.Fatalf("BuildSchemes() error = %v, want ErrConfiguration", err)
		}
	})
}

func TestSchemesVariant(t *testing.T) {
	schemes, err := BuildSchemes(ThemeLight, fullRaw(1), fullRaw(2))
	if err != nil {
		t.Fatalf("BuildSchemes() error = %v", err)
	}

	for name, want := range map[string]*Scheme{
		"default": schemes.Light,
		"light":   schemes.Light,
		"dark":    schemes.Dark,
	} {
		got, err := schemes.Variant(name)
		if err != nil {
			t.Fatalf("Variant(%q) error = %v", name, err)
		}
		if got != want {
			t.Errorf("Variant(%q) returned the wrong scheme", name)
		}
	}

	if _, err := schemes.Variant("sepia"); err == nil {
		t.Error("Variant(sepia) should fail")
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"light", ThemeLight, false},
		{"DARK", ThemeDark, false},
		{" dark ", ThemeDark, false},
		{"auto", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTheme(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTheme) {
					t.Errorf("ParseTheme(%q) error = %v, want ErrInvalidTheme", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTheme(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTheme(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSchemeJSONRoleOrder(t *testing.T) {
	scheme, err := Assemble(fullRaw(3))
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	data, err := json.Marshal(scheme)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	out := string(data)
	last := -1
	for _, role := range Roles() {
		idx := strings.Index(out, `"`+string(role)+`":`)
		if idx < 0 {
			t.Fatalf("role %q missing from JSON", role)
		}
		if idx < last {
			t.Errorf("role %q serialised out of order", role)
		}
		last = idx
	}
}

func TestTemplateData(t *testing.T) {
	scheme, err := Assemble(fullRaw(7))
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	data := scheme.TemplateData()
	if len(data) != 29 {
		t.Fatalf("TemplateData() has %d roles, want 29", len(data))
	}

	primary, ok := data["primary"].(map[string]any)
	if !ok {
		t.Fatalf("primary has type %T", data["primary"])
	}
	if primary["hex"] != scheme.Primary.Hex {
		t.Errorf("primary.hex = %v, want %s", primary["hex"], scheme.Primary.Hex)
	}
}
