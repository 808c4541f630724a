package backend

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestRegistryResolveMaterial(t *testing.T) {
	b, err := NewRegistry().Resolve("material")
	if err != nil {
		t.Fatalf("Resolve(material) error = %v", err)
	}
	if b.Name() != MaterialName {
		t.Errorf("Name() = %q, want %q", b.Name(), MaterialName)
	}
}

func TestRegistryResolveUnknown(t *testing.T) {
	_, err := NewRegistry().Resolve("doesNotExist")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("Resolve() error = %v, want ErrUnknownBackend", err)
	}
	if !strings.Contains(err.Error(), "doesNotExist") {
		t.Errorf("error %q does not name the backend", err)
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry(WithLogger(hclog.NewNullLogger()))
	r.Register("custom", func(hclog.Logger) (Backend, error) {
		return NewMaterial(), nil
	})
	r.Register("broken", func(hclog.Logger) (Backend, error) {
		return nil, errors.New("no binary")
	})

	if got := r.Names(); !slices.Equal(got, []string{"broken", "custom", "material"}) {
		t.Errorf("Names() = %v", got)
	}
	if _, err := r.Resolve("custom"); err != nil {
		t.Errorf("Resolve(custom) error = %v", err)
	}
	if _, err := r.Resolve("broken"); err == nil || !strings.Contains(err.Error(), "no binary") {
		t.Errorf("Resolve(broken) error = %v, want factory error", err)
	}
}

func TestRegistryResolveReturnsFreshBackends(t *testing.T) {
	r := NewRegistry()
	a, _ := r.Resolve("material")
	b, _ := r.Resolve("material")

	a.Configure(Config{Stride: 7})
	if b.(*Material).Config().Stride != DefaultStride {
		t.Error("configuring one resolved backend changed another")
	}
}
