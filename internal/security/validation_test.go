package security

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestValidateHTTPURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https public", "https://example.com/wall.png", false},
		{"empty", "", true},
		{"plain http", "http://example.com/wall.png", true},
		{"file scheme", "file:///etc/passwd", true},
		{"no host", "https:///wall.png", true},
		{"localhost", "https://localhost/wall.png", true},
		{"loopback", "https://127.0.0.1/wall.png", true},
		{"private", "https://192.168.1.10/wall.png", true},
		{"private 172", "https://172.20.0.1/wall.png", true},
		{"link local", "https://169.254.169.254/latest", true},
		{"ipv6 loopback", "https://[::1]/wall.png", true},
		{"public ip", "https://93.184.216.34/wall.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHTTPURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHTTPURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestLimitedReader(t *testing.T) {
	r := NewLimitedReader(strings.NewReader("hello world"), 5)
	data, err := io.ReadAll(r)
	if !errors.Is(err, ErrSizeLimit) {
		t.Fatalf("ReadAll() error = %v, want ErrSizeLimit", err)
	}
	if string(data) != "hello" {
		t.Errorf("ReadAll() = %q, want %q", data, "hello")
	}
}

func TestLimitedReaderWithinBudget(t *testing.T) {
	r := NewLimitedReader(strings.NewReader("hi"), 5)
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(data) != "hi" {
		t.Errorf("ReadAll() = %q, want %q", data, "hi")
	}
}
