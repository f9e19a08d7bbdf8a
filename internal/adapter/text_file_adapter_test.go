package adapter

import (
	"testing"

	m "mlirutils.dev/pkg/mlirutils/internal/model"
)

func TestLocalTextFileAdapter_Decode(t *testing.T) {
	adapter := NewLocalTextFileAdapter()

	tests := []struct {
		name   string
		data   []byte
		wantOK bool
	}{
		{"plain text", []byte("class StandaloneDialect {}\n"), true},
		{"empty file", []byte{}, true},
		{"utf8 text", []byte("// Ünïcödé comment\n"), true},
		{"invalid utf8", []byte{0xff, 0xfe, 0xfd, 'a'}, false},
		{"nul bytes", []byte("Standalone\x00\x00\x00binary"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := adapter.Decode(m.Path("file"), tt.data)
			if ok != tt.wantOK {
				t.Fatalf("Decode() ok = %v, want %v", ok, tt.wantOK)
			}

			if ok && got != string(tt.data) {
				t.Fatalf("Decode() = %q, want %q", got, string(tt.data))
			}
		})
	}
}

func TestLocalTextFileAdapter_Language(t *testing.T) {
	adapter := NewLocalTextFileAdapter()

	got := adapter.Language(m.Path("lib/main.go"), []byte("package main\n\nfunc main() {}\n"))
	if got != "Go" {
		t.Fatalf("Language() = %q, want Go", got)
	}
}
