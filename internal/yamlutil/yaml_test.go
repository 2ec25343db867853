package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type target struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var got target
	err := Unmarshal([]byte("name: anime\ncount: 3\n"), &got)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got.Name != "anime" || got.Count != 3 {
		t.Errorf("Unmarshal() = %+v", got)
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	var got target
	if err := Unmarshal([]byte("name: x\nextra: y\n"), &got); err != nil {
		t.Errorf("Unmarshal() error: %v", err)
	}
}

func TestUnmarshalStrictRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var got target
	err := UnmarshalStrict([]byte("name: x\nextra: y\n"), &got)
	if err == nil {
		t.Error("UnmarshalStrict() accepted unknown field")
	}
}

func TestUnmarshalValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{name: "nil data", data: nil, dest: &target{}, wantErr: ErrNilData},
		{name: "empty data", data: []byte{}, dest: &target{}, wantErr: ErrNilData},
		{name: "nil destination", data: []byte("a: 1"), dest: nil, wantErr: ErrNilDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := Unmarshal(tt.data, tt.dest); !errors.Is(err, tt.wantErr) {
				t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnmarshalInputTooLarge(t *testing.T) {
	t.Parallel()

	big := []byte("name: " + strings.Repeat("x", MaxInputSize))
	var got target
	if err := Unmarshal(big, &got); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Unmarshal() error = %v, want ErrInputTooLarge", err)
	}
}
