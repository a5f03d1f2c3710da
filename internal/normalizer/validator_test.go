package normalizer

import (
	"errors"
	"testing"

	"zexplorer/internal/jsonval"
)

func TestNewValidator(t *testing.T) {
	v := NewValidator()
	if v == nil {
		t.Fatal("NewValidator returned nil")
	}
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		input   jsonval.Value
		wantLen int
		wantErr bool
	}{
		{name: "array", input: jsonval.Array(jsonval.Int(1), jsonval.String("x")), wantLen: 2},
		{name: "empty array", input: jsonval.Array(), wantLen: 0},
		{name: "object", input: jsonval.ObjectOf(jsonval.NewObject()), wantErr: true},
		{name: "null", input: jsonval.Null(), wantErr: true},
		{name: "string", input: jsonval.String("[]"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := v.Validate(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInputNotArray) {
					t.Errorf("Validate() error = %v, want ErrInputNotArray", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}

			if len(items) != tt.wantLen {
				t.Errorf("Validate() len = %d, want %d", len(items), tt.wantLen)
			}
		})
	}
}

func TestValidator_ValidateListing(t *testing.T) {
	v := NewValidator()

	full := transformDoc(t, `{"zpid": 1}`).Record()
	if err := v.ValidateListing(full); err != nil {
		t.Errorf("ValidateListing() unexpected error: %v", err)
	}

	partial := full.Clone()
	partial.Delete("walkScore")

	if err := v.ValidateListing(partial); !errors.Is(err, ErrMissingCanonicalKey) {
		t.Errorf("ValidateListing() error = %v, want ErrMissingCanonicalKey", err)
	}
}
