package sqlite

import (
	"errors"
	"testing"

	"github.com/mesh-intelligence/labdb/pkg/types"
)

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"result table name", "results-1-5", true},
		{"fixed table name", "experiments", true},
		{"underscored", "run_timestamp", true},
		{"digits only", "123", true},
		{"empty", "", false},
		{"space", "bad name!", false},
		{"semicolon", "drop;table", false},
		{"quote", `res"ults`, false},
		{"sql comment", "x--", true}, // hyphens are allowed characters
		{"parenthesis", "t(1)", false},
		{"unicode", "таблица", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateIdentifier(tt.input)
			if tt.valid {
				if err != nil {
					t.Fatalf("ValidateIdentifier(%q) failed: %v", tt.input, err)
				}
				if got != tt.input {
					t.Errorf("ValidateIdentifier(%q) = %q, want input unchanged", tt.input, got)
				}
				return
			}

			var idErr *types.InvalidIdentifierError
			if !errors.As(err, &idErr) {
				t.Fatalf("ValidateIdentifier(%q): expected *InvalidIdentifierError, got %v", tt.input, err)
			}
			if idErr.Name != tt.input {
				t.Errorf("InvalidIdentifierError.Name = %q, want %q", idErr.Name, tt.input)
			}
		})
	}
}

func TestQuoteIdentifier(t *testing.T) {
	if got := QuoteIdentifier("results-1-5"); got != `"results-1-5"` {
		t.Errorf(`QuoteIdentifier("results-1-5") = %s`, got)
	}
}
