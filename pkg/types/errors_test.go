package types

import (
	"errors"
	"strings"
	"testing"
)

func TestQueryError_CarriesSQLAndWraps(t *testing.T) {
	engine := errors.New("no such table: results-9-9")
	err := &QueryError{SQL: `SELECT * FROM "results-9-9"`, Err: engine}

	if !strings.Contains(err.Error(), "results-9-9") {
		t.Errorf("message should carry the SQL text, got %q", err.Error())
	}
	if !errors.Is(err, engine) {
		t.Error("QueryError should wrap the engine error")
	}
}

func TestConnectionError_CarriesPathAndWraps(t *testing.T) {
	cause := errors.New("permission denied")
	err := &ConnectionError{Path: "/data/experiments.db", Err: cause}

	if !strings.Contains(err.Error(), "/data/experiments.db") {
		t.Errorf("message should carry the path, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("ConnectionError should wrap its cause")
	}
}

func TestInvalidIdentifierError_CarriesName(t *testing.T) {
	err := &InvalidIdentifierError{Name: "drop;table"}
	if !strings.Contains(err.Error(), "drop;table") {
		t.Errorf("message should carry the rejected name, got %q", err.Error())
	}
}
