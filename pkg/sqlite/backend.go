// Package sqlite provides the public constructor for the SQLite-backed
// experiment database while keeping implementation details internal.
package sqlite

import (
	"github.com/mesh-intelligence/labdb/internal/sqlite"
	"github.com/mesh-intelligence/labdb/pkg/types"
)

// Open opens the experiment database at path, creating an empty store if
// the file does not yet exist. The caller owns the returned handle and
// must Close it.
//
// Example:
//
//	db, err := sqlite.Open("experiments.db")
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//	runs, err := db.AllRuns(20)
func Open(path string) (types.Database, error) {
	return sqlite.Open(path)
}
