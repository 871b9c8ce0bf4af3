package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/julianstephens/daynotes/internal/constants"
)

// DetectKind picks a backend from the path: .json files use the JSON
// backend, paths without an extension are diskv directories and anything
// else is a SQLite database.
func DetectKind(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return constants.BackendJSON
	case "":
		return constants.BackendDiskv
	default:
		return constants.BackendSQLite
	}
}

// Open returns an unopened backend of the given kind for path. Kind "auto"
// or "" defers to DetectKind.
func Open(path, kind string) (Backend, error) {
	if kind == "" || kind == constants.BackendAuto {
		kind = DetectKind(path)
	}
	switch kind {
	case constants.BackendSQLite:
		return NewSQLiteBackend(path), nil
	case constants.BackendDiskv:
		return NewDiskvBackend(path), nil
	case constants.BackendJSON:
		return NewJSONBackend(path), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}
