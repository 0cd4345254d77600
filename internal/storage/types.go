package storage

import (
	"fmt"
	"strings"
)

// Type names a backend the crawler can write into.
type Type string

const (
	PG     Type = "pg"
	SQLite Type = "sqlite"
)

var Types = []Type{PG, SQLite}

// ParseType accepts the STORAGE_TYPE spellings, case-insensitively.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case PG, SQLite:
		return t, nil
	case "postgres", "postgresql":
		return PG, nil
	default:
		return "", fmt.Errorf("unsupported storage type %q, expected one of %v", s, Types)
	}
}
