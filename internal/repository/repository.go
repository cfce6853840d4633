// Package repository persists the roster: teams, their players, and the
// reconciled stats snapshot each player carries. Snapshots are stored as
// a JSON column since they are written and read wholesale.
package repository

import "errors"

var ErrNotFound = errors.New("not found")
