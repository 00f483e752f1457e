package validators

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/ryan-jm/gamecritic/database"
)

// Validation is the single result type every validator reports through.
// Invalid means the input shape is wrong (400), NotFound means the input is
// well-formed but no such row exists (404).
type Validation int

const (
	StatusInvalid Validation = iota
	StatusNotFound
	StatusOK
)

type Validator struct {
	db *database.DB
}

func New(db *database.DB) *Validator {
	return &Validator{db: db}
}

// ValidID reports whether the input is an integer or an integer-coercible
// string. Arrays, objects, NaN and fractional numbers are all rejected.
func (v *Validator) ValidID(input interface{}) bool {
	_, ok := CoerceID(input)
	return ok
}

// CoerceID converts request input (path param string, JSON number, etc.)
// into an int. JSON decodes numbers as float64, so integral floats pass.
func CoerceID(input interface{}) (int, bool) {
	switch id := input.(type) {
	case int:
		return id, true
	case int64:
		return int(id), true
	case float64:
		if math.IsNaN(id) || math.IsInf(id, 0) || id != math.Trunc(id) {
			return 0, false
		}
		return int(id), true
	case json.Number:
		n, err := id.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(id)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Review checks that a review id is well-formed and present in the database.
func (v *Validator) Review(input interface{}) (Validation, error) {
	id, ok := CoerceID(input)
	if !ok || id < 0 {
		return StatusInvalid, nil
	}

	var exists bool
	err := v.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM reviews WHERE review_id = $1)`, id).Scan(&exists)
	if err != nil {
		return StatusInvalid, err
	}
	if !exists {
		return StatusNotFound, nil
	}
	return StatusOK, nil
}

// Comment checks that a comment id is well-formed and present in the database.
func (v *Validator) Comment(input interface{}) (Validation, error) {
	id, ok := CoerceID(input)
	if !ok || id < 0 {
		return StatusInvalid, nil
	}

	var exists bool
	err := v.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM comments WHERE comment_id = $1)`, id).Scan(&exists)
	if err != nil {
		return StatusInvalid, err
	}
	if !exists {
		return StatusNotFound, nil
	}
	return StatusOK, nil
}

// User checks a username. Numeric-coercible strings are rejected outright so
// usernames can never be confused with numeric id lookups.
func (v *Validator) User(input interface{}) (Validation, error) {
	username, ok := input.(string)
	if !ok || username == "" {
		return StatusInvalid, nil
	}
	if _, coercible := CoerceID(username); coercible {
		return StatusInvalid, nil
	}

	var exists bool
	err := v.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return StatusInvalid, err
	}
	if !exists {
		return StatusNotFound, nil
	}
	return StatusOK, nil
}

// Category reports whether a slug exists. Categories are only ever used as an
// existence filter, so a plain boolean is enough here.
func (v *Validator) Category(slug string) (bool, error) {
	if slug == "" {
		return false, nil
	}

	var exists bool
	err := v.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
