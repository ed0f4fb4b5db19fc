// Package jsonutil reads typed fields out of a JSON object document.
//
// Every accessor fails with an error satisfying errors.Is(err, errors.NotValid)
// when the document is not an object or the field has the wrong type, and
// errors.Is(err, errors.NotFound) when the field is missing.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/juju/errors"
	"golang.org/x/exp/constraints"
)

// Number is any type GetNumber can decode into.
type Number interface {
	constraints.Integer | constraints.Float
}

func lookup(doc []byte, key string, want jsonparser.ValueType) ([]byte, error) {
	trimmed := bytes.TrimLeft(doc, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.NotValidf("document looking up %q: not a JSON object", key)
	}

	value, dataType, _, err := jsonparser.Get(trimmed, key)
	switch {
	case errors.Is(err, jsonparser.KeyPathNotFoundError):
		return nil, errors.NotFoundf("entry %q", key)
	case err != nil:
		return nil, errors.NewNotValid(err, fmt.Sprintf("reading entry %q", key))
	case dataType != want:
		return nil, errors.NotValidf("entry %q: expected %s, got %s", key, want, dataType)
	}

	return value, nil
}

func GetString(doc []byte, key string) (string, error) {
	raw, err := lookup(doc, key, jsonparser.String)
	if err != nil {
		return "", err
	}
	s, err := jsonparser.ParseString(raw)
	if err != nil {
		return "", errors.NotValidf("entry %q: %v", key, err)
	}

	return s, nil
}

// GetObject returns the raw bytes of the object under key, which can be fed
// back into the other accessors.
func GetObject(doc []byte, key string) ([]byte, error) {
	return lookup(doc, key, jsonparser.Object)
}

// GetArray decodes the array under key into a slice of T.
func GetArray[T any](doc []byte, key string) ([]T, error) {
	raw, err := lookup(doc, key, jsonparser.Array)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.NotValidf("entry %q: %v", key, err)
	}

	return out, nil
}

// GetNumber decodes the number under key into T. Fractions for integer
// types and values T cannot hold are rejected.
func GetNumber[T Number](doc []byte, key string) (T, error) {
	raw, err := lookup(doc, key, jsonparser.Number)
	if err != nil {
		return 0, err
	}

	var half T = 1
	half /= 2
	var zero T
	switch {
	case half != 0:
		f, err := jsonparser.ParseFloat(raw)
		if err != nil {
			return 0, errors.NotValidf("entry %q: %v", key, err)
		}
		v := T(f)
		if !math.IsInf(f, 0) && math.IsInf(float64(v), 0) {
			return 0, errors.NotValidf("entry %q: %s out of range", key, raw)
		}
		return v, nil
	case zero-1 > zero:
		u, err := strconv.ParseUint(string(raw), 10, 64)
		if err != nil {
			return 0, errors.NotValidf("entry %q: %s is not an unsigned integer", key, raw)
		}
		v := T(u)
		if uint64(v) != u {
			return 0, errors.NotValidf("entry %q: %s out of range", key, raw)
		}
		return v, nil
	default:
		n, err := jsonparser.ParseInt(raw)
		if err != nil {
			return 0, errors.NotValidf("entry %q: %s is not an integer", key, raw)
		}
		v := T(n)
		if int64(v) != n {
			return 0, errors.NotValidf("entry %q: %s out of range", key, raw)
		}
		return v, nil
	}
}

func GetBoolean(doc []byte, key string) (bool, error) {
	raw, err := lookup(doc, key, jsonparser.Boolean)
	if err != nil {
		return false, err
	}
	b, err := jsonparser.ParseBoolean(raw)
	if err != nil {
		return false, errors.NotValidf("entry %q: %v", key, err)
	}

	return b, nil
}
