package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formlab/pkg/userform"
)

var ErrUnsupportedFormat = errors.New("unsupported record file format")

// loadRecord reads a record file and runs it through the same structural
// schema as the JSON API, so a file is malformed here exactly when the server
// would answer 400.
func loadRecord(schema *userform.Schema, path string) (userform.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return userform.Record{}, fmt.Errorf("read record file: %w", err)
	}

	var body []byte
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		body = raw
	case ".yaml", ".yml":
		var m map[string]any
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return userform.Record{}, fmt.Errorf("%w: %s: %v", userform.ErrMalformedRecord, path, err)
		}
		if body, err = marshalDecoded(m); err != nil {
			return userform.Record{}, fmt.Errorf("%w: %s: %v", userform.ErrMalformedRecord, path, err)
		}
	case ".toml":
		var m map[string]any
		if _, err := toml.Decode(string(raw), &m); err != nil {
			return userform.Record{}, fmt.Errorf("%w: %s: %v", userform.ErrMalformedRecord, path, err)
		}
		if body, err = marshalDecoded(m); err != nil {
			return userform.Record{}, fmt.Errorf("%w: %s: %v", userform.ErrMalformedRecord, path, err)
		}
	default:
		return userform.Record{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return schema.Decode(body)
}

// marshalDecoded turns a YAML or TOML document into a JSON body. Both formats
// read an unquoted phone number as a number, so numeric phone values are
// written back as their digits. A leading "+" or zero is lost that way; quote
// such numbers in the file.
func marshalDecoded(m map[string]any) ([]byte, error) {
	key := userform.FieldPhone.String()
	switch v := m[key].(type) {
	case int:
		m[key] = strconv.Itoa(v)
	case int64:
		m[key] = strconv.FormatInt(v, 10)
	case uint64:
		m[key] = strconv.FormatUint(v, 10)
	case float64:
		m[key] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return json.Marshal(m)
}
