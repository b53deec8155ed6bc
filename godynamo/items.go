package godynamo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"
)

// ItemSource supplies the records for PutItems and DeleteItems. For deletes
// each record holds only the key attributes.
type ItemSource interface {
	Load(fs billy.Basic) ([]any, error)
}

// ItemList is an in-memory list of records. Records may be structs or maps;
// they are marshaled with attributevalue.MarshalMap.
type ItemList []any

func (l ItemList) Load(billy.Basic) ([]any, error) {
	return l, nil
}

// ItemsFile is the path of a file holding an array of records, either JSON
// (.json) or YAML (.yaml, .yml).
type ItemsFile string

func (f ItemsFile) Load(fs billy.Basic) ([]any, error) {
	var records []map[string]any
	if err := decodeFile(fs, string(f), &records); err != nil {
		return nil, err
	}

	items := make([]any, 0, len(records))
	for _, r := range records {
		items = append(items, exactNumbers(r))
	}
	return items, nil
}

// exactNumbers replaces every json.Number in v with an attributevalue.Number so
// integers beyond float64 precision reach DynamoDB unchanged.
func exactNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		return attributevalue.Number(t)
	case map[string]any:
		for k, e := range t {
			t[k] = exactNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = exactNumbers(e)
		}
		return t
	default:
		return v
	}
}

// LoadSchema reads a table schema, a list of SchemaField, from a JSON or YAML file.
func LoadSchema(path string) ([]SchemaField, error) {
	return LoadSchemaFS(osfs.New(""), path)
}

func LoadSchemaFS(fs billy.Basic, path string) ([]SchemaField, error) {
	var schema []SchemaField
	if err := decodeFile(fs, path, &schema); err != nil {
		return nil, err
	}
	return schema, nil
}

func decodeFile(fs billy.Basic, path string, v any) error {
	data, err := util.ReadFile(fs, path)
	if err != nil {
		return NewItemSourceError(path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		err = fmt.Errorf("unsupported file type %q", ext)
	}
	if err != nil {
		return NewItemSourceError(path, err)
	}
	return nil
}
