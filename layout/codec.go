package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Xordas/ScreenX/model"
	"gopkg.in/yaml.v3"
)

// Marshal encodes l in the layout wire shape, with empty slots written as "none".
func Marshal(l model.Layout) ([]byte, error) {
	data, err := json.Marshal(Normalize(l))
	if err != nil {
		return nil, fmt.Errorf("could not encode layout %q: %w", l.Name, err)
	}

	return data, nil
}

// Unmarshal decodes a layout produced by Marshal or by the companion app.
func Unmarshal(data []byte) (model.Layout, error) {
	var l model.Layout

	if err := json.Unmarshal(data, &l); err != nil {
		return model.Layout{}, fmt.Errorf("could not decode layout JSON: %w", err)
	}

	return Normalize(l), nil
}

func Decode(reader io.Reader) (model.Layout, error) {
	decoder := json.NewDecoder(reader)

	var l model.Layout

	if err := decoder.Decode(&l); err != nil {
		return model.Layout{}, fmt.Errorf("could not decode layout JSON: %w", err)
	}

	return Normalize(l), nil
}

func DecodeYAML(reader io.Reader) (model.Layout, error) {
	decoder := yaml.NewDecoder(reader)

	var l model.Layout

	if err := decoder.Decode(&l); err != nil {
		return model.Layout{}, fmt.Errorf("could not decode layout YAML: %w", err)
	}

	return Normalize(l), nil
}

// LoadFile reads a layout from a .json, .yaml or .yml file.
func LoadFile(path string) (model.Layout, error) {
	file, err := OpenPath(path)
	if err != nil {
		return model.Layout{}, err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(file)
	default:
		return Decode(file)
	}
}
