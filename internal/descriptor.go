package internal

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var utf8BOM = []byte("\xef\xbb\xbf")

type descriptorMeta struct {
	Image string `json:"image" yaml:"image"`
	Size  struct {
		W int `json:"w" yaml:"w"`
		H int `json:"h" yaml:"h"`
	} `json:"size" yaml:"size"`
	FrameTags *[]frameTag `json:"frameTags" yaml:"frameTags"`
}

type frameTag struct {
	Name *string `json:"name" yaml:"name"`
	From *int    `json:"from" yaml:"from"`
	To   *int    `json:"to" yaml:"to"`
}

type frameEntry struct {
	Frame    *frameRect `json:"frame" yaml:"frame"`
	Duration *int       `json:"duration" yaml:"duration"`
}

type frameRect struct {
	X *int `json:"x" yaml:"x"`
	Y *int `json:"y" yaml:"y"`
	W *int `json:"w" yaml:"w"`
	H *int `json:"h" yaml:"h"`
}

type jsonDescriptor struct {
	Meta   *descriptorMeta `json:"meta"`
	Frames json.RawMessage `json:"frames"`
}

type yamlDescriptor struct {
	Meta   *descriptorMeta `yaml:"meta"`
	Frames yaml.Node       `yaml:"frames"`
}

// decodeDescriptor reads the meta section and the frame entries in export
// order. Frames may be a list or a map from frame name to frame.
func decodeDescriptor(path string, data []byte) (*descriptorMeta, []frameEntry, error) {
	var (
		meta    *descriptorMeta
		entries []frameEntry
		err     error
	)
	if isJSON(path, data) {
		meta, entries, err = decodeJSON(path, bytes.TrimPrefix(data, utf8BOM))
	} else {
		meta, entries, err = decodeYAML(path, data)
	}
	if err != nil {
		return nil, nil, err
	}

	if meta == nil {
		return nil, nil, malformed(path, "missing meta")
	}
	if meta.FrameTags == nil {
		return nil, nil, malformed(path, "missing meta.frameTags")
	}
	return meta, entries, nil
}

// isJSON picks the decoder by extension; unknown extensions are sniffed.
func isJSON(path string, data []byte) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return true
	case ".yaml", ".yml":
		return false
	}
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func decodeJSON(path string, data []byte) (*descriptorMeta, []frameEntry, error) {
	var desc jsonDescriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, nil, malformed(path, "parse: %v", err)
	}
	if desc.Meta == nil {
		return nil, nil, nil
	}

	raw := bytes.TrimSpace(desc.Frames)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil, malformed(path, "missing frames")
	}

	var items []json.RawMessage
	switch raw[0] {
	case '[':
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, nil, malformed(path, "frames: %v", err)
		}
	case '{':
		dec := json.NewDecoder(bytes.NewReader(raw))
		if _, err := dec.Token(); err != nil {
			return nil, nil, malformed(path, "frames: %v", err)
		}
		for dec.More() {
			if _, err := dec.Token(); err != nil {
				return nil, nil, malformed(path, "frames: %v", err)
			}
			var item json.RawMessage
			if err := dec.Decode(&item); err != nil {
				return nil, nil, malformed(path, "frames: %v", err)
			}
			items = append(items, item)
		}
	default:
		return nil, nil, malformed(path, "frames must be a list or a map")
	}

	entries := make([]frameEntry, len(items))
	for i, item := range items {
		if err := json.Unmarshal(item, &entries[i]); err != nil {
			return nil, nil, malformed(path, "frames[%d]: %v", i, err)
		}
	}
	return desc.Meta, entries, nil
}

func decodeYAML(path string, data []byte) (*descriptorMeta, []frameEntry, error) {
	var desc yamlDescriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, nil, malformed(path, "parse: %v", err)
	}
	if desc.Meta == nil {
		return nil, nil, nil
	}

	var items []*yaml.Node
	switch desc.Frames.Kind {
	case 0:
		return nil, nil, malformed(path, "missing frames")
	case yaml.SequenceNode:
		items = desc.Frames.Content
	case yaml.MappingNode:
		for i := 1; i < len(desc.Frames.Content); i += 2 {
			items = append(items, desc.Frames.Content[i])
		}
	default:
		return nil, nil, malformed(path, "frames must be a list or a map")
	}

	entries := make([]frameEntry, len(items))
	for i, item := range items {
		if err := item.Decode(&entries[i]); err != nil {
			return nil, nil, malformed(path, "frames[%d]: %v", i, err)
		}
	}
	return desc.Meta, entries, nil
}
