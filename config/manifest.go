package config

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Manifest は設定ファイルの内容
// 空の項目はデフォルト値を上書きしない
type Manifest struct {
	BaseDir     string   `yaml:"base_dir" json:"base_dir"`
	Files       []string `yaml:"files" json:"files"`
	Output      string   `yaml:"output" json:"output"`
	Compression string   `yaml:"compression" json:"compression"`
}

// LoadManifest は拡張子に応じてYAMLまたはJSON(C)の設定ファイルを読み込む
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return parseYAML(data)
	case ".json", ".jsonc":
		return parseJSON(data)
	default:
		return nil, errors.Wrapf(ErrInvalidConfig, "unsupported config format: %q", ext)
	}
}

func parseYAML(data []byte) (*Manifest, error) {
	m := &Manifest{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to parse YAML config")
	}
	return m, nil
}

func parseJSON(data []byte) (*Manifest, error) {
	m := &Manifest{}
	// コメントと末尾カンマを除去してから標準のデコーダに渡す
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(m); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to parse JSON config")
	}
	return m, nil
}
