package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/defpeek/internal/dataset"
)

// DefaultFileName is looked up in the dataset root when no file is given.
const DefaultFileName = "defpeek.hcl"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Session is the resolved configuration of one inspection session.
type Session struct {
	Root      string
	Dirs      map[string]string
	LogLevel  string
	LogFormat string
}

// Default returns the configuration used when no file exists.
func Default() *Session {
	return &Session{
		Root:      ".",
		Dirs:      map[string]string{},
		LogLevel:  "info",
		LogFormat: "text",
	}
}

type fileModel struct {
	Root        string            `hcl:"root,optional"`
	Collections []collectionBlock `hcl:"collection,block"`
	Log         *logBlock         `hcl:"log,block"`
}

type collectionBlock struct {
	Name string `hcl:"name,label"`
	Dir  string `hcl:"dir"`
}

type logBlock struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Load reads and validates the HCL file at path.
func Load(path string) (*Session, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	s, err := Parse(src, path)
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(s.Root) {
		s.Root = filepath.Join(filepath.Dir(path), s.Root)
	}
	return s, nil
}

// Parse decodes HCL source on top of Default. filename is used in diagnostics.
func Parse(src []byte, filename string) (*Session, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var m fileModel
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &m); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	s := Default()
	if m.Root != "" {
		s.Root = m.Root
	}
	for _, c := range m.Collections {
		if _, dup := s.Dirs[c.Name]; dup {
			return nil, fmt.Errorf("%w: collection %q declared twice", ErrInvalidConfig, c.Name)
		}
		s.Dirs[c.Name] = c.Dir
	}
	if m.Log != nil {
		if m.Log.Level != "" {
			s.LogLevel = m.Log.Level
		}
		if m.Log.Format != "" {
			s.LogFormat = m.Log.Format
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks collection labels and log settings.
func (s *Session) Validate() error {
	var errs []string
	names := make([]string, 0, len(s.Dirs))
	for name := range s.Dirs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		dir := s.Dirs[name]
		if _, ok := dataset.DefaultDirs[name]; !ok {
			errs = append(errs, fmt.Sprintf("unknown collection %q", name))
		}
		if dir == "" {
			errs = append(errs, fmt.Sprintf("collection %q has an empty dir", name))
		}
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log level %q must be 'debug', 'info', 'warn', or 'error'", s.LogLevel))
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log format %q must be 'text' or 'json'", s.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n- %s", ErrInvalidConfig, strings.Join(errs, "\n- "))
	}
	return nil
}

// evalContext exposes the process environment as the env map.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && k != "" {
			vars[k] = cty.StringVal(v)
		}
	}
	env := cty.MapValEmpty(cty.String)
	if len(vars) > 0 {
		env = cty.MapVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
