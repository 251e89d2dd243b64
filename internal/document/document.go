// Package document persists theme fragments as JSON files. Edits are applied
// as in-place patches so keys the importer ignores survive a round trip.
package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/alexisbeaulieu97/themeforge/internal/logger"
	"github.com/alexisbeaulieu97/themeforge/internal/theme"
	forgeerrors "github.com/alexisbeaulieu97/themeforge/pkg/errors"
)

const emptyDocument = "{}"

// Document is a theme fragment file held in memory as raw JSON.
type Document struct {
	path string
	log  *logger.Logger

	mu  sync.RWMutex
	raw []byte
}

// Open loads the fragment at path. A missing or blank file yields an empty
// fragment; the file is only created on Save.
func Open(path string, log *logger.Logger) (*Document, error) {
	d := &Document{path: path, log: log, raw: []byte(emptyDocument)}
	if err := d.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return d, nil
}

// FromBytes wraps an in-memory fragment that is not backed by a file.
func FromBytes(data []byte, log *logger.Logger) (*Document, error) {
	d := &Document{log: log}
	if err := d.reset(data, "<memory>"); err != nil {
		return nil, err
	}
	return d, nil
}

// Marshal renders a fragment as indented JSON in token order.
func Marshal(fragment theme.Theme) ([]byte, error) {
	d := &Document{raw: []byte(emptyDocument)}
	if err := d.Apply(fragment); err != nil {
		return nil, err
	}
	return d.Bytes(), nil
}

// Load re-reads the file from disk, discarding unsaved edits.
func (d *Document) Load() error {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return forgeerrors.NewParseError(d.path, 0, err)
	}
	return d.reset(data, d.path)
}

func (d *Document) reset(data []byte, label string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte(emptyDocument)
	}
	if _, _, err := theme.Import(string(data)); err != nil {
		return forgeerrors.NewParseError(label, 0, err)
	}

	d.mu.Lock()
	d.raw = append([]byte(nil), data...)
	d.mu.Unlock()
	return nil
}

// Path returns the backing file path, empty for in-memory documents.
func (d *Document) Path() string {
	return d.path
}

// Theme validates the current text into a fragment and reports dropped keys.
func (d *Document) Theme() (theme.Theme, theme.ImportReport, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return theme.Import(string(d.raw))
}

// Bytes returns the document as indented JSON.
func (d *Document) Bytes() []byte {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return pretty(d.raw)
}

// SetToken writes value for token in mode.
func (d *Document) SetToken(mode theme.Mode, token theme.Token, value string) error {
	return d.patch(func(raw []byte) ([]byte, error) {
		return sjson.SetBytes(raw, tokenPath(mode, token), value)
	})
}

// DeleteToken removes token from mode.
func (d *Document) DeleteToken(mode theme.Mode, token theme.Token) error {
	return d.patch(func(raw []byte) ([]byte, error) {
		return sjson.DeleteBytes(raw, tokenPath(mode, token))
	})
}

// SetFont stores the font identifier; the empty FontID removes it.
func (d *Document) SetFont(id theme.FontID) error {
	return d.patch(func(raw []byte) ([]byte, error) {
		if id == "" {
			return sjson.DeleteBytes(raw, "fontId")
		}
		return sjson.SetBytes(raw, "fontId", string(id))
	})
}

// Apply rewrites the document so that it imports as fragment. Only keys whose
// value differs are touched.
func (d *Document) Apply(fragment theme.Theme) error {
	return d.patch(func(raw []byte) ([]byte, error) {
		current, _, err := theme.Import(string(raw))
		if err != nil {
			return nil, err
		}

		for _, mode := range theme.Modes() {
			want, have := fragment.Tokens(mode), current.Tokens(mode)
			for _, token := range theme.Tokens() {
				next, keep := want[token]
				prev, had := have[token]
				switch {
				case keep && (!had || next != prev):
					raw, err = sjson.SetBytes(raw, tokenPath(mode, token), next)
				case !keep && had:
					raw, err = sjson.DeleteBytes(raw, tokenPath(mode, token))
				}
				if err != nil {
					return nil, err
				}
			}
		}

		if fragment.FontID != current.FontID {
			if fragment.FontID == "" {
				raw, err = sjson.DeleteBytes(raw, "fontId")
			} else {
				raw, err = sjson.SetBytes(raw, "fontId", string(fragment.FontID))
			}
			if err != nil {
				return nil, err
			}
		}

		return patchBranding(raw, fragment.Branding)
	})
}

// Save writes the document atomically through a temporary file.
func (d *Document) Save() error {
	if d.path == "" {
		return forgeerrors.NewWriteError("", fmt.Errorf("document has no backing file"))
	}

	data := d.Bytes()

	if err := os.MkdirAll(filepath.Dir(d.path), 0o755); err != nil {
		return forgeerrors.NewWriteError(d.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(d.path), "."+filepath.Base(d.path)+".*.tmp")
	if err != nil {
		return forgeerrors.NewWriteError(d.path, err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return forgeerrors.NewWriteError(d.path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return forgeerrors.NewWriteError(d.path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return forgeerrors.NewWriteError(d.path, err)
	}
	if err := os.Rename(tmpPath, d.path); err != nil {
		_ = os.Remove(tmpPath)
		return forgeerrors.NewWriteError(d.path, err)
	}

	d.log.Debug("theme document saved", map[string]any{"path": d.path, "bytes": len(data)})
	return nil
}

// patch runs fn against a shaped copy of the text and commits the result only
// when fn succeeds.
func (d *Document) patch(fn func([]byte) ([]byte, error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	shaped, err := d.shaped(append([]byte(nil), d.raw...))
	if err != nil {
		return err
	}
	next, err := fn(shaped)
	if err != nil {
		return fmt.Errorf("patch theme document: %w", err)
	}
	d.raw = next
	return nil
}

// shaped converts a flat light-mode document into the light/dark layout and
// replaces mode values that are not objects, so token paths always resolve.
func (d *Document) shaped(raw []byte) ([]byte, error) {
	raw, err := collapseDuplicates(raw, "")
	if err != nil {
		return nil, err
	}
	root := gjson.ParseBytes(raw)
	hasModes := root.Get("light").Exists() || root.Get("dark").Exists()

	if !hasModes {
		var moved []string
		root.ForEach(func(key, value gjson.Result) bool {
			if _, ok := theme.ParseToken(key.Str); !ok {
				return true
			}
			if raw, err = sjson.SetRawBytes(raw, "light."+key.Str, []byte(value.Raw)); err != nil {
				return false
			}
			if raw, err = sjson.DeleteBytes(raw, key.Str); err != nil {
				return false
			}
			moved = append(moved, key.Str)
			return true
		})
		if err != nil {
			return nil, err
		}
		if len(moved) > 0 {
			d.log.Info("converted flat theme document to light/dark layout", map[string]any{"path": d.path, "tokens": len(moved)})
		}
	}

	for _, mode := range theme.Modes() {
		value := gjson.GetBytes(raw, string(mode))
		if value.Exists() && !value.IsObject() {
			d.log.Warn("replacing non-object mode value", map[string]any{"path": d.path, "mode": string(mode)})
			if raw, err = sjson.SetRawBytes(raw, string(mode), []byte(emptyDocument)); err != nil {
				return nil, err
			}
		}
	}

	for _, path := range []string{"light", "dark", "branding"} {
		if raw, err = collapseDuplicates(raw, path); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

// collapseDuplicates rewrites the object at path so every key appears once,
// holding its last value. That is the value the importer reads, and sjson
// only patches the first occurrence. The empty path names the root.
func collapseDuplicates(raw []byte, path string) ([]byte, error) {
	obj := gjson.ParseBytes(raw)
	if path != "" {
		obj = obj.Get(path)
	}
	if !obj.IsObject() {
		return raw, nil
	}

	var order []string
	keys := map[string]string{}
	values := map[string]string{}
	members := 0
	obj.ForEach(func(key, value gjson.Result) bool {
		members++
		if _, seen := values[key.Str]; !seen {
			order = append(order, key.Str)
			keys[key.Str] = key.Raw
		}
		values[key.Str] = value.Raw
		return true
	})
	if members == len(order) {
		return raw, nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(keys[key])
		buf.WriteByte(':')
		buf.WriteString(values[key])
	}
	buf.WriteByte('}')

	if path == "" {
		return buf.Bytes(), nil
	}
	return sjson.SetRawBytes(raw, path, buf.Bytes())
}

func patchBranding(raw []byte, b theme.Branding) ([]byte, error) {
	if value := gjson.GetBytes(raw, "branding"); value.Exists() && !value.IsObject() {
		var err error
		if raw, err = sjson.SetRawBytes(raw, "branding", []byte(emptyDocument)); err != nil {
			return nil, err
		}
	}

	fields := []struct {
		key   string
		value any
	}{
		{"logoUrl", derefOrNil(b.LogoURL)},
		{"logoAlt", derefOrNil(b.LogoAlt)},
		{"logoWidth", derefOrNil(b.LogoWidth)},
		{"logoHeight", derefOrNil(b.LogoHeight)},
	}

	var err error
	for _, f := range fields {
		path := "branding." + f.key
		if f.value == nil {
			raw, err = sjson.DeleteBytes(raw, path)
		} else {
			raw, err = sjson.SetBytes(raw, path, f.value)
		}
		if err != nil {
			return nil, err
		}
	}

	if branding := gjson.GetBytes(raw, "branding"); branding.IsObject() && len(branding.Map()) == 0 {
		return sjson.DeleteBytes(raw, "branding")
	}
	return raw, nil
}

func derefOrNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func tokenPath(mode theme.Mode, token theme.Token) string {
	return string(mode) + "." + token.String()
}

func pretty(raw []byte) []byte {
	out := gjson.GetBytes(raw, "@pretty").Raw
	if out == "" {
		return append([]byte(nil), raw...)
	}
	return []byte(out)
}
