// Package store persists named date selections with diskv and reports
// changes made on disk by other processes.
package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/config"
)

// ErrNotFound is returned by Load for a name that was never saved.
var ErrNotFound = errors.New("store: selection not found")

// Config names the directory records are kept in.
type Config interface {
	BasePath() string
}

// Record is a named selection as written to disk. Dates are ISO dates in
// selection order.
type Record struct {
	Name    string    `json:"name"`
	Dates   []string  `json:"dates"`
	Updated time.Time `json:"updated"`
}

// NewRecord builds a record for dates, stamped now.
func NewRecord(name string, dates []caldate.Date) *Record {
	r := &Record{Name: name, Dates: make([]string, 0, len(dates)), Updated: time.Now().UTC()}
	for _, d := range dates {
		r.Dates = append(r.Dates, d.String())
	}
	return r
}

// Selection parses the stored dates.
func (r *Record) Selection() ([]caldate.Date, error) {
	out := make([]caldate.Date, 0, len(r.Dates))
	for _, s := range r.Dates {
		d, err := caldate.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("store: record %q: %w", r.Name, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// Persistence defines the persistence contract for named selections.
type Persistence interface {
	Load(name string) (*Record, error)
	Save(r *Record) error
	Delete(name string) error
	List(ctx context.Context) []*Record
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open creates a Persistence backed by diskv using the provided config. A
// nil config is loaded with config.Load.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      256 * 1024,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*Record, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	r := &Record{}
	if err := json.Unmarshal(val, r); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", key, err)
	}
	if r.Name == "" {
		r.Name = fromName(keyToPathTransform(key).FileName)
	}
	return r, nil
}

func (p *persistence) Load(name string) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("store: selection name required")
	}
	return p.read(toKey(name))
}

func (p *persistence) Save(r *Record) error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("store: selection name required")
	}
	r.Name = name
	if r.Updated.IsZero() {
		r.Updated = time.Now().UTC()
	}
	if r.Dates == nil {
		r.Dates = []string{}
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", name, err)
	}
	if err := p.d.Write(toKey(name), data); err != nil {
		return fmt.Errorf("store: write %q: %w", name, err)
	}
	return nil
}

func (p *persistence) Delete(name string) error {
	err := p.d.Erase(toKey(strings.TrimSpace(name)))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

// List returns every record sorted by name. Unreadable records are skipped.
func (p *persistence) List(ctx context.Context) []*Record {
	all := make([]*Record, 0)
	for key := range p.d.Keys(ctx.Done()) {
		r, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, r)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all
}

const selectionsDir = "selections"

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) == 1 {
		return &diskv.PathKey{FileName: parts[0]}
	}
	return &diskv.PathKey{
		Path:     parts[:1],
		FileName: parts[1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `selections-<name>`
func toKey(name string) string {
	return fmt.Sprintf("%s-%s", selectionsDir, toName(name))
}

func toName(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func fromName(s string) string {
	name, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return ""
	}
	return string(name)
}
