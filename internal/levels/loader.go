package levels

import (
	"cmp"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-tiles/internal/levels/formats"
)

//go:embed defaults/*
var defaultLevels embed.FS

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader reading from the directory root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewBuiltinLoader creates a loader over the embedded campaign.
func NewBuiltinLoader() *Loader {
	sub, err := fs.Sub(defaultLevels, "defaults")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded defaults: %v", err))
	}
	return &Loader{Root: "defaults", fsys: sub}
}

// Builtin returns the embedded campaign levels sorted by ID.
func Builtin() ([]Level, error) {
	return NewBuiltinLoader().LoadAll()
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse or validate are skipped.
// Returns levels in natural ID order (level_2 before level_10).
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.load(p)
		if err != nil {
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	slices.SortStableFunc(levels, func(a, b Level) int {
		return CompareIDs(a.ID, b.ID)
	})

	return levels, nil
}

// LoadFile loads and validates a single level file from disk.
func LoadFile(file string) (Level, error) {
	return NewLoader(filepath.Dir(file)).load(filepath.Base(file))
}

// load reads p relative to the loader root.
func (l *Loader) load(p string) (Level, error) {
	display := filepath.Join(l.Root, filepath.FromSlash(p))

	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", display, err)
	}

	parsed, err := formats.Parse(data, strings.ToLower(path.Ext(p)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", display, err)
	}

	level := Level{
		ID:          parsed.ID,
		Name:        parsed.Name,
		Tiles:       parsed.Tiles,
		TargetScore: parsed.TargetScore,
		Moves:       parsed.Moves,
		FilePath:    display,
	}
	if err := level.Validate(); err != nil {
		return Level{}, fmt.Errorf("validating file %s: %w", display, err)
	}

	return level, nil
}

// IndexByID returns the position of the level with the given ID.
func IndexByID(lvls []Level, id string) (int, error) {
	for i, lvl := range lvls {
		if lvl.ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// ListIDs returns all level IDs in campaign order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Load returns the levels from dir, or the embedded campaign when dir is empty.
func Load(dir string) ([]Level, error) {
	if dir == "" {
		return Builtin()
	}
	levels, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no valid level files in %s", dir)
	}
	return levels, nil
}

// CompareIDs orders level IDs with digit runs compared by value, so
// level_2 comes before level_10. IDs equal by value (level_02, level_2)
// fall back to plain string order.
func CompareIDs(a, b string) int {
	if c := compareNatural(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func compareNatural(a, b string) int {
	for a != "" && b != "" {
		da, db := isDigit(a[0]), isDigit(b[0])
		if da && db {
			na, restA := splitDigits(a)
			nb, restB := splitDigits(b)
			// Compare by length after dropping leading zeros, then lexically
			ta, tb := strings.TrimLeft(na, "0"), strings.TrimLeft(nb, "0")
			if c := cmp.Compare(len(ta), len(tb)); c != 0 {
				return c
			}
			if c := strings.Compare(ta, tb); c != 0 {
				return c
			}
			a, b = restA, restB
			continue
		}
		if a[0] != b[0] {
			return cmp.Compare(a[0], b[0])
		}
		a, b = a[1:], b[1:]
	}
	return cmp.Compare(len(a), len(b))
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func splitDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}
