// Package snapshot persists the generated dataset as a JSON array of
// records and checks loaded data against the generation invariants.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spektr-org/skilltrend/catalog"
	"github.com/spektr-org/skilltrend/engine"
)

// ErrUnavailable is returned when the snapshot cannot be read or decoded.
var ErrUnavailable = errors.New("snapshot unavailable")

// DefaultPath is where generate writes and view reads by default.
const DefaultPath = "data/trends.json"

// ============================================================================
// SAVE / LOAD
// ============================================================================

// Save writes records as indented JSON, replacing any existing file.
// The write goes to a temp file in the same directory and is renamed
// into place, so readers never see a partial file.
func Save(path string, records []engine.TrendRecord) error {
	if records == nil {
		records = []engine.TrendRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".trends-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace snapshot %s: %w", path, err)
	}
	return nil
}

// Load reads a snapshot file. Every failure wraps ErrUnavailable.
func Load(path string) ([]engine.TrendRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return Decode(data)
}

// Decode parses snapshot bytes. The payload must be a JSON array; unknown
// record fields are ignored, but negative counts and ids below 1 are
// rejected.
func Decode(data []byte) ([]engine.TrendRecord, error) {
	var records []engine.TrendRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrUnavailable, err)
	}
	if records == nil {
		// "null" decodes without error but is not an array.
		return nil, fmt.Errorf("%w: payload is not a JSON array", ErrUnavailable)
	}
	for i, r := range records {
		if r.ID <= 0 {
			return nil, fmt.Errorf("%w: record %d has id %d", ErrUnavailable, i, r.ID)
		}
		if r.Count < 0 {
			return nil, fmt.Errorf("%w: record %d (id %d) has negative count %d", ErrUnavailable, i, r.ID, r.Count)
		}
	}
	return records, nil
}

// ============================================================================
// VALIDATION
// ============================================================================

type comboKey struct {
	region   string
	year     int
	category string
	skill    string
}

// Validate checks records against what a generation run over cat
// guarantees: counts at or above the floor, ids dense from 1, sort order
// (region, year ascending, count descending) and exactly one record per
// catalog combination. All violations are joined into one error.
func Validate(records []engine.TrendRecord, cat *catalog.Catalog) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	seenIDs := make(map[int]bool, len(records))
	for _, r := range records {
		if r.Count < cat.Floor {
			fail("record %d: count %d below floor %d", r.ID, r.Count, cat.Floor)
		}
		if r.ID < 1 || r.ID > len(records) {
			fail("record %d: id outside 1..%d", r.ID, len(records))
		} else if seenIDs[r.ID] {
			fail("record %d: duplicate id", r.ID)
		}
		seenIDs[r.ID] = true
	}

	for i := 1; i < len(records); i++ {
		if outOfOrder(records[i-1], records[i]) {
			fail("records %d and %d are out of order", records[i-1].ID, records[i].ID)
		}
	}

	expected := make(map[comboKey]bool, cat.Total())
	for _, region := range cat.Regions() {
		for _, year := range cat.Years() {
			for _, c := range cat.Categories() {
				for _, skill := range c.Skills {
					expected[comboKey{region.Name, year, c.Name, skill}] = false
				}
			}
		}
	}
	for _, r := range records {
		k := comboKey{r.Region, r.Year, r.Category, r.Skill}
		seen, ok := expected[k]
		switch {
		case !ok:
			fail("record %d: %s/%d/%s/%s is not in the catalog", r.ID, r.Region, r.Year, r.Category, r.Skill)
		case seen:
			fail("record %d: %s/%d/%s/%s appears twice", r.ID, r.Region, r.Year, r.Category, r.Skill)
		default:
			expected[k] = true
		}
	}
	missing := 0
	for _, seen := range expected {
		if !seen {
			missing++
		}
	}
	if missing > 0 {
		fail("%d catalog combinations have no record", missing)
	}

	return errors.Join(errs...)
}

func outOfOrder(a, b engine.TrendRecord) bool {
	if a.Region != b.Region {
		return a.Region > b.Region
	}
	if a.Year != b.Year {
		return a.Year > b.Year
	}
	return a.Count < b.Count
}
