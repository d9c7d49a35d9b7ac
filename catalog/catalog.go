package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// CATALOG — Static tables that drive synthetic record generation
// ============================================================================
// The catalog is configuration data, not logic: categories and their skills,
// supported years and regions, the popular set, growth buckets and the
// per-skill bias table for the biased region. The generator only reads it.
// ============================================================================

//go:embed catalog.yaml
var defaultYAML []byte

// ErrInvalid is returned when a catalog fails validation.
var ErrInvalid = errors.New("invalid catalog")

// Catalog is the full static configuration. Treat as read-only after Parse.
type Catalog struct {
	YearList     []int              `yaml:"years" json:"years"`
	RegionList   []Region           `yaml:"regions" json:"regions"`
	CategoryList []Category         `yaml:"categories" json:"categories"`
	Base         BaseRanges         `yaml:"base" json:"base"`
	Popular      []string           `yaml:"popular" json:"popular"`
	Growth       GrowthConfig       `yaml:"growth" json:"growth"`
	Noise        float64            `yaml:"noise" json:"noise"`
	Floor        int                `yaml:"floor" json:"floor"`
	BiasTable    map[string]float64 `yaml:"bias" json:"bias"`

	popularSet map[string]bool
	bucketOf   map[string]int
	categories map[string]bool
}

// Region is a supported region tag. At most one region is biased.
type Region struct {
	Name   string `yaml:"name" json:"name"`
	Biased bool   `yaml:"biased,omitempty" json:"biased,omitempty"`
}

// Category names a skill grouping with its ordered skill list.
type Category struct {
	Name   string   `yaml:"name" json:"name"`
	Skills []string `yaml:"skills" json:"skills"`
}

// Range is an inclusive integer range.
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// BaseRanges holds the base count ranges for popular and other skills.
type BaseRanges struct {
	Popular Range `yaml:"popular" json:"popular"`
	Normal  Range `yaml:"normal" json:"normal"`
}

// GrowthConfig lists the named growth buckets in match order.
type GrowthConfig struct {
	Buckets []GrowthBucket `yaml:"buckets" json:"buckets"`
	Default GrowthBucket   `yaml:"default" json:"default"`
}

// GrowthBucket is a per-year growth rate shared by a set of skills.
// Declining buckets subtract the rate instead of adding it.
type GrowthBucket struct {
	Name      string   `yaml:"name" json:"name"`
	Rate      float64  `yaml:"rate" json:"rate"`
	Declining bool     `yaml:"declining,omitempty" json:"declining,omitempty"`
	Skills    []string `yaml:"skills,omitempty" json:"skills,omitempty"`
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the embedded catalog. It panics if the embedded file is
// broken, which is a build defect rather than a runtime condition.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded catalog: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog, validates it and builds lookup indexes.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.index()
	return &c, nil
}

// Validate checks structural constraints the generator relies on.
func (c *Catalog) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if len(c.CategoryList) == 0 {
		fail("no categories")
	}
	seenCat := make(map[string]bool)
	for _, cat := range c.CategoryList {
		if cat.Name == "" {
			fail("category with empty name")
		}
		if seenCat[cat.Name] {
			fail("duplicate category %q", cat.Name)
		}
		seenCat[cat.Name] = true
		if len(cat.Skills) == 0 {
			fail("category %q has no skills", cat.Name)
		}
		seenSkill := make(map[string]bool)
		for _, s := range cat.Skills {
			if seenSkill[s] {
				fail("category %q lists %q twice", cat.Name, s)
			}
			seenSkill[s] = true
		}
	}

	if len(c.YearList) == 0 {
		fail("no years")
	}
	for i := 1; i < len(c.YearList); i++ {
		if c.YearList[i] <= c.YearList[i-1] {
			fail("years must be strictly ascending (%d after %d)", c.YearList[i], c.YearList[i-1])
		}
	}

	if len(c.RegionList) == 0 {
		fail("no regions")
	}
	biased := 0
	seenRegion := make(map[string]bool)
	for _, r := range c.RegionList {
		if r.Name == "" {
			fail("region with empty name")
		}
		if seenRegion[r.Name] {
			fail("duplicate region %q", r.Name)
		}
		seenRegion[r.Name] = true
		if r.Biased {
			biased++
		}
	}
	if biased > 1 {
		fail("%d biased regions, at most one allowed", biased)
	}

	checkRange := func(name string, r Range) {
		if r.Min < 0 || r.Min > r.Max {
			fail("base range %s [%d,%d] is invalid", name, r.Min, r.Max)
		}
	}
	checkRange("popular", c.Base.Popular)
	checkRange("normal", c.Base.Normal)
	if c.Noise < 0 || c.Noise >= 1 {
		fail("noise band %.2f must be in [0,1)", c.Noise)
	}
	if c.Floor < 0 {
		fail("floor %d must not be negative", c.Floor)
	}
	for skill, m := range c.BiasTable {
		if m <= 0 {
			fail("bias for %q must be positive, got %v", skill, m)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

func (c *Catalog) index() {
	c.popularSet = make(map[string]bool, len(c.Popular))
	for _, s := range c.Popular {
		c.popularSet[s] = true
	}
	c.bucketOf = make(map[string]int)
	for i, b := range c.Growth.Buckets {
		for _, s := range b.Skills {
			if _, taken := c.bucketOf[s]; !taken {
				c.bucketOf[s] = i
			}
		}
	}
	c.categories = make(map[string]bool, len(c.CategoryList))
	for _, cat := range c.CategoryList {
		c.categories[strings.ToLower(cat.Name)] = true
	}
}

// ============================================================================
// LOOKUPS
// ============================================================================

// Categories returns the categories in enumeration order.
func (c *Catalog) Categories() []Category { return c.CategoryList }

// Years returns the supported years, ascending.
func (c *Catalog) Years() []int { return c.YearList }

// Regions returns the supported regions in enumeration order.
func (c *Catalog) Regions() []Region { return c.RegionList }

// RegionNames returns the region tags in enumeration order.
func (c *Catalog) RegionNames() []string {
	names := make([]string, len(c.RegionList))
	for i, r := range c.RegionList {
		names[i] = r.Name
	}
	return names
}

// FirstYear returns the earliest supported year.
func (c *Catalog) FirstYear() int { return c.YearList[0] }

// LatestYear returns the most recent supported year.
func (c *Catalog) LatestYear() int { return c.YearList[len(c.YearList)-1] }

// HasCategory reports whether name is a catalog category, ignoring case and
// surrounding space the way view filters do.
func (c *Catalog) HasCategory(name string) bool {
	return c.categories[strings.ToLower(strings.TrimSpace(name))]
}

// IsPopular reports whether a skill gets the popular base range.
func (c *Catalog) IsPopular(skill string) bool { return c.popularSet[skill] }

// BaseRange returns the inclusive base count range for a skill.
func (c *Catalog) BaseRange(skill string) Range {
	if c.IsPopular(skill) {
		return c.Base.Popular
	}
	return c.Base.Normal
}

// Bucket returns the growth bucket a skill falls into.
func (c *Catalog) Bucket(skill string) GrowthBucket {
	if i, ok := c.bucketOf[skill]; ok {
		return c.Growth.Buckets[i]
	}
	return c.Growth.Default
}

// GrowthFactor returns 1 ± yearOffset × rate for a skill's bucket.
func (c *Catalog) GrowthFactor(skill string, year int) float64 {
	b := c.Bucket(skill)
	offset := float64(year - c.FirstYear())
	if b.Declining {
		return 1 - offset*b.Rate
	}
	return 1 + offset*b.Rate
}

// Bias returns the growth multiplier for a skill in a region.
// Unbiased regions and skills missing from the table get 1.0.
func (c *Catalog) Bias(region, skill string) float64 {
	if !c.IsBiased(region) {
		return 1.0
	}
	if m, ok := c.BiasTable[skill]; ok {
		return m
	}
	return 1.0
}

// IsBiased reports whether region is the biased region.
func (c *Catalog) IsBiased(region string) bool {
	for _, r := range c.RegionList {
		if r.Name == region {
			return r.Biased
		}
	}
	return false
}

// Size returns the number of (category, skill) entries per region-year.
func (c *Catalog) Size() int {
	n := 0
	for _, cat := range c.CategoryList {
		n += len(cat.Skills)
	}
	return n
}

// Total returns the number of records a full generation run produces.
func (c *Catalog) Total() int {
	return c.Size() * len(c.YearList) * len(c.RegionList)
}
