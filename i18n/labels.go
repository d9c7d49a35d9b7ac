// Package i18n holds the display-language label tables and number
// formatting. Language selection never changes data, only text.
package i18n

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported display language.
type Lang string

const (
	Turkish Lang = "tr"
	English Lang = "en"

	// Default matches the dashboard's initial language.
	Default = Turkish
)

var (
	supported = []language.Tag{language.Turkish, language.English}
	matcher   = language.NewMatcher(supported)
)

// Valid reports whether l is a supported language.
func (l Lang) Valid() bool {
	return l == Turkish || l == English
}

// Tag returns the BCP 47 tag for l.
func (l Lang) Tag() language.Tag {
	if l == English {
		return language.English
	}
	return language.Turkish
}

// ParseLang maps a user-supplied language ("en", "en-US", "TR") to a
// supported Lang. Unrecognized input falls back to Default.
func ParseLang(s string) Lang {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Default
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default
	}
	if supported[idx] == language.English {
		return English
	}
	return Turkish
}

// Labels is the full label table for one language.
type Labels struct {
	Lang       Lang
	Header     HeaderLabels
	Categories map[string]string
	Stats      StatLabels
	Charts     ChartLabels
	Regions    map[string]string
	Reply      string
}

// HeaderLabels are the page header strings.
type HeaderLabels struct {
	Title    string
	Subtitle string
}

// StatLabels are the summary card labels.
type StatLabels struct {
	AnalyzedJobs  string
	FastestRising string
	TrendVelocity string
	YearlyGrowth  string
	Region        string
	Analyzing     string
}

// ChartLabels are chart and table captions. TopSkills and Total are
// templates with an {n} placeholder; see TopSkillsTitle and TotalLabel.
type ChartLabels struct {
	GrowthTrends   string
	YearlyAnalysis string
	TopSkills      string
	Total          string
	Jobs           string
	Year           string
	Skill          string
	Share          string
}

var tables = map[Lang]Labels{
	Turkish: {
		Lang: Turkish,
		Header: HeaderLabels{
			Title:    "Sektörel Trend Analizi",
			Subtitle: "Yazılım dünyasında en çok talep edilen uzmanlıklar.",
		},
		Categories: map[string]string{
			"all":      "Genel Bakış",
			"Frontend": "Frontend",
			"Backend":  "Backend",
			"Mobile":   "Mobil Geliştirme",
			"DevOps":   "DevOps & Bulut",
			"Test":     "Test / QA",
			"Data":     "Veri & YZ",
			"Database": "Veritabanı",
			"Tools":    "Araçlar & IDE",
			"OS":       "İşletim Sistemleri",
		},
		Stats: StatLabels{
			AnalyzedJobs:  "Analiz Edilen İlan",
			FastestRising: "En Hızlı Yükselen",
			TrendVelocity: "Trend İvmesi",
			YearlyGrowth:  "Yıllık Büyüme",
			Region:        "Bölge",
			Analyzing:     "Hesaplanıyor...",
		},
		Charts: ChartLabels{
			GrowthTrends:   "Büyüme Trendleri",
			YearlyAnalysis: "YILLIK ANALİZ",
			TopSkills:      "İlk {n} Yetenek",
			Total:          "Toplam ({n} yetenek)",
			Jobs:           "İlan",
			Year:           "Yıl",
			Skill:          "Yetenek",
			Share:          "Pay %",
		},
		Regions: map[string]string{
			"Global": "Global",
			"TR":     "Türkiye",
		},
		Reply: "{region} için {period} döneminde {total} ilan analiz edildi. En hızlı yükselen: {fastest} ({rate}). Toplam hacim değişimi: {growth}.",
	},
	English: {
		Lang: English,
		Header: HeaderLabels{
			Title:    "Sector Trend Analysis",
			Subtitle: "Most in-demand specializations in the software world.",
		},
		Categories: map[string]string{
			"all":      "Overview",
			"Frontend": "Frontend",
			"Backend":  "Backend",
			"Mobile":   "Mobile Dev",
			"DevOps":   "DevOps & Cloud",
			"Test":     "Test / QA",
			"Data":     "Data & AI",
			"Database": "Database",
			"Tools":    "Tools & IDE",
			"OS":       "Operating Systems",
		},
		Stats: StatLabels{
			AnalyzedJobs:  "Analyzed Jobs",
			FastestRising: "Fastest Rising",
			TrendVelocity: "Trend Velocity",
			YearlyGrowth:  "Yearly Growth",
			Region:        "Region",
			Analyzing:     "Calculating...",
		},
		Charts: ChartLabels{
			GrowthTrends:   "Growth Trends",
			YearlyAnalysis: "YEARLY ANALYSIS",
			TopSkills:      "Top {n} Skills",
			Total:          "Total ({n} skills)",
			Jobs:           "Jobs",
			Year:           "Year",
			Skill:          "Skill",
			Share:          "Share %",
		},
		Regions: map[string]string{
			"Global": "Global",
			"TR":     "Turkey",
		},
		Reply: "{total} jobs analyzed in {region} for {period}. Fastest rising: {fastest} ({rate}). Total volume change: {growth}.",
	},
}

// For returns the label table for l, falling back to Default.
func For(l Lang) Labels {
	if t, ok := tables[l]; ok {
		return t
	}
	return tables[Default]
}

// Region returns the display name of a region tag, or the tag itself.
func (l Labels) Region(tag string) string {
	if name, ok := l.Regions[tag]; ok {
		return name
	}
	return tag
}

// Category returns the display name of a category, or the name itself.
func (l Labels) Category(name string) string {
	if label, ok := l.Categories[name]; ok {
		return label
	}
	return name
}

// TopSkillsTitle returns the ranked-skills caption for n entries.
func (l Labels) TopSkillsTitle(n int) string {
	return fillCount(l.Charts.TopSkills, n)
}

// TotalLabel returns the summary-row label for a total over n skills.
func (l Labels) TotalLabel(n int) string {
	return fillCount(l.Charts.Total, n)
}

func fillCount(template string, n int) string {
	return strings.ReplaceAll(template, "{n}", strconv.Itoa(n))
}
