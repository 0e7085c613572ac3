package analysis

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTablesYAML []byte

// AmountTier awards Points to expenses strictly above Above.
type AmountTier struct {
	Above  float64 `yaml:"above"`
	Points float64 `yaml:"points"`
}

// SeverityWeights are the tuning constants of the personal expense score.
type SeverityWeights struct {
	AmountTiers            []AmountTier `yaml:"amount_tiers"`
	KeywordPoints          float64      `yaml:"keyword_points"`
	KeywordCap             float64      `yaml:"keyword_cap"`
	CategoryMismatchPoints float64      `yaml:"category_mismatch_points"`
	LuxuryVendorPoints     float64      `yaml:"luxury_vendor_points"`
	WeekendPoints          float64      `yaml:"weekend_points"`
	WeekendMinAmount       float64      `yaml:"weekend_min_amount"`
	HighThreshold          float64      `yaml:"high_threshold"`
	MediumThreshold        float64      `yaml:"medium_threshold"`
}

type categoryRule struct {
	Name     string   `yaml:"name"`
	Mismatch []string `yaml:"mismatch"`
}

type vendorRule struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

type tablesFile struct {
	PersonalKeywords     []string        `yaml:"personal_keywords"`
	SuspiciousCategories []categoryRule  `yaml:"suspicious_categories"`
	LuxuryVendors        []vendorRule    `yaml:"luxury_vendors"`
	DragnetKeywords      []string        `yaml:"dragnet_keywords"`
	WeekendExclusions    []string        `yaml:"weekend_exclusions"`
	KeywordExceptions    []string        `yaml:"keyword_exceptions"`
	Severity             SeverityWeights `yaml:"severity"`
}

type luxuryVendor struct {
	name string
	re   *regexp.Regexp
}

// Tables is the compiled reference data used by the detector and the dragnet.
// A Tables value is read-only after construction.
type Tables struct {
	personal          []string
	categories        map[string][]string
	vendors           []luxuryVendor
	dragnet           []string
	weekendExclusions []string
	exceptions        []string
	Severity          SeverityWeights
}

var defaultTables = mustParseTables(defaultTablesYAML)

// DefaultTables returns the built-in keyword and pattern tables.
func DefaultTables() *Tables {
	return defaultTables
}

// LoadTables reads a YAML override of the reference tables from path.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}
	return ParseTables(data)
}

// ParseTables compiles a YAML tables document.
func ParseTables(data []byte) (*Tables, error) {
	var file tablesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tables: %w", err)
	}

	t := &Tables{
		personal:          normalizeKeywords(file.PersonalKeywords),
		categories:        make(map[string][]string, len(file.SuspiciousCategories)),
		dragnet:           normalizeKeywords(file.DragnetKeywords),
		weekendExclusions: normalizeKeywords(file.WeekendExclusions),
		exceptions:        normalizeKeywords(file.KeywordExceptions),
		Severity:          file.Severity,
	}

	for _, rule := range file.SuspiciousCategories {
		name := normalizeCategory(rule.Name)
		if name == "" {
			return nil, fmt.Errorf("suspicious category with empty name")
		}
		t.categories[name] = normalizeKeywords(rule.Mismatch)
	}

	for _, v := range file.LuxuryVendors {
		re, err := regexp.Compile("(?i)" + v.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid luxury vendor pattern %q: %w", v.Pattern, err)
		}
		t.vendors = append(t.vendors, luxuryVendor{name: v.Name, re: re})
	}

	// Highest tier first so the first match wins.
	sort.SliceStable(t.Severity.AmountTiers, func(i, j int) bool {
		return t.Severity.AmountTiers[i].Above > t.Severity.AmountTiers[j].Above
	})

	if t.Severity.MediumThreshold > t.Severity.HighThreshold {
		return nil, fmt.Errorf("medium threshold %.2f exceeds high threshold %.2f",
			t.Severity.MediumThreshold, t.Severity.HighThreshold)
	}

	return t, nil
}

func mustParseTables(data []byte) *Tables {
	t, err := ParseTables(data)
	if err != nil {
		panic(fmt.Sprintf("analysis: built-in tables: %v", err))
	}
	return t
}

// normalizeKeywords lowercases and trims words, dropping blanks and repeats.
func normalizeKeywords(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

func normalizeCategory(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// matchKeywords returns every keyword contained in text, in table order.
// Matching is a case-insensitive substring test, so "disney" also matches
// "Disneyland". Exception words are blanked out of text first.
func (t *Tables) matchKeywords(words []string, text string) []string {
	text = strings.ToLower(text)
	for _, ex := range t.exceptions {
		text = strings.ReplaceAll(text, ex, " ")
	}

	var matched []string
	for _, w := range words {
		if strings.Contains(text, w) {
			matched = append(matched, w)
		}
	}
	return matched
}

// PersonalKeywords lists the personal-expense keywords in table order.
func (t *Tables) PersonalKeywords() []string {
	out := make([]string, len(t.personal))
	copy(out, t.personal)
	return out
}

// IsSuspiciousCategory reports whether category is one that is checked for
// mismatched descriptions.
func (t *Tables) IsSuspiciousCategory(category string) bool {
	_, ok := t.categories[normalizeCategory(category)]
	return ok
}

func (t *Tables) categoryMismatch(category, description string) []string {
	words, ok := t.categories[normalizeCategory(category)]
	if !ok {
		return nil
	}
	return t.matchKeywords(words, description)
}

func (t *Tables) luxuryVendor(description string) (string, bool) {
	for _, v := range t.vendors {
		if v.re.MatchString(description) {
			return v.name, true
		}
	}
	return "", false
}
