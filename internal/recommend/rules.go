package recommend

import (
	_ "embed"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesYAML []byte

// Rule is one compiled pattern-to-activity mapping.
type Rule struct {
	Pattern  string
	Type     string
	Template ActivityTemplate

	re *regexp.Regexp
}

type labelRules struct {
	rules      []Rule
	defaultTpl ActivityTemplate
}

// RuleTable holds the ordered activity mapping rules for all three labels.
// The table is immutable after load; Match never mutates it.
type RuleTable struct {
	byLabel map[int]*labelRules
}

type ruleDoc struct {
	Version int             `yaml:"version"`
	Labels  []labelBlockDoc `yaml:"labels"`
}

type labelBlockDoc struct {
	Label     int               `yaml:"label"`
	Condition string            `yaml:"condition"`
	Rules     []ruleEntryDoc    `yaml:"rules"`
	Default   *ActivityTemplate `yaml:"default"`
}

type ruleEntryDoc struct {
	Pattern  string           `yaml:"pattern"`
	Type     string           `yaml:"type"`
	Activity ActivityTemplate `yaml:"activity"`
}

// LoadRuleTable parses and validates the embedded rule table. Validation is
// strict: malformed patterns, missing labels, or a missing default for any
// label fail the load rather than degrade at match time.
func LoadRuleTable() (*RuleTable, error) {
	return parseRuleTable(rulesYAML)
}

func parseRuleTable(raw []byte) (*RuleTable, error) {
	var doc ruleDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse rule table: %w", err)
	}

	table := &RuleTable{byLabel: make(map[int]*labelRules, 3)}
	for _, block := range doc.Labels {
		if block.Label < 0 || block.Label > 2 {
			return nil, fmt.Errorf("rule table: unknown label %d", block.Label)
		}
		if _, dup := table.byLabel[block.Label]; dup {
			return nil, fmt.Errorf("rule table: duplicate block for label %d", block.Label)
		}
		if block.Default == nil {
			return nil, fmt.Errorf("rule table: label %d has no default activity", block.Label)
		}
		if block.Default.Name == "" || block.Default.Type == "" {
			return nil, fmt.Errorf("rule table: label %d default needs name and type", block.Label)
		}

		lr := &labelRules{defaultTpl: *block.Default}
		for i, entry := range block.Rules {
			if entry.Pattern == "" {
				return nil, fmt.Errorf("rule table: label %d rule %d has empty pattern", block.Label, i)
			}
			if entry.Activity.Name == "" {
				return nil, fmt.Errorf("rule table: label %d rule %d (%q) has no activity name", block.Label, i, entry.Pattern)
			}
			re, err := regexp.Compile("(?i)" + entry.Pattern)
			if err != nil {
				return nil, fmt.Errorf("rule table: label %d rule %d: %w", block.Label, i, err)
			}
			lr.rules = append(lr.rules, Rule{
				Pattern:  entry.Pattern,
				Type:     entry.Type,
				Template: entry.Activity,
				re:       re,
			})
		}
		table.byLabel[block.Label] = lr
	}

	for label := 0; label <= 2; label++ {
		if _, ok := table.byLabel[label]; !ok {
			return nil, fmt.Errorf("rule table: no block for label %d", label)
		}
	}
	return table, nil
}
