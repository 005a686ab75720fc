// Copyright 2025 Magnus Pierre
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package datatable

import (
	"log"
	"regexp"
)

// CellAlign specifies horizontal alignment of cell content.
type CellAlign int

const (
	// AlignDefault lets the cell builder pick alignment by data type.
	AlignDefault CellAlign = iota
	// AlignLeading aligns content to the leading edge.
	AlignLeading
	// AlignCenter centers content.
	AlignCenter
	// AlignTrailing aligns content to the trailing edge.
	AlignTrailing
)

// Severity classifies a numeric value against thresholds.
type Severity int

const (
	// SeverityNormal is the default severity.
	SeverityNormal Severity = iota
	// SeverityWarning marks values past the warning threshold.
	SeverityWarning
	// SeverityCritical marks values past the critical threshold.
	SeverityCritical
)

// Threshold colors numeric cells whose value is >= Value.
type Threshold struct {
	Value    float64
	Severity Severity
}

// CellStyle holds the display style a rule applies to matching columns.
// It is opaque to the resolver; cell builders interpret it.
type CellStyle struct {
	Bold       bool
	Italic     bool
	Align      CellAlign
	Thresholds []Threshold
}

// Classify returns the highest severity whose threshold the value
// reaches, or SeverityNormal when no threshold applies.
func (s CellStyle) Classify(value float64) Severity {
	out := SeverityNormal
	for _, t := range s.Thresholds {
		if value >= t.Value && t.Severity > out {
			out = t.Severity
		}
	}
	return out
}

// StyleRule maps a column-name pattern to a display style.
// Pattern is a regular expression matched against the column name.
// Alias, when non-empty, replaces the display title; capture-group
// references ($1, ${name}) in the alias are expanded from the match.
type StyleRule struct {
	Pattern string
	Alias   string
	Style   CellStyle
}

// ResolvedStyle is the result of matching a column name against a rule
// list: the effective display title and the matched style.
type ResolvedStyle struct {
	Title   string
	Style   CellStyle
	Matched bool
}

// compiledRule pairs a rule with its compiled pattern.
type compiledRule struct {
	rule StyleRule
	re   *regexp.Regexp
}

// StyleSet is an ordered StyleRule list with patterns compiled once.
// Rules with malformed patterns are dropped at compile time so that
// per-column resolution never recompiles and never fails.
type StyleSet struct {
	rules []compiledRule
}

// CompileStyles compiles an ordered rule list into a StyleSet.
// A malformed pattern never aborts compilation; the offending rule is
// logged and skipped, and the remaining rules keep their order.
func CompileStyles(rules []StyleRule) *StyleSet {
	set := &StyleSet{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			log.Printf("datatable: skipping style rule with malformed pattern %q: %v", r.Pattern, err)
			continue
		}
		set.rules = append(set.rules, compiledRule{rule: r, re: re})
	}
	return set
}

// Len returns the number of usable (compiled) rules.
func (s *StyleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Resolve matches a column name against the rule list. The first rule
// whose pattern matches wins; there is no scoring. When the winning
// rule carries an alias the title is the match-substituted alias,
// otherwise the raw column name. With no match the raw name is
// returned with a zero style.
func (s *StyleSet) Resolve(name string) ResolvedStyle {
	if s == nil {
		return ResolvedStyle{Title: name}
	}
	for _, cr := range s.rules {
		if !cr.re.MatchString(name) {
			continue
		}
		title := name
		if cr.rule.Alias != "" {
			title = cr.re.ReplaceAllString(name, cr.rule.Alias)
		}
		return ResolvedStyle{Title: title, Style: cr.rule.Style, Matched: true}
	}
	return ResolvedStyle{Title: name}
}
