package recommend

// MatchedDefault is the pattern provenance reported when no rule matched and
// the label's default activity was used.
const MatchedDefault = "default"

// cloneTemplate deep-copies a template so callers can mutate materials and
// steps without touching the loaded table.
func cloneTemplate(t ActivityTemplate) ActivityTemplate {
	out := t
	out.Materials = append([]string(nil), t.Materials...)
	out.Steps = append([]string(nil), t.Steps...)
	return out
}

// Match scans the label's rules in order against the observation note and
// returns the first hit. Rules never match across labels; a note full of
// thriving vocabulary still resolves within a struggling label's list. When
// nothing matches, the label's default activity is returned with
// MatchedDefault as the pattern. Labels outside {0,1,2} fall back to the
// struggling list.
func (t *RuleTable) Match(label int, note string) (ActivityTemplate, string) {
	lr, ok := t.byLabel[label]
	if !ok {
		lr = t.byLabel[0]
	}

	for _, rule := range lr.rules {
		if rule.re.MatchString(note) {
			tpl := cloneTemplate(rule.Template)
			tpl.Type = rule.Type
			return tpl, rule.Pattern
		}
	}
	return cloneTemplate(lr.defaultTpl), MatchedDefault
}
