package field

import "strings"

func tagsKind() Kind {
	return Kind{
		Type:         Tags,
		Title:        "Tags",
		Description:  "A list of short labels",
		Icon:         "tags",
		InitialState: []string{},
		Rules:        tagsRuleSet(),
		Validate:     validateTags,
	}
}

func tagsRuleSet() RuleSet {
	rs := RuleSet{}
	for key, def := range ItemsRules {
		rs[key] = def
	}
	rs[RuleDisallowCharacters] = ""
	return rs
}

// validateTags checks required, then disallowed characters across every tag.
// minItems/maxItems are declared in the rule set but deliberately not
// enforced; see ItemsRules.
func validateTags(value any, rules Rules, columnName string, _ Options) Result {
	tags := toTags(value)
	switch {
	case IsFieldRequired(value, rules.Required):
		return Result{Value: tags, Error: requiredMessage(columnName)}
	case hasDisallowedTag(tags, rules.DisallowCharacters):
		return Result{Value: tags, Error: disallowMessage(rules.DisallowCharacters)}
	}
	return Result{Value: tags}
}

func hasDisallowedTag(tags []string, disallow string) bool {
	for _, tag := range tags {
		if HasDisallowedCharacters(tag, disallow) {
			return true
		}
	}
	return false
}

// toTags normalizes the editor's value shapes: a tag slice, a loosely typed
// JSON array, or a comma-separated string.
func toTags(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		tags := make([]string, 0, len(v))
		for _, item := range v {
			tags = append(tags, toString(item))
		}
		return tags
	case string:
		if v == "" {
			return []string{}
		}
		parts := strings.Split(v, ",")
		tags := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				tags = append(tags, p)
			}
		}
		return tags
	default:
		return []string{}
	}
}
