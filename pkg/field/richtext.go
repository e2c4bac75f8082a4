package field

// RichBlock is one node of a rich-text value. The node model is opaque to
// validation; only emptiness matters here.
type RichBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// RichValue is the value of a rich-text column: an ordered list of blocks.
type RichValue struct {
	Blocks []RichBlock `json:"blocks"`
}

func richTextKind() Kind {
	return Kind{
		Type:         RichText,
		Title:        "Rich Text",
		Description:  "Formatted text with headings, lists and marks",
		Icon:         "file-text",
		InitialState: RichValue{},
		Rules:        RequiredRules,
		Validate:     validateRichText,
	}
}

// validateRichText only wires the required check: a rich document with no
// blocks counts as missing.
func validateRichText(value any, rules Rules, columnName string, _ Options) Result {
	if rules.Required && isEmptyRich(value) {
		return Result{Value: value, Error: requiredMessage(columnName)}
	}
	return Result{Value: value}
}

func isEmptyRich(value any) bool {
	switch v := value.(type) {
	case RichValue:
		return len(v.Blocks) == 0
	case *RichValue:
		return v == nil || len(v.Blocks) == 0
	default:
		return isMissing(value)
	}
}
