package styling

import (
	"strings"

	"go.uber.org/zap"
)

const mediaAtRule = "@media"

// ExtractInnerRules returns minified rules of a stylesheet. When the text is
// wrapped in a media query only the block content is returned: everything
// after the first "{" without the closing "}".
func ExtractInnerRules(stylesheet string) string {
	cleaned := Clean(stylesheet)
	if !strings.HasPrefix(cleaned, mediaAtRule) {
		return cleaned
	}
	_, inner, found := strings.Cut(cleaned, "{")
	if !found {
		// query without a block, nothing to keep
		return ""
	}
	return Clean(strings.TrimSuffix(inner, "}"))
}

// Merger accumulates rules of revealed elements in one stylesheet text.
// Calls against the same stylesheet must be serialized by the caller.
type Merger struct {
	log *zap.Logger
}

// NewMerger creates a new stylesheet merger.
func NewMerger(log *zap.Logger) *Merger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Merger{log: log.Named("merger")}
}

// Merge appends mainCSS and transitionCSS to the rules already present in
// existing and re-wraps everything with media queries for r. Previously
// emitted rules are kept verbatim, only the wrapper is recomputed. On error
// an empty string is returned, never partially merged text.
func (m *Merger) Merge(existing, mainCSS, transitionCSS string, r Responsive) (string, error) {
	prev := ExtractInnerRules(existing)
	next := Clean(mainCSS + " " + transitionCSS)

	decorated, err := AddMediaQueries(Clean(prev+" "+next), r)
	if err != nil {
		m.log.Debug("Unable to merge styles", zap.Error(err))
		return "", err
	}

	m.log.Debug("Merged styles",
		zap.Int("previous", len(prev)),
		zap.Int("added", len(next)),
		zap.Bool("wrapped", strings.HasPrefix(decorated, mediaAtRule)))
	return strings.TrimSpace(decorated), nil
}
