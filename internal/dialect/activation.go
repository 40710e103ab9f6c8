package dialect

import (
	"strings"

	"github.com/ruleport/ruleport/pkg/models"
)

// triggerVocab maps each dialect's activation vocabulary to canonical
// activation types. Only dialects that key activation off a single
// frontmatter word appear here; cursor and copilot encode activation
// through field combinations handled by their parser and serializer.
var triggerVocab = map[ID]map[string]models.ActivationType{
	Windsurf: {
		"always_on":      models.ActivationAlways,
		"glob":           models.ActivationPattern,
		"manual":         models.ActivationManual,
		"model_decision": models.ActivationContext,
	},
	Kiro: {
		"always":    models.ActivationAlways,
		"fileMatch": models.ActivationPattern,
		"manual":    models.ActivationManual,
	},
	Augment: {
		"always_apply":    models.ActivationAlways,
		"agent_requested": models.ActivationContext,
		"manual":          models.ActivationManual,
	},
}

// triggerWords is the render-direction inverse of triggerVocab, built
// once at init. Vocabularies are injective per dialect, so inversion
// loses nothing.
var triggerWords = map[ID]map[models.ActivationType]string{}

func init() {
	for id, vocab := range triggerVocab {
		inverse := make(map[models.ActivationType]string, len(vocab))
		for word, act := range vocab {
			inverse[act] = word
		}
		triggerWords[id] = inverse
	}
}

// ActivationFromTrigger maps a dialect vocabulary word to its canonical
// activation type. The boolean is false for dialects without a trigger
// vocabulary and for unknown words.
func ActivationFromTrigger(id ID, word string) (models.ActivationType, bool) {
	vocab, ok := triggerVocab[id]
	if !ok {
		return "", false
	}
	act, ok := vocab[strings.TrimSpace(word)]
	return act, ok
}

// TriggerWord maps a canonical activation type to the dialect's
// vocabulary word. The boolean is false when the dialect has no word
// for the type; callers degrade in that case.
func TriggerWord(id ID, act models.ActivationType) (string, bool) {
	inverse, ok := triggerWords[id]
	if !ok {
		return "", false
	}
	word, ok := inverse[act]
	return word, ok
}

// Fallback is the activation type every dialect can encode. Rules whose
// activation a target cannot express are re-tagged with it.
func Fallback() models.ActivationType {
	return models.ActivationAlways
}

// DegradationHint builds the body line that preserves activation intent
// when a target dialect cannot encode the rule's activation type. The
// output depends only on the rule, so repeated conversions are stable.
func DegradationHint(r models.Rule) string {
	switch r.Activation {
	case models.ActivationPattern:
		return "Applies to files matching: " + strings.Join(r.Patterns, ", ")
	case models.ActivationContext:
		if r.Description != "" {
			return "Context: " + r.Description
		}
		return "Context: " + r.Name
	case models.ActivationManual:
		return "Manual rule: apply only when explicitly requested."
	}
	return ""
}

// Degrade returns the rule as the dialect can represent it. When the
// activation type is native the rule comes back unchanged and the
// boolean is false. Otherwise the copy carries the fallback activation
// with the degradation hint folded into the body, and the boolean is
// true so callers can record a warning. The input is never mutated.
func (p Profile) Degrade(r models.Rule) (models.Rule, bool) {
	if p.Supports(r.Activation) {
		return r, false
	}
	out := r
	out.Activation = Fallback()
	out.Patterns = nil
	if hint := DegradationHint(r); hint != "" {
		if out.Body == "" {
			out.Body = hint
		} else {
			out.Body = hint + "\n\n" + out.Body
		}
	}
	return out, true
}
