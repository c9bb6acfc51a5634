package interview

// Answers is a flat mapping of question name to answer value. Interviews
// keep three layers of it: the immutable defaults supplied at construction,
// the user answers accumulated group by group, and the merged final view.
type Answers map[string]any

// Clone returns a shallow copy. A nil receiver clones to an empty map so
// callers can merge into the result without nil checks.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Bool reads key as a boolean. Only an actual bool true counts; missing
// keys and non-bool values read as false.
func (a Answers) Bool(key string) bool {
	v, ok := a[key].(bool)
	return ok && v
}

// String reads key as a string, returning "" for missing or non-string values.
func (a Answers) String(key string) string {
	v, _ := a[key].(string)
	return v
}

// mergeAnswers layers user answers over defaults. User answers win on
// conflicting keys. Recomputed on every call; never cache the result while
// user answers can still change.
func mergeAnswers(defaults, user Answers) Answers {
	merged := defaults.Clone()
	for k, v := range user {
		merged[k] = v
	}
	return merged
}

// Confirmation answer keys. Confirmation prompts answer into an ephemeral
// Answers map using these names; the map is discarded after each cycle.
const (
	ConfirmProceed = "proceed"
	ConfirmRestart = "restart"
	ConfirmAbort   = "abort"
)

// newConfirmationAnswers returns the fresh default shape for one
// confirmation cycle.
func newConfirmationAnswers() Answers {
	return Answers{ConfirmProceed: false, ConfirmRestart: false}
}

// xorBool is the shared inversion primitive: effective = invert XOR raw.
// Both the prompt-level redo check and the interview-level final
// confirmation must use this exact rule.
func xorBool(invert, raw bool) bool {
	return invert != raw
}
