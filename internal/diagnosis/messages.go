package diagnosis

import "regexp"

type messageRule struct {
	re       *regexp.Regexp
	category ErrorCategory
}

// MessageClassifier matches engine error messages against known SQLite
// wording. The first capture group, when present, becomes the subject.
type MessageClassifier struct {
	rules []messageRule
}

// NewMessageClassifier returns a classifier with the built-in rules.
func NewMessageClassifier() *MessageClassifier {
	return &MessageClassifier{rules: []messageRule{
		{regexp.MustCompile(`near "([^"]*)": syntax error`), CategorySyntax},
		{regexp.MustCompile(`incomplete input|unrecognized token: "?([^"]*)"?`), CategorySyntax},
		{regexp.MustCompile(`ambiguous column name: ([\w.]+)`), CategoryAmbiguousColumn},
		{regexp.MustCompile(`no such function: (\w+)`), CategoryUnknownFunction},
		{regexp.MustCompile(`misuse of aggregate(?: function)?:? (\w+)`), CategoryAggregate},
		{regexp.MustCompile(`wrong number of arguments to function (\w+)`), CategoryArity},
		{regexp.MustCompile(`(UNIQUE|NOT NULL|FOREIGN KEY|PRIMARY KEY|CHECK) constraint failed`), CategoryConstraint},
		{regexp.MustCompile(`(?:table|index|view|trigger) (\w+) already exists`), CategoryAlreadyExists},
	}}
}

func (c *MessageClassifier) Name() string { return "message" }

func (c *MessageClassifier) Classify(input *ClassifyInput) (DiagnosisResult, bool) {
	for _, r := range c.rules {
		m := r.re.FindStringSubmatch(input.Message)
		if m == nil {
			continue
		}
		res := DiagnosisResult{Category: r.category, Hint: hintFor(r.category)}
		if len(m) > 1 {
			res.Subject = m[1]
		}
		return res, true
	}
	return DiagnosisResult{}, false
}
