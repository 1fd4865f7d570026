package diagnosis

import "regexp"

// Classifier is a rule-based error classifier.
// Returns a result and true, or false if the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) (DiagnosisResult, bool)
}

// DefaultClassifiers returns classifiers in priority order.
// Timeouts come first since a cancelled query can surface with any driver
// message. Unknown names come before the generic message patterns so they
// can attach a suggestion.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&TimeoutClassifier{},
		NewNameClassifier(nil),
		NewMessageClassifier(),
	}
}

// RunClassifiers executes rule-based classifiers in order.
// Returns the first match, or false if no rules apply.
func RunClassifiers(classifiers []Classifier, input *ClassifyInput) (DiagnosisResult, bool) {
	for _, c := range classifiers {
		if res, ok := c.Classify(input); ok {
			res.ClassifierName = c.Name()
			return res, true
		}
	}
	return DiagnosisResult{}, false
}

var timeoutRe = regexp.MustCompile(`(?i)query timed out|interrupted`)

// TimeoutClassifier flags queries stopped by the execution deadline.
type TimeoutClassifier struct{}

func (c *TimeoutClassifier) Name() string { return "timeout" }

func (c *TimeoutClassifier) Classify(input *ClassifyInput) (DiagnosisResult, bool) {
	if !timeoutRe.MatchString(input.Message) {
		return DiagnosisResult{}, false
	}
	return DiagnosisResult{Category: CategoryTimeout, Hint: hintFor(CategoryTimeout)}, true
}
