package diagnosis

// ErrorCategory classifies a failed query.
type ErrorCategory string

const (
	CategorySyntax          ErrorCategory = "syntax"
	CategoryUnknownTable    ErrorCategory = "unknown-table"
	CategoryUnknownColumn   ErrorCategory = "unknown-column"
	CategoryUnknownFunction ErrorCategory = "unknown-function"
	CategoryAmbiguousColumn ErrorCategory = "ambiguous-column"
	CategoryConstraint      ErrorCategory = "constraint"
	CategoryAggregate       ErrorCategory = "aggregate"
	CategoryArity           ErrorCategory = "arity"
	CategoryAlreadyExists   ErrorCategory = "already-exists"
	CategoryTimeout         ErrorCategory = "timeout"
	CategoryUnclassified    ErrorCategory = "unclassified"
)

// ClassifyInput holds the context for classification.
type ClassifyInput struct {
	Query   string // SQL text the learner ran
	Message string // engine error message, verbatim
}

// DiagnosisResult is the output of classifying a failed query.
type DiagnosisResult struct {
	Category       ErrorCategory
	Subject        string // offending name or token, when the message names one
	Suggestion     string // closest known table or column, when one is near
	Hint           string // learner-facing explanation
	ClassifierName string // which classifier produced this result
}
