package diagnosis

import "strings"

// Service classifies failed queries with rule-based classifiers.
type Service struct {
	classifiers []Classifier
}

// NewService creates a diagnosis service. With no classifiers it uses
// DefaultClassifiers.
func NewService(classifiers ...Classifier) *Service {
	if len(classifiers) == 0 {
		classifiers = DefaultClassifiers()
	}
	return &Service{classifiers: classifiers}
}

// Diagnose classifies a failed query. An empty message yields nil. A
// message no rule recognizes is reported as unclassified with no hint.
func (s *Service) Diagnose(query, message string) *DiagnosisResult {
	if strings.TrimSpace(message) == "" {
		return nil
	}
	res, ok := RunClassifiers(s.classifiers, &ClassifyInput{Query: query, Message: message})
	if !ok {
		return &DiagnosisResult{Category: CategoryUnclassified}
	}
	return &res
}
