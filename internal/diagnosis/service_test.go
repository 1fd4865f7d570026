package diagnosis

import "testing"

func TestService_Diagnose(t *testing.T) {
	s := NewService()
	res := s.Diagnose("SELECT * FROM Employee;", "no such table: Employee")
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.Category != CategoryUnknownTable || res.Suggestion != "Employees" {
		t.Errorf("got %+v", res)
	}
}

func TestService_EmptyMessage(t *testing.T) {
	if res := NewService().Diagnose("SELECT 1;", "  "); res != nil {
		t.Errorf("got %+v, want nil", res)
	}
}

func TestService_Unclassified(t *testing.T) {
	res := NewService().Diagnose("SELECT 1;", "database is locked")
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.Category != CategoryUnclassified {
		t.Errorf("got category %q, want unclassified", res.Category)
	}
	if res.Hint != "" {
		t.Errorf("got hint %q, want none", res.Hint)
	}
}

type fixedClassifier struct{ cat ErrorCategory }

func (f fixedClassifier) Name() string { return "fixed" }
func (f fixedClassifier) Classify(*ClassifyInput) (DiagnosisResult, bool) {
	return DiagnosisResult{Category: f.cat, Hint: "fixed"}, true
}

func TestService_CustomClassifiers(t *testing.T) {
	res := NewService(fixedClassifier{CategorySyntax}).Diagnose("x", "anything")
	if res.ClassifierName != "fixed" || res.Category != CategorySyntax {
		t.Errorf("got %+v", res)
	}
}
