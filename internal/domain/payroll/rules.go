package payroll

// Severity of a rule violation. Errors mark the calculation invalid;
// warnings are recorded without invalidating it.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type Violation struct {
	Code     string
	Message  string
	Severity Severity
}

// Rule inspects a finished calculation and reports violations. Rules never
// abort a run; their findings are recorded on the calculation itself.
type Rule interface {
	Evaluate(calc PayrollCalculation) []Violation
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(calc PayrollCalculation) []Violation

func (f RuleFunc) Evaluate(calc PayrollCalculation) []Violation {
	return f(calc)
}

// RuleSet applies rules in order and folds their violations into the
// calculation's validity fields.
type RuleSet struct {
	rules []Rule
}

func NewRuleSet(rules ...Rule) *RuleSet {
	return &RuleSet{rules: rules}
}

// Apply evaluates every rule and stamps IsValid, ValidationErrors, and
// ValidationWarnings on the calculation. With no rules the calculation is
// valid with empty lists.
func (s *RuleSet) Apply(calc *PayrollCalculation) {
	calc.IsValid = true
	calc.ValidationErrors = []string{}
	calc.ValidationWarnings = []string{}

	for _, rule := range s.rules {
		for _, v := range rule.Evaluate(*calc) {
			switch v.Severity {
			case SeverityError:
				calc.IsValid = false
				calc.ValidationErrors = append(calc.ValidationErrors, v.Message)
			case SeverityWarning:
				calc.ValidationWarnings = append(calc.ValidationWarnings, v.Message)
			}
		}
	}
}

// NegativeNetPayRule flags calculations whose deductions exceed gross. Not in
// the default set; deductions cannot outgrow gross under the current formulas.
func NegativeNetPayRule() Rule {
	return RuleFunc(func(calc PayrollCalculation) []Violation {
		if calc.NetPay.IsNegative() {
			return []Violation{{
				Code:     "negative_net_pay",
				Message:  "net pay is negative",
				Severity: SeverityError,
			}}
		}
		return nil
	})
}
