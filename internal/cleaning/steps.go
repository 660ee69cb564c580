package cleaning

import "fmt"

// Step identifies a single cleaning step.
type Step int

const (
	StepStandardizeNames Step = iota
	StepFixEmails
	StepRemoveDuplicates
	StepCleanDates
	StepHandleMissingValues
)

// canonicalOrder is the only execution order Run will use, regardless of the
// order steps were selected in. Duplicate matching must see standardized
// names and emails, and imputation must see parsed dates.
var canonicalOrder = [...]Step{
	StepStandardizeNames,
	StepFixEmails,
	StepRemoveDuplicates,
	StepCleanDates,
	StepHandleMissingValues,
}

var stepNames = map[Step]string{
	StepStandardizeNames:    "standardize_names",
	StepFixEmails:           "fix_emails",
	StepRemoveDuplicates:    "remove_duplicates",
	StepCleanDates:          "clean_dates",
	StepHandleMissingValues: "handle_missing_values",
}

// String returns the step's wire name.
func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// ParseStep resolves a step name as used on the command line.
func ParseStep(name string) (Step, error) {
	for step, n := range stepNames {
		if n == name {
			return step, nil
		}
	}
	return 0, fmt.Errorf("unknown cleaning step %q", name)
}

// AllSteps returns every step in canonical order.
func AllSteps() []Step {
	out := make([]Step, len(canonicalOrder))
	copy(out, canonicalOrder[:])
	return out
}
