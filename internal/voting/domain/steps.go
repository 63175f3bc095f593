package domain

// Step is a wizard page path. The voting flow is linear; each step may
// require progress made on earlier steps before it can be shown.
type Step string

const (
	StepTerms             Step = "/terms"
	StepProcess           Step = "/process"
	StepRegions           Step = "/regions"
	StepRegionalSelection Step = "/regional-selection"
	StepNationalSelection Step = "/national-selection"
	StepRestaurantReview  Step = "/restaurant-review"
	StepRating            Step = "/rating"
	StepFinalRatings      Step = "/final-ratings"
	StepThankYou          Step = "/thank-you"

	// StepAdmin is outside the voter flow; the session resolver routes
	// administrators there.
	StepAdmin Step = "/admin"
)

// OrderedSteps lists the voter flow in navigation order.
var OrderedSteps = []Step{
	StepTerms,
	StepProcess,
	StepRegions,
	StepRegionalSelection,
	StepNationalSelection,
	StepRestaurantReview,
	StepRating,
	StepFinalRatings,
	StepThankYou,
}

// stepRequirement is one row of the guard predicate table. Earlier
// requirements dominate: a violated terms requirement redirects to /terms
// even when later list counts are also short.
type stepRequirement struct {
	needsTerms    bool
	needsRegional bool
	needsNational bool
}

var stepRequirements = map[Step]stepRequirement{
	StepTerms:             {},
	StepProcess:           {},
	StepRegions:           {},
	StepRegionalSelection: {needsTerms: true},
	StepNationalSelection: {needsTerms: true, needsRegional: true},
	StepRestaurantReview:  {needsTerms: true, needsRegional: true, needsNational: true},
	StepRating:            {needsTerms: true, needsRegional: true, needsNational: true},
	StepFinalRatings:      {needsTerms: true, needsRegional: true, needsNational: true},
	StepThankYou:          {},
}

// KnownStep reports whether the path names a voter-flow step. The same set
// acts as the allow-list for last-visited-page tracking.
func KnownStep(path string) bool {
	_, ok := stepRequirements[Step(path)]
	return ok
}

// Progress is the account state the guard evaluates. It is refetched on
// every navigation; nothing here is cached.
type Progress struct {
	AgreedTerms   bool
	RegionalCount int
	NationalCount int
}

// RequiredRedirect returns the earliest unmet step for the target, or ok
// when all prerequisites hold. A voter opening /rating with six regional
// picks is sent to /regional-selection, not one step back.
func RequiredRedirect(target Step, progress Progress) (Step, bool) {
	req, known := stepRequirements[target]
	if !known {
		return StepTerms, false
	}
	if req.needsTerms && !progress.AgreedTerms {
		return StepTerms, false
	}
	if req.needsRegional && progress.RegionalCount < RegionalCapacity {
		return StepRegionalSelection, false
	}
	if req.needsNational && progress.NationalCount < NationalCapacity {
		return StepNationalSelection, false
	}
	return "", true
}
