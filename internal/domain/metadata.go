package domain

import (
	"fmt"
	"time"

	"github.com/samber/lo"
)

// Accessors exposed by the token contract.
const (
	AccessorName     = "name"
	AccessorSymbol   = "symbol"
	AccessorDecimals = "decimals"
)

// ExpectedMetadata pairs a read-only accessor with the literal it must return.
type ExpectedMetadata struct {
	Accessor string `json:"accessor" yaml:"accessor"`
	Expected string `json:"expected" yaml:"expected"`
}

// VerifyMode controls how the verifier reacts to a divergence.
type VerifyMode string

const (
	ModeFailFast   VerifyMode = "fail-fast"
	ModeCollectAll VerifyMode = "collect-all"
)

func ParseVerifyMode(s string) (VerifyMode, error) {
	switch VerifyMode(s) {
	case ModeFailFast, ModeCollectAll:
		return VerifyMode(s), nil
	case "":
		return ModeCollectAll, nil
	default:
		return "", fmt.Errorf("invalid verify mode %q (want %s or %s)", s, ModeFailFast, ModeCollectAll)
	}
}

type CheckStatus string

const (
	CheckPassed  CheckStatus = "pass"
	CheckFailed  CheckStatus = "fail"
	CheckErrored CheckStatus = "error"
	CheckSkipped CheckStatus = "skipped"
)

// CheckResult is the outcome of one accessor comparison.
type CheckResult struct {
	Accessor string        `json:"accessor"`
	Expected string        `json:"expected"`
	Actual   string        `json:"actual,omitempty"`
	Status   CheckStatus   `json:"status"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
	Message  string        `json:"error,omitempty"`
}

// VerificationResult enumerates pass/fail per expected entry.
type VerificationResult struct {
	Environment string        `json:"environment,omitempty"`
	Address     string        `json:"address,omitempty"`
	Mode        VerifyMode    `json:"mode"`
	Checks      []CheckResult `json:"checks"`
	StartedAt   time.Time     `json:"startedAt"`
	Duration    time.Duration `json:"duration"`
}

// Passed reports whether every check passed.
func (r *VerificationResult) Passed() bool {
	return lo.EveryBy(r.Checks, func(c CheckResult) bool { return c.Status == CheckPassed })
}

// Check returns the result for an accessor, if any.
func (r *VerificationResult) Check(accessor string) (CheckResult, bool) {
	return lo.Find(r.Checks, func(c CheckResult) bool { return c.Accessor == accessor })
}

// Count returns how many checks have the given status.
func (r *VerificationResult) Count(status CheckStatus) int {
	return lo.CountBy(r.Checks, func(c CheckResult) bool { return c.Status == status })
}
