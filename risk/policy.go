package risk

import "fmt"

// Policy holds the account-level risk limits from the settings provider.
type Policy struct {
	InitialCapital  float64 // account currency
	GlobalRiskLimit float64 // max tolerated monthly loss, account currency
	GainTargetPct   float64 // e.g. 5 means +5% of initial capital
	LossLimitPct    float64 // e.g. 10 means -10% of initial capital
}

// Targets are the absolute balance levels derived from the policy.
type Targets struct {
	GainTarget float64
	LossLimit  float64
}

// Targets converts the percentage goals into absolute balance targets.
func (p Policy) Targets() Targets {
	return Targets{
		GainTarget: p.InitialCapital * (1 + p.GainTargetPct/100),
		LossLimit:  p.InitialCapital * (1 - p.LossLimitPct/100),
	}
}

// Violation is one broken limit, with a stable code for programmatic use.
type Violation struct {
	Code string
	Msg  string
}

// Decision is the outcome of checking a balance against the policy.
type Decision struct {
	Allowed    bool
	Violations []Violation

	MonthlyBalance float64
	Balance        float64
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Evaluate checks the month's realized balance against the policy limits.
// It flags the global risk limit and the loss-limit circuit breaker; hitting
// the gain target is informational and never blocks.
func Evaluate(p Policy, monthlyBalance float64) Decision {
	d := Decision{
		Allowed:        true,
		MonthlyBalance: monthlyBalance,
		Balance:        p.InitialCapital + monthlyBalance,
	}

	if p.GlobalRiskLimit > 0 && monthlyBalance <= -p.GlobalRiskLimit {
		d.add("RISK_LIMIT_REACHED",
			fmt.Sprintf("monthly balance %.2f breaches global risk limit %.2f",
				monthlyBalance, p.GlobalRiskLimit))
	}

	t := p.Targets()
	if p.LossLimitPct > 0 && d.Balance <= t.LossLimit {
		d.add("LOSS_LIMIT_REACHED",
			fmt.Sprintf("balance %.2f at or below loss limit %.2f",
				d.Balance, t.LossLimit))
	}

	return d
}
