package ippo

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// StatusTransitionContext provides context for status change guards.
type StatusTransitionContext struct {
	IppoID string
	Status Status
}

// CanStockIppo evaluates whether an IPPO can be moved back to stock.
// Rules:
// - Status must be "achieved"
func CanStockIppo(ctx StatusTransitionContext) GuardResult {
	if ctx.Status != StatusAchieved {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("can only stock achieved IPPO (%s is %s)", ctx.IppoID, ctx.Status),
		}
	}

	return GuardResult{Allowed: true}
}

// CanDeleteAchievedIppo evaluates whether an IPPO can be deleted from the achieved view.
// Rules:
// - Status must be "achieved"
func CanDeleteAchievedIppo(ctx StatusTransitionContext) GuardResult {
	if ctx.Status != StatusAchieved {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s is not achieved (status: %s)", ctx.IppoID, ctx.Status),
		}
	}

	return GuardResult{Allowed: true}
}

// CanAchieveIppo evaluates whether an IPPO can be marked achieved.
// Rules:
// - Status must be "pending" or "stocked"
func CanAchieveIppo(ctx StatusTransitionContext) GuardResult {
	if ctx.Status == StatusAchieved {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s is already achieved", ctx.IppoID),
		}
	}

	return GuardResult{Allowed: true}
}
