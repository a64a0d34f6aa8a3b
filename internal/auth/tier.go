package auth

// Tier is the caller's access level. Having a session is the only thing
// that matters: registered viewers see contact info and premium content,
// guests do not. There is no separate viewer-premium tier.
type Tier string

const (
	TierGuest         Tier = "guest"
	TierAuthenticated Tier = "authenticated"
)

// ResolveTier derives the tier from session presence.
func ResolveTier(sessionPresent bool) Tier {
	if sessionPresent {
		return TierAuthenticated
	}
	return TierGuest
}

// CanViewPremium reports whether the tier unlocks premium-flagged
// content and profile contact fields.
func (t Tier) CanViewPremium() bool {
	return t == TierAuthenticated
}
