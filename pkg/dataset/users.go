package dataset

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/YouCanCallMeDustin/synthetic-ecommerce-dataset/pkg/catalog"
)

// signupWindowYears bounds how far back user signups reach.
const signupWindowYears = 2

var membershipTiers = []MembershipTier{TierBronze, TierSilver, TierGold, TierPlatinum}

// Most shoppers never climb past Bronze.
var membershipWeights = []float64{0.50, 0.30, 0.15, 0.05}

// loyaltyRanges gives the points range per tier. Ranges overlap on
// purpose; only the tier floor/ceiling correlation matters.
var loyaltyRanges = map[MembershipTier][2]int{
	TierBronze:   {0, 1000},
	TierSilver:   {500, 5000},
	TierGold:     {3000, 10000},
	TierPlatinum: {8000, 20000},
}

func (g *Generator) generateUsers(rng *rand.Rand) []User {
	users := make([]User, g.cfg.Users)
	windowStart := g.now.AddDate(-signupWindowYears, 0, 0)

	for i := range users {
		first := pick(rng, g.cat.FirstNames)
		last := pick(rng, g.cat.LastNames)

		signup := dayOf(dateBetween(rng, windowStart, g.now))
		lastLogin := dateBetween(rng, signup, g.now)

		tier := membershipTiers[pickWeighted(rng, membershipWeights)]
		points := loyaltyRanges[tier]

		users[i] = User{
			ID:            i + 1,
			Name:          first + " " + last,
			Email:         emailFor(rng, first, last, g.cat.EmailDomains),
			Phone:         phoneNumber(rng),
			Address:       postalAddress(rng, g.cat),
			SignupDate:    signup,
			LastLogin:     lastLogin,
			LoyaltyPoints: intBetween(rng, points[0], points[1]),
			Membership:    tier,
			Payment:       pick(rng, g.cat.PaymentMethods),
		}
	}
	return users
}

// emailFor derives a mailbox from the user's name plus a domain from
// the pool. All variants keep to [a-z0-9.] so addresses stay valid.
func emailFor(rng *rand.Rand, first, last string, domains []string) string {
	f := strings.ToLower(first)
	l := strings.ToLower(last)

	var local string
	switch rng.IntN(4) {
	case 0:
		local = f + "." + l
	case 1:
		local = f + l
	case 2:
		local = fmt.Sprintf("%s%d", f, intBetween(rng, 1, 99))
	default:
		local = fmt.Sprintf("%s.%s%d", f, l, intBetween(rng, 1, 99))
	}
	return local + "@" + pick(rng, domains)
}

func phoneNumber(rng *rand.Rand) string {
	return fmt.Sprintf("(%d) %d-%04d",
		intBetween(rng, 200, 989),
		intBetween(rng, 200, 989),
		rng.IntN(10000))
}

func postalAddress(rng *rand.Rand, cat *catalog.Catalog) string {
	return fmt.Sprintf("%d %s, %s, %s %05d",
		intBetween(rng, 100, 9999),
		pick(rng, cat.StreetNames),
		pick(rng, cat.Cities),
		pick(rng, cat.States),
		intBetween(rng, 10000, 99999))
}

// signupOf returns the signup date for a user id. User ids are dense
// and sequential, so this is a direct index.
func signupOf(users []User, id int) time.Time {
	return users[id-1].SignupDate
}
