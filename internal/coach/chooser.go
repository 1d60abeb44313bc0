package coach

import "math/rand"

// paidReplies are the canned coaching replies shown to pro and premium
// accounts. Selection is a pure draw with replacement; it is deliberately
// not reproducible unless a seeded Chooser is injected.
var paidReplies = []string{
	"That's a common challenge many founders face. Here's what I'd recommend: Focus on validating your core value " +
		"proposition first. Can you tell me more about how you're currently measuring customer interest?",
	"Interesting perspective! Based on what you've shared, I see potential in three key areas: market validation, " +
		"product-market fit, and customer acquisition strategy. Which area feels most urgent to you right now?",
	"Great insight! This reminds me of similar patterns I've seen with other successful startups. Have you considered " +
		"running a small experiment to test this hypothesis? I can help you design one.",
	"That's a solid foundation to build on. Let me suggest a framework that might help: Start with your riskiest " +
		"assumptions and work backwards. What's the one thing that, if proven wrong, would fundamentally change your approach?",
}

// Chooser picks an index in [0,n). Injecting one makes paid-tier replies
// deterministic in tests.
type Chooser func(n int) int

// RandomChooser draws from the shared math/rand source.
func RandomChooser(n int) int {
	return rand.Intn(n)
}

// SeededChooser returns a Chooser backed by its own seeded source.
func SeededChooser(seed int64) Chooser {
	r := rand.New(rand.NewSource(seed))
	return func(n int) int { return r.Intn(n) }
}

// PaidReply selects one of the canned replies using the given chooser.
func PaidReply(choose Chooser) string {
	if choose == nil {
		choose = RandomChooser
	}
	return paidReplies[choose(len(paidReplies))]
}
