package coach

import "strings"

// insightRule pairs substring markers with the paragraph emitted when any
// marker appears in the lowercased answer. Tables are evaluated top to
// bottom; the first matching rule wins for its category.
type insightRule struct {
	markers   []string
	paragraph string
}

func (r insightRule) matches(lowered string) bool {
	for _, m := range r.markers {
		if strings.Contains(lowered, m) {
			return true
		}
	}
	return false
}

// firstMatch returns the paragraph of the first matching rule, or fallback.
func firstMatch(rules []insightRule, answer, fallback string) string {
	lowered := strings.ToLower(answer)
	for _, rule := range rules {
		if rule.matches(lowered) {
			return rule.paragraph
		}
	}
	return fallback
}

// Problem / jobs-to-be-done insights.
var problemRules = []insightRule{
	{
		markers: []string{"b2b", "business", "enterprise"},
		paragraph: "🎯 **B2B Opportunity**: Your enterprise focus is strategic. B2B customers have 5-10x higher lifetime " +
			"values than consumers. Focus on identifying the economic buyer (who controls budget) vs. the end user (who " +
			"experiences the problem).",
	},
	{
		markers: []string{"consumer", "b2c", "personal"},
		paragraph: "🎯 **Consumer Market**: You're targeting a large market with viral potential. Your biggest challenge " +
			"will be customer acquisition cost. Plan for organic growth mechanisms from day one.",
	},
	{
		markers: []string{"time", "efficiency", "faster", "save"},
		paragraph: "⏰ **Time-Saving Value**: Time is the ultimate currency. Quantify exactly how many hours/minutes you " +
			"save users. If you save someone 2 hours/week, that's 104 hours/year - worth $2,000+ to most professionals.",
	},
	{
		markers: []string{"manual", "spreadsheet", "email", "paper"},
		paragraph: "🔄 **Process Automation**: You're replacing manual workflows - excellent! These users are already " +
			"paying the 'cost' in time/frustration. Your job is to make the switch obvious and easy.",
	},
}

const problemFallback = "🎯 **Problem Focus**: Your problem statement shows awareness of a real pain point. Sharpen it by " +
	"naming exactly who feels it most acutely and what they do about it today."

// Competitive landscape insights.
var competitionRules = []insightRule{
	{
		markers: []string{"no competition", "no competitors", "nothing like this"},
		paragraph: "🚨 **Red Flag Alert**: 'No competition' usually means no market. People are solving this problem " +
			"somehow - find those workarounds. They're your real competition and your validation goldmine.",
	},
	{
		markers: []string{"expensive", "costly", "price"},
		paragraph: "💰 **Pricing Strategy**: Competing on price alone is dangerous. Instead, find a specific niche where " +
			"you can charge premium prices. Better to own 100% of a small market than 1% of a big one.",
	},
	{
		markers: []string{"complex", "complicated", "difficult"},
		paragraph: "⚡ **Simplicity Advantage**: Complexity is your opportunity. Focus on the 20% of features that solve " +
			"80% of the problem. Your competitive advantage is what you DON'T build.",
	},
}

const competitionFallback = "🏆 **Differentiation Check**: You know the alternatives exist. Next, interview users of each " +
	"one and learn why they stay - switching costs are your real competitor."

// Business model insights.
var businessRules = []insightRule{
	{
		markers: []string{"subscription", "saas", "monthly"},
		paragraph: "📈 **SaaS Model**: Recurring revenue is the holy grail. Your key metrics: Monthly churn <5%, Customer " +
			"Lifetime Value >3x Customer Acquisition Cost. Focus on onboarding - 90% of churn happens in the first 30 days.",
	},
	{
		markers: []string{"marketplace", "commission", "platform"},
		paragraph: "🏪 **Marketplace Dynamics**: You have a chicken-and-egg problem. Start with one side first - usually " +
			"the supply side (easier to recruit). Get 10 great suppliers before focusing on demand.",
	},
	{
		markers: []string{"one-time", "purchase", "buy once"},
		paragraph: "💵 **One-Time Revenue**: Higher upfront prices but no recurring revenue. Focus on referrals and " +
			"upsells. Consider: Can you add a service/support layer for recurring income?",
	},
	{
		markers: []string{"freemium", "free tier"},
		paragraph: "🎁 **Freemium Strategy**: Only 2-5% of free users typically convert. Make sure your free tier creates " +
			"a 'drug-like' dependency. The upgrade should feel inevitable, not optional.",
	},
}

const businessFallback = "💡 **Revenue Clarity**: Your model needs one number: what will one customer pay, and how often? " +
	"Put a price in front of real prospects this week and watch their reaction."

// insightParagraphs returns one paragraph per category in the fixed order
// problem, competition, business model.
func insightParagraphs(problem, competition, business string) []string {
	return []string{
		firstMatch(problemRules, problem, problemFallback),
		firstMatch(competitionRules, competition, competitionFallback),
		firstMatch(businessRules, business, businessFallback),
	}
}

// Interview-script hints keyed off the problem answer.
var interviewHintRules = []insightRule{
	{
		markers:   []string{"time", "efficiency"},
		paragraph: "Walk me through your current process for [their workflow]. How long does it typically take?",
	},
	{
		markers:   []string{"decision", "choose", "compare"},
		paragraph: "Tell me about the last time you had to [make this decision]. What information did you wish you had?",
	},
	{
		markers:   []string{"track", "manage", "organize"},
		paragraph: "Show me how you currently [track/manage] this. What's frustrating about your current system?",
	},
}

const interviewHintFallback = "Tell me about the last time you experienced [their problem]"

// Validation experiments keyed off the business-model answer.
var validationRules = []insightRule{
	{
		markers: []string{"subscription", "saas"},
		paragraph: "**SaaS Validation**: Create a simple landing page with pricing. Track email signups vs. 'Request " +
			"Demo' clicks. Aim for 15%+ conversion to demo requests.",
	},
	{
		markers: []string{"marketplace"},
		paragraph: "**Marketplace Validation**: Start with a simple directory/list. Can you get 50 suppliers to list " +
			"themselves? Then test if people actually search/contact them.",
	},
}

const validationFallback = "**Product Validation**: Create a detailed mockup or demo. Show it to 20 potential customers. " +
	"Ask: 'Would you pay $X for this?' Get specific commitments."

// genericNextSteps close out every personalized plan.
var genericNextSteps = []string{
	"**Competitive Deep Dive**: List every way people currently solve this problem (including doing nothing). " +
		"Interview users of each alternative - why do they stick with it?",
	"**Value Proposition Testing**: Write 3 different one-sentence descriptions of your solution. Test them with " +
		"potential customers. Which one makes them ask 'How does it work?'",
	"**Early Customer Pipeline**: Identify exactly where your ideal customers hang out (online communities, events, " +
		"publications). Start building relationships before you need them.",
}

// nextSteps assembles the ordered step list for the personalized summary.
func nextSteps(problem, business string) []string {
	hint := firstMatch(interviewHintRules, problem, interviewHintFallback)
	steps := []string{
		"**Customer Interview Script**: Start with: \"" + hint + "\" - This gets them telling stories, not giving opinions.",
		firstMatch(validationRules, business, validationFallback),
	}
	return append(steps, genericNextSteps...)
}
