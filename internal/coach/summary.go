package coach

import (
	"fmt"
	"strings"
)

// Fixed resource links surfaced in generated text.
const (
	SchedulingURL = "https://calendly.com/tashmoney/moneyenginebot"
	SupportEmail  = "tash@moneyengine.co"
)

const noResponse = "No response provided"

// funnelBenchmarks is the static metrics block appended to every
// personalized summary.
const funnelBenchmarks = `📊 **Key Funnel Metrics to Track:**
• **Discovery Interviews**: Target 20 interviews → 14+ confirm the problem exists (70% validation rate)
• **Solution Interviews**: Target 15 solution demos → 10+ say "I'd use this" (67% interest rate)
• **Pricing Validation**: Target 10 pricing conversations → 6+ give specific budget ranges (60% buying intent)
• **Early Adopter Pipeline**: Target 100 prospects → 20 email signups → 5 pilot customers (5% conversion)
• **Pilot to Paid**: Target 5 pilot users → 3 convert to paid (60% pilot conversion)`

// Summarize produces the end-of-session document from the three collected
// answers (problem, competition, business model). If any answer is low
// effort, the need-more-detail template is produced instead of keyword
// insights. Output for identical input is byte-identical.
func Summarize(firstName string, answers []string) string {
	if firstName == "" {
		firstName = "there"
	}
	problem := answerAt(answers, 0)
	competition := answerAt(answers, 1)
	business := answerAt(answers, 2)

	if AnyLowEffort([]string{problem, competition, business}) {
		return needMoreDetail(firstName, problem, competition, business)
	}
	return personalized(firstName, problem, competition, business)
}

func answerAt(answers []string, i int) string {
	if i < len(answers) {
		return answers[i]
	}
	return ""
}

func recapBlock(problem, competition, business string) string {
	return "**Problem & Jobs-To-Be-Done Analysis:**\n" + orPlaceholder(problem) + "\n\n" +
		"**Competitive Landscape & Differentiation:**\n" + orPlaceholder(competition) + "\n\n" +
		"**Business Model & Revenue Strategy:**\n" + orPlaceholder(business)
}

func orPlaceholder(answer string) string {
	if answer == "" {
		return noResponse
	}
	return answer
}

func needMoreDetail(firstName, problem, competition, business string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s! Thanks for completing the three foundational questions. I'd love to provide you with more detailed, personalized insights about your startup.\n\n", firstName)
	b.WriteString("🎯 **Your Current Responses:**\n\n")
	b.WriteString(recapBlock(problem, competition, business))
	b.WriteString("\n\n💡 **Getting More Value:**\n\n")
	b.WriteString("I'd love to give you more specific and actionable advice! When I understand more details about your unique situation, I can provide much better insights.\n\n")
	b.WriteString(`📋 **For Even Better Insights, Consider Sharing:**

**For Problem Discovery, I need to know:**
• Who specifically has this problem? (demographics, job titles, company size)
• What exact words do they use to describe the problem?
• What triggers them to look for a solution?
• What's the cost of NOT solving this problem?
• What "job" are they trying to get done?

**For Competitive Analysis, tell me:**
• What are people using RIGHT NOW to solve this?
• Why do current solutions fail them?
• What would make someone switch to your solution?
• What's your unfair advantage?

**For Business Model, be specific about:**
• Exactly how you'll make money (pricing model)
• What evidence suggests people will pay?
• What's your target price point and why?
• How will you acquire customers?

🚀 **Next Steps:**

1. **Book a Strategy Call** to discuss your startup in depth with a human coach
2. **Upgrade to Pro** for unlimited questions and deeper analysis
3. **Use the Templates** to structure your customer research

📞 **Let's Dive Deeper:**
I'd love to chat more about your startup! Book a free 15-minute strategy call:

**📞 [Schedule Your Free 15-Min Strategy Call →](` + SchedulingURL + `)**

💪 **Ready for More?**
Consider upgrading to Pro for unlimited coaching questions. We can work together to build a validation plan that fits your specific startup.

Your startup journey is exciting - I'm here to help you succeed! 🎯`)
	return b.String()
}

func personalized(firstName, problem, competition, business string) string {
	insights := insightParagraphs(problem, competition, business)
	steps := nextSteps(problem, business)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s! Based on our conversation, here's your personalized startup analysis:\n\n", firstName)
	b.WriteString("🎯 **Your Startup Foundation Recap:**\n\n")
	b.WriteString(recapBlock(problem, competition, business))
	b.WriteString("\n\n💡 **Personalized Insights for Your Startup:**\n")
	b.WriteString(strings.Join(insights, "\n\n"))
	b.WriteString("\n\n📋 **Your Specific Next Steps:**\n")
	for i, step := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	b.WriteString("\n")
	b.WriteString(funnelBenchmarks)
	b.WriteString("\n\n📧 **Get Your Summary & Next Steps:**\n")
	b.WriteString(`I'm sending a copy of this analysis to your email for easy reference. You'll also receive:
• Detailed customer interview templates
• Experiment tracking spreadsheets
• Weekly validation tips

📅 **Want to Discuss Your Strategy?**
Book a free 15-minute strategy call to discuss your specific situation and get personalized advice.

**📞 [Schedule Your Free 15-Min Strategy Call →](` + SchedulingURL + `)**

🚀 **Ready for Unlimited Coaching?**
Upgrade to Pro to get:
• Unlimited personalized coaching questions
• Custom experiment templates for your business model
• Real-time validation tracking dashboard
• Direct access to your coach for strategic guidance

`)
	fmt.Fprintf(&b, "%s, are you ready to take the next step in validating your startup?", firstName)
	return b.String()
}
