package coach

// ControlledQuestion is one step of the fixed free-tier script.
type ControlledQuestion struct {
	Question    string
	Placeholder string
	FollowUp    string
}

// Script is the ordered three-question free-tier script. Free accounts walk
// it exactly once; the answer indices map to the categories problem,
// competition and business model.
var Script = []ControlledQuestion{
	{
		Question: "Let's start with the foundation of your startup. I need to understand three key things:\n\n" +
			"1) What specific problem does your startup solve, and who exactly experiences this problem?\n" +
			"2) What 'job' are your customers currently 'hiring' other solutions to do? (Think about what they're trying to accomplish, not just the problem)\n" +
			"3) What triggers someone to look for a solution like yours?\n\n" +
			"Be as detailed as possible about your target audience and the underlying job they need done.",
		Placeholder: "Describe the problem, target customers, the 'job to be done', and what triggers the need...",
		FollowUp:    "Great! Understanding your problem and audience is crucial. Now let's explore the competitive landscape...",
	},
	{
		Question: "Now I'd like to understand your competitive advantage. How are people currently solving this problem " +
			"without your solution, and what makes your approach better or different?",
		Placeholder: "Explain current solutions and why yours is better...",
		FollowUp:    "Excellent insight into your differentiation. Now let's talk about the business model...",
	},
	{
		Question: "Finally, let's discuss sustainability and validation. How will you make money from this solution, " +
			"and what evidence do you have (or plan to gather) that people will actually pay for it?",
		Placeholder: "Describe your revenue model and any validation evidence...",
		FollowUp:    "Perfect! You've covered the three foundational elements every successful startup needs to address.",
	},
}

// ClosingRemark is appended to the final follow-up once the script is done.
const ClosingRemark = "\n\nYou've now answered the three most critical questions for any startup. " +
	"Let me provide you with a comprehensive analysis and next steps based on your responses."

// FreeGreeting opens a free-tier session and carries the first prompt.
func FreeGreeting(firstName string) string {
	return "Hi " + firstName + "! I'm your AI startup coach. I'm here to help you validate your ideas and overcome challenges. " +
		"Let's start by exploring the three foundational questions that every successful startup must answer, " +
		"including the critical \"Jobs To Be Done\" framework that most founders overlook.\n\n" +
		Script[0].Question
}

// PaidGreeting opens a pro/premium session.
func PaidGreeting(firstName string) string {
	return "Hi " + firstName + "! I'm your AI startup coach. I'm here to help you validate your ideas, " +
		"overcome challenges, and grow your business. What's the biggest challenge you're facing with your startup right now?"
}

// ScriptedReply builds the bot reply to the free-tier answer at the given
// index: the follow-up for that prompt plus the next prompt, or the closing
// remark after the last one. ok is false when the index is outside the
// script.
func ScriptedReply(answerIndex int) (reply string, ok bool) {
	if answerIndex < 0 || answerIndex >= len(Script) {
		return "", false
	}
	if answerIndex == len(Script)-1 {
		return Script[answerIndex].FollowUp + ClosingRemark, true
	}
	return Script[answerIndex].FollowUp + "\n\n" + Script[answerIndex+1].Question, true
}

// PlaceholderFor returns the composer placeholder for the next free-tier
// prompt, or the generic paid-tier placeholder.
func PlaceholderFor(answerIndex int, free bool) string {
	if free && answerIndex >= 0 && answerIndex < len(Script) {
		return Script[answerIndex].Placeholder
	}
	return "Ask me anything about your startup..."
}
