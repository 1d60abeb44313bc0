package resources

// Template documents handed to founders from the resources surface. The
// contents ship with the binary and are materialized to disk on startup so
// operators can tweak the copy without a release.

const interviewTemplateKey = "customer-interview-template.txt"

const interviewTemplate = `CUSTOMER INTERVIEW TEMPLATE
===========================

PREPARATION:
- Research the interviewee's background
- Prepare 5-7 open-ended questions
- Set up recording (with permission)
- Block 30-45 minutes

OPENING (5 minutes):
"Hi [Name], thanks for taking the time. I'm working on [brief description] and would love to learn about your experience with [problem area]. This isn't a sales call - I'm just trying to understand the problem better. Mind if I record this for my notes?"

PROBLEM DISCOVERY (15-20 minutes):
1. "Tell me about the last time you experienced [problem]."
   - Follow up: "Walk me through that process step by step."
   - Follow up: "What was most frustrating about that?"

2. "How do you currently handle [situation]?"
   - Follow up: "What tools/methods do you use?"
   - Follow up: "What do you like/dislike about that approach?"

3. "What triggers you to look for a solution to this?"
   - Follow up: "How often does this happen?"
   - Follow up: "What's the cost of not solving it?"

SOLUTION VALIDATION (10-15 minutes):
4. "I'm thinking about building [brief solution description]. What's your initial reaction?"
   - Follow up: "What concerns would you have?"
   - Follow up: "What would make you definitely want to try it?"

CLOSING (5 minutes):
5. "Who else do you know who has this problem?"
   - Ask for 2-3 referrals
   - "Would you be interested in seeing an early version?"

6. "Any questions for me?"

TIPS FOR SUCCESS:
- If doing a Zoom interview, use Fathom to take notes and send summary to customer
- Less is more - Don't feel the need to get through the complete survey. If more time is spent on the problem discovery, it's great
- Take time during the opening to build rapport and make sure the customer is comfortable. Take note of anything in their background that resonates with you to help show you're being observant and that you care

POST-INTERVIEW:
- Send thank you email within 24 hours
- Document key insights immediately
- Follow up on referrals within 48 hours
- Add to your validation tracking sheet

KEY INSIGHTS TO CAPTURE:
- Exact words they use to describe the problem
- Current solutions and their limitations
- Emotional reactions and pain points
- Willingness to pay indicators
- Referral potential

REMEMBER:
- Listen 80%, talk 20%
- Ask "why" and "tell me more" frequently
- Don't pitch your solution too early
- Focus on understanding their world
- Take detailed notes on their exact words
`

const validationTrackerKey = "startup-validation-tracker.csv"

const validationTracker = `CORE VALIDATION METRICS,,,,,
Validation Stage,Target,Actual,Conversion Rate,Notes,Date
Problem Interviews,20,0,0%,,
Problem Validation Rate,70%,0%,,,
Solution Interviews,15,0,0%,,
Solution Interest Rate,67%,0%,,
Pricing Conversations,10,0,0%,,
Budget Confirmation Rate,60%,0%,,
Landing Page Visitors,100,0,0%,,
Email Signups,20,0,20%,,
Demo Requests,5,0,25%,,
Pilot Customers,5,0,100%,,
Pilot to Paid Conversion,3,0,60%,,
Monthly Recurring Revenue,$0,0,,,
Customer Acquisition Cost,$0,0,,,
,,,,,
ADDITIONAL METRICS,,,,,
Validation Stage,Target,Actual,Conversion Rate,Notes,Date
Customer Lifetime Value,$0,0,,,
Churn Rate,5%,0%,,,
Net Promoter Score,50,0,,,
`
