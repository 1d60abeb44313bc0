package coach

import "strings"

// Heuristics for answers too thin to analyze. An answer is flagged when any
// one of them holds; flagged sessions get the need-more-detail summary
// instead of keyword insights.
const (
	minAnswerLength = 20
	minAnswerWords  = 5
	repeatRunLength = 4
)

// stopAnswers are exact (case-insensitive) throwaway answers.
var stopAnswers = []string{
	"test", "testing", "idk", "i don't know", "nothing", "none", "no", "yes", "maybe",
	"crap", "garbage", "trash", "whatever", "dunno", "stuff", "things",
}

// fillerPhrases flag an answer wherever they appear.
var fillerPhrases = []string{
	"just testing",
	"random text",
}

// LowEffort reports whether an answer is too short or generic to analyze.
func LowEffort(answer string) bool {
	trimmed := strings.TrimSpace(answer)
	if len(trimmed) < minAnswerLength {
		return true
	}
	lowered := strings.ToLower(trimmed)
	for _, stop := range stopAnswers {
		if lowered == stop {
			return true
		}
	}
	if len(strings.Fields(trimmed)) < minAnswerWords {
		return true
	}
	if hasRepeatRun(trimmed, repeatRunLength) {
		return true
	}
	for _, phrase := range fillerPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}

// AnyLowEffort reports whether any collected answer is low effort.
func AnyLowEffort(answers []string) bool {
	for _, a := range answers {
		if LowEffort(a) {
			return true
		}
	}
	return false
}

// hasRepeatRun reports whether s contains n identical consecutive runes.
func hasRepeatRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}
