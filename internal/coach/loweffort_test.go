package coach

import "testing"

func TestLowEffort(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		want   bool
	}{
		{"idk", "idk", true},
		{"idk mixed case", "IDK", true},
		{"short", "we sell software", true},
		{"few words padded long enough", "enterprise-procurement-automation!!", true},
		{"repeated run", "this problem is aaaaawful for founders everywhere", true},
		{"filler phrase", "honestly this is just testing the chatbot out for fun", true},
		{"empty", "", true},
		{"clean answer", "Procurement managers at mid-size manufacturers waste hours on manual purchase approvals.", false},
		{"five words twenty chars", "founders struggle validating pricing assumptions", false},
	}
	for _, tc := range cases {
		if got := LowEffort(tc.answer); got != tc.want {
			t.Errorf("%s: LowEffort(%q) = %v, want %v", tc.name, tc.answer, got, tc.want)
		}
	}
}

func TestAnyLowEffort(t *testing.T) {
	good := "Procurement managers at mid-size manufacturers waste hours on manual purchase approvals."
	if AnyLowEffort([]string{good, good, good}) {
		t.Fatal("three substantive answers flagged")
	}
	if !AnyLowEffort([]string{good, "idk", good}) {
		t.Fatal("idk in any slot must flag the set")
	}
}
