package prompt

import "regexp"

var lawPattern = regexp.MustCompile(`(?i)(Indian\s+\w+\s+Act|IPC|CrPC|CPC|Section\s+\d+)`)

// ExtractLaws returns the distinct statute mentions in answer, in order of
// first appearance, at most max of them. A non-positive max yields none.
func ExtractLaws(answer string, max int) []string {
	if max <= 0 {
		return []string{}
	}
	seen := make(map[string]bool)
	out := []string{}
	for _, m := range lawPattern.FindAllString(answer, -1) {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
		if len(out) == max {
			break
		}
	}
	return out
}
