package algorithms

import "strings"

// CalculateMatchScore scores how well an engineer's skills cover a project's
// required skills (0-100). Comparison is case-insensitive. The second return
// value lists the skills that matched.
func CalculateMatchScore(requiredSkills, engineerSkills []string) (float64, []string) {
	if len(requiredSkills) == 0 {
		return 0, nil
	}

	have := make(map[string]string, len(engineerSkills))
	for _, s := range engineerSkills {
		have[normalizeSkill(s)] = s
	}

	var matched []string
	for _, rs := range requiredSkills {
		if _, ok := have[normalizeSkill(rs)]; ok {
			matched = append(matched, rs)
		}
	}

	score := float64(len(matched)) / float64(len(requiredSkills)) * 100.0
	return score, matched
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
