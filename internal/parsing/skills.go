package parsing

// rawSkillTerms is the fixed vocabulary of skill and role terms the screener
// recognizes, as written in job postings. The lookup table below stores their
// stemmed forms so vocabulary entries and normalized tokens compare equal.
var rawSkillTerms = []string{
	"javascript", "python", "java", "sql", "html", "css", "react", "node", "typescript",
	"aws", "docker", "git", "agile", "scrum", "management", "leadership", "communication",
	"experience", "years", "software", "engineer", "developer", "data", "analysis",
}

var skillVocabulary = buildVocabulary(rawSkillTerms)

func buildVocabulary(terms []string) map[string]struct{} {
	vocab := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		vocab[Stem(term)] = struct{}{}
	}
	return vocab
}

// ExtractSkills normalizes text and returns the tokens present in the skill
// vocabulary, deduplicated in first-seen order. Purely advisory: the result
// feeds live UI hinting and skill-gap feedback, never the scores themselves.
func ExtractSkills(text string) []string {
	seen := make(map[string]struct{})
	skills := []string{}
	for _, token := range Normalize(text) {
		if _, known := skillVocabulary[token]; !known {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		skills = append(skills, token)
	}
	return skills
}
