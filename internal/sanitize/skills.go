package sanitize

import "strings"

// skillVocabulary is the fixed list matched against descriptions. Matching is
// a case-insensitive substring test, so entries are lowercase.
var skillVocabulary = []string{
	"javascript",
	"typescript",
	"python",
	"java",
	"golang",
	"rust",
	"c++",
	"c#",
	"ruby",
	"php",
	"swift",
	"kotlin",
	"scala",
	"react",
	"angular",
	"vue",
	"next.js",
	"node",
	"django",
	"flask",
	"spring",
	"rails",
	".net",
	"sql",
	"postgresql",
	"mysql",
	"mongodb",
	"redis",
	"elasticsearch",
	"kafka",
	"rabbitmq",
	"graphql",
	"rest api",
	"grpc",
	"aws",
	"azure",
	"gcp",
	"docker",
	"kubernetes",
	"terraform",
	"ansible",
	"jenkins",
	"ci/cd",
	"git",
	"linux",
	"machine learning",
	"deep learning",
	"data science",
	"devops",
	"microservices",
	"agile",
	"scrum",
}

// ExtractSkills matches the description against the fixed vocabulary plus any
// extra entries, case-insensitive, duplicates removed.
func ExtractSkills(description string, extra ...string) []string {
	if strings.TrimSpace(description) == "" {
		return nil
	}
	low := strings.ToLower(description)

	seen := map[string]bool{}
	var out []string
	match := func(entries []string) {
		for _, sk := range entries {
			k := strings.ToLower(strings.TrimSpace(sk))
			if k == "" || seen[k] {
				continue
			}
			if strings.Contains(low, k) {
				seen[k] = true
				out = append(out, sk)
			}
		}
	}
	match(skillVocabulary)
	match(extra)
	return out
}
