// Package dictionary provides the reference term lists used for keyword
// extraction. The built-in lists are static; callers combine them with
// AI-suggested and user-supplied terms into an immutable Snapshot that is
// passed into every extraction call.
package dictionary

import "github.com/jonathan/resume-analyzer/internal/types"

// technicalSkills lists known languages, frameworks, databases, and platforms.
var technicalSkills = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Ruby", "PHP",
	"Swift", "Kotlin", "Go", "Rust", "Scala", "Elixir", "Perl", "R",
	"React", "Angular", "Vue", "Svelte", "Node.js", "Express", "Next.js",
	"Django", "Flask", "FastAPI", "Spring", "Rails", ".NET", "Laravel",
	"HTML", "CSS", "Sass", "Tailwind", "Bootstrap",
	"SQL", "NoSQL", "MongoDB", "PostgreSQL", "MySQL", "SQLite", "Redis",
	"Elasticsearch", "Cassandra", "DynamoDB", "Kafka", "RabbitMQ",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Ansible",
	"Linux", "Git", "GitHub", "GitLab", "CI/CD", "Jenkins",
	"REST", "API", "GraphQL", "gRPC", "WebSocket", "OAuth",
	"Microservices", "Serverless", "Machine Learning", "TensorFlow", "PyTorch",
	"Pandas", "NumPy", "Spark", "Hadoop",
}

// softSkills lists interpersonal and organizational skills.
var softSkills = []string{
	"Leadership", "Communication", "Teamwork", "Problem Solving",
	"Critical Thinking", "Time Management", "Collaboration", "Adaptability",
	"Creativity", "Attention to Detail", "Mentoring", "Negotiation",
	"Presentation", "Decision Making", "Conflict Resolution",
}

// tools lists named products used in software work.
var tools = []string{
	"VS Code", "IntelliJ", "Eclipse", "Xcode", "Vim",
	"Figma", "Sketch", "Photoshop",
	"Slack", "Jira", "Confluence", "Trello", "Asana", "Notion",
	"Postman", "Tableau", "Power BI", "Excel", "Salesforce",
	"Datadog", "Grafana", "Splunk",
}

// certifications lists certifications and degree credentials.
var certifications = []string{
	"AWS Certified", "Azure Certified", "Google Cloud Certified",
	"PMP", "Scrum Master", "CSM", "CISSP", "CompTIA", "CKA", "CKAD",
	"Six Sigma", "ITIL",
	"Bachelor's", "Master's", "MBA", "PhD",
}

// BuiltIn returns the static built-in dictionary snapshot.
func BuiltIn() Snapshot {
	return Snapshot{
		Technical:      technicalSkills,
		Soft:           softSkills,
		Tools:          tools,
		Certifications: certifications,
	}
}

// Snapshot is an immutable set of term lists for one extraction call.
// Callers own the snapshot's refresh lifecycle: merging AI-suggested lists,
// appending custom terms, and deciding when to refetch all happen before the
// snapshot is handed to the extractor. The extractor never mutates it.
type Snapshot struct {
	Technical      []string
	Soft           []string
	Tools          []string
	Certifications []string
	// Custom terms are user-supplied. They are never overlap-checked
	// against the built-in lists: a term present in both places yields a
	// separate Keyword record per category, so a user's custom priority
	// is never silently absorbed.
	Custom []string
}

// WithCustom returns a copy of the snapshot with the given custom terms.
func (s Snapshot) WithCustom(custom []string) Snapshot {
	out := s
	out.Custom = append([]string(nil), custom...)
	return out
}

// Merge returns a copy of the snapshot with the other snapshot's terms
// unioned in per category. Duplicates (case-insensitive) are dropped so a
// term suggested by the AI service on top of a built-in entry is matched
// only once.
func (s Snapshot) Merge(other Snapshot) Snapshot {
	return Snapshot{
		Technical:      unionTerms(s.Technical, other.Technical),
		Soft:           unionTerms(s.Soft, other.Soft),
		Tools:          unionTerms(s.Tools, other.Tools),
		Certifications: unionTerms(s.Certifications, other.Certifications),
		Custom:         unionTerms(s.Custom, other.Custom),
	}
}

// Lists returns the snapshot's term lists paired with their categories, in
// extraction order. Custom is last so built-in records are created first and
// custom duplicates of built-in terms still emit their own records.
func (s Snapshot) Lists() []CategoryList {
	return []CategoryList{
		{Category: types.CategoryTechnical, Terms: s.Technical},
		{Category: types.CategorySoft, Terms: s.Soft},
		{Category: types.CategoryTool, Terms: s.Tools},
		{Category: types.CategoryCertification, Terms: s.Certifications},
		{Category: types.CategoryCustom, Terms: s.Custom},
	}
}

// CategoryList pairs a category with its term list.
type CategoryList struct {
	Category types.Category
	Terms    []string
}

// unionTerms appends terms from b that are not already in a,
// case-insensitively, preserving order.
func unionTerms(a, b []string) []string {
	if len(b) == 0 {
		return append([]string(nil), a...)
	}

	seen := make(map[string]bool, len(a))
	out := make([]string, 0, len(a)+len(b))
	for _, term := range a {
		key := foldTerm(term)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, term)
	}
	for _, term := range b {
		key := foldTerm(term)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, term)
	}
	return out
}
