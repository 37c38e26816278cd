package insights

import (
	"strings"

	"slidesmith/internal/core"
)

// frameworkLexicon maps a display label to the substrings that identify
// it in dependency names or file paths. Membership tests only, no fuzzy
// matching and no version logic.
var frameworkLexicon = []struct {
	label      string
	depTokens  []string
	pathTokens []string
}{
	{"React", []string{"react"}, []string{".jsx", ".tsx"}},
	{"Next.js", []string{"next"}, []string{"next.config"}},
	{"Vue", []string{"vue"}, []string{".vue"}},
	{"Svelte", []string{"svelte"}, []string{".svelte"}},
	{"Angular", []string{"@angular"}, []string{"angular.json"}},
	{"Express", []string{"express"}, nil},
	{"Fastify", []string{"fastify"}, nil},
	{"Django", []string{"django"}, []string{"manage.py"}},
	{"Flask", []string{"flask"}, nil},
	{"Rails", []string{"rails"}, []string{"gemfile"}},
	{"Spring", []string{"spring"}, []string{"pom.xml"}},
	{"Gin", []string{"gin-gonic"}, nil},
	{"Echo", []string{"labstack/echo"}, nil},
	{"TypeScript", []string{"typescript"}, []string{"tsconfig.json"}},
	{"Tailwind CSS", []string{"tailwind"}, []string{"tailwind.config"}},
	{"GraphQL", []string{"graphql"}, []string{".graphql"}},
	{"Prisma", []string{"prisma"}, []string{"schema.prisma"}},
	{"Docker", nil, []string{"dockerfile", "docker-compose"}},
	{"Kubernetes", nil, []string{"k8s/", "kubernetes/"}},
	{"Webpack", []string{"webpack"}, []string{"webpack.config"}},
	{"Vite", []string{"vite"}, []string{"vite.config"}},
	{"Jest", []string{"jest"}, []string{"jest.config"}},
	{"Pytest", []string{"pytest"}, []string{"conftest.py"}},
	{"Terraform", nil, []string{".tf"}},
	{"GitHub Actions", nil, []string{".github/workflows"}},
}

// DetectFrameworks returns the framework and tool labels matched
// against dependency names and file paths, in lexicon order.
func DetectFrameworks(meta *core.RepositoryMetadata) []string {
	depNames := make([]string, 0, len(meta.Dependencies))
	for _, d := range meta.Dependencies {
		depNames = append(depNames, strings.ToLower(d.Name))
	}
	paths := normalizedPaths(meta.Files)

	var found []string
	for _, entry := range frameworkLexicon {
		if matchesAny(depNames, entry.depTokens) || matchesAny(paths, entry.pathTokens) {
			found = append(found, entry.label)
		}
	}
	return found
}

func matchesAny(haystacks, tokens []string) bool {
	for _, token := range tokens {
		for _, h := range haystacks {
			if strings.Contains(h, token) {
				return true
			}
		}
	}
	return false
}
