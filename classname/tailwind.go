package classname

import (
	"slices"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// TailwindResolver resolves conflicts with the Tailwind CSS utility groups.
type TailwindResolver struct{}

// Resolve implements [Resolver].
//
// twmerge decides which tokens survive but does not keep their order, so
// the survivors are read back from tokens, last occurrence first.
func (TailwindResolver) Resolve(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}

	survivors := make(map[string]struct{}, len(tokens))
	for _, t := range strings.Fields(twmerge.Merge(strings.Join(tokens, " "))) {
		survivors[t] = struct{}{}
	}

	out := make([]string, 0, len(survivors))
	for i := len(tokens) - 1; i >= 0; i-- {
		t := tokens[i]
		if _, ok := survivors[t]; !ok {
			continue
		}
		delete(survivors, t)
		out = append(out, t)
	}
	slices.Reverse(out)
	return out
}
