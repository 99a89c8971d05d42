package classname

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/resolver_mock.go -package=mock

// Resolver removes class tokens that are overridden by later tokens of the
// same utility group. Tokens are in input order; the returned slice must keep
// the relative order of the survivors.
type Resolver interface {
	Resolve(tokens []string) []string
}
