package synergy

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithMinGames sets the minimum number of joint games a partnership
// needs before it appears in the output. Pairs below it are excluded,
// not zero-scored.
func WithMinGames(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.minGames = n
		}
	}
}
