package krinkle

// WedgeRule controls how tiles of one wedge copy are striped.
// Reverse flips the stripe direction; Start rotates the palette.
type WedgeRule struct {
	Reverse bool
	Start   int
}

// WedgeColors binds per-wedge rules to one parameter combination. An
// entry applies only when its Count, M, K and N all match the current
// generation call. Rules is sparse: wedge indices without an entry get
// the default rule.
type WedgeColors struct {
	Count   int
	M, K, N int
	Rules   map[int]WedgeRule
}

// ColorConfig is the colouring configuration consulted by the colour
// indexer. It is an immutable value passed per generation call, never
// package state. Count is the palette size; zero means "use the palette
// length".
type ColorConfig struct {
	Count  int
	Wedges []WedgeColors
}

// rulesFor returns the per-wedge overrides whose parameters match, or
// nil when no entry applies.
func (cfg ColorConfig) rulesFor(p Params, count int) map[int]WedgeRule {
	for _, w := range cfg.Wedges {
		if w.Count == count && w.M == p.M && w.K == p.K && w.N == p.N {
			return w.Rules
		}
	}
	return nil
}

// resolve fixes the effective colour count and rule set for one call.
func (o *genOptions) resolve(p Params) {
	o.count = o.config.Count
	if o.count <= 0 {
		o.count = len(o.palette)
	}
	o.rules = o.config.rulesFor(p, o.count)
}

// colorIndex maps a tile position and owning wedge copy to a palette
// index in [0, count).
//
// Without a matching rule set every tile of a wedge shares the colour
// wedge mod count. With one, tiles are striped along r+c: the wedge's
// rule (or the default rule, Reverse on odd wedges with Start = wedge
// mod count) decides stripe direction and palette rotation.
func colorIndex(r, c, wedge, count int, rules map[int]WedgeRule) int {
	if count <= 0 {
		return 0
	}
	if rules == nil {
		return mod(wedge, count)
	}
	rule, ok := rules[wedge]
	if !ok {
		rule = WedgeRule{Reverse: wedge%2 != 0, Start: mod(wedge, count)}
	}
	base := mod(r+c, count)
	if rule.Reverse {
		base = mod(count-base, count)
	}
	return mod(base+rule.Start, count)
}
