package pack

// Decide assigns exactly one verdict to a candidate. The checks run in a
// fixed precedence order; the first matching rule wins:
//
//  1. name override          -> include (size and binary checks still apply)
//  2. prefer-include glob    -> include, over any ignore rule
//  3. ignore glob            -> excluded-by-glob
//  4. excluded extension     -> excluded-by-extension
//  5. include glob           -> include (when prefer-include is off)
//  6. included extension     -> include
//  7. nothing matched        -> no-match
//
// The size limit and the binary sniff are applied downstream, after an
// include verdict, so that rejected paths are never opened.
func (fc *FilterConfig) Decide(c *Candidate) Verdict {
	if _, ok := fc.overrides[c.Base]; ok {
		return VerdictInclude
	}
	if fc.preferInclude && matchAny(c.MatchPath, fc.includeGlobs) {
		return VerdictInclude
	}
	if matchAny(c.MatchPath, fc.ignoreGlobs) {
		return VerdictGlobExcluded
	}
	if _, ok := fc.excludeExts[c.Ext]; ok {
		return VerdictExtExcluded
	}
	if !fc.preferInclude && matchAny(c.MatchPath, fc.includeGlobs) {
		return VerdictInclude
	}
	if _, ok := fc.includeExts[c.Ext]; ok {
		return VerdictInclude
	}
	return VerdictNoMatch
}
