package common

// Missing returns the entries of want that do not appear in have, in want order.
func Missing(have []string, want ...string) []string {
	set := toSet(have)
	var out []string
	for _, w := range want {
		if _, ok := set[w]; !ok {
			out = append(out, w)
		}
	}
	return out
}

// Keep returns the entries of have that also appear in want, in have order.
func Keep(have []string, want ...string) []string {
	set := toSet(want)
	out := make([]string, 0, len(want))
	for _, h := range have {
		if _, ok := set[h]; ok {
			out = append(out, h)
			delete(set, h)
		}
	}
	return out
}

// FirstSeen returns the distinct values of vals in order of first appearance.
func FirstSeen(vals []string) []string {
	seen := make(map[string]struct{}, len(vals))
	var out []string
	for _, v := range vals {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func toSet(vals []string) map[string]struct{} {
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return set
}
