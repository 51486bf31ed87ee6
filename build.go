package ropes

// fragment cuts text into leafs of at most bound bytes each.
func fragment(text string, bound int, o *owner) []*node {
	if len(text) == 0 {
		return nil
	}
	assert(bound > 0, "internal error: fragment bound must be positive")
	leaves := make([]*node, 0, (len(text)+bound-1)/bound)
	for i := 0; i < len(text); i += bound {
		end := min(i+bound, len(text))
		leaves = append(leaves, makeLeaf(text[i:end], o))
	}
	return leaves
}

// buildTree creates a balanced tree on top of a sequence of nodes, usually leafs.
// Adjacent nodes are paired bottom-up until a single node remains. An odd
// node at the end of a level is carried over to the next level unpaired.
//
// The input slice is not modified. An empty sequence results in nil.
func buildTree(nodes []*node, o *owner) *node {
	if len(nodes) == 0 {
		return nil
	}
	level := make([]*node, len(nodes))
	copy(level, nodes)
	lengths := make([]int, len(level))
	for i, n := range level {
		lengths[i] = n.length()
	}
	for len(level) > 1 {
		k := 0
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				level[k], lengths[k] = level[i], lengths[i]
				k++
				break
			}
			level[k] = makeInner(level[i], level[i+1], lengths[i], o)
			lengths[k] = lengths[i] + lengths[i+1]
			k++
		}
		level, lengths = level[:k], lengths[:k]
	}
	return level[0]
}
