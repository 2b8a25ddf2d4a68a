package argot

import "slices"

// TrieNode is one node of the command prefix tree. A node owns its children
// exclusively; aliases are plain name lookups into those children.
type TrieNode struct {
	// Segment is the literal path segment this node is keyed by. Empty for the root.
	Segment string
	// Command is the definition stored at this node, if any.
	Command *CommandDefinition

	children map[string]*TrieNode
	aliases  map[string]string
}

func newTrieNode(segment string) *TrieNode {
	return &TrieNode{
		Segment:  segment,
		children: make(map[string]*TrieNode),
		aliases:  make(map[string]string),
	}
}

// Child returns the child keyed by the literal segment name.
func (n *TrieNode) Child(name string) *TrieNode {
	return n.children[name]
}

// Resolve returns the child reached by name, looking name up in the alias
// table first and falling back to the literal segment.
func (n *TrieNode) Resolve(name string) *TrieNode {
	if target, ok := n.aliases[name]; ok {
		name = target
	}
	return n.children[name]
}

// Children returns the literal child segments in ascending order.
func (n *TrieNode) Children() []string {
	return sortedKeys(n.children)
}

// Aliases returns the alias names registered on this node in ascending order.
func (n *TrieNode) Aliases() []string {
	return sortedKeys(n.aliases)
}

// Walk calls fn for every node below n (depth-first, pre-order, children
// sorted) with the node's path relative to n.
func (n *TrieNode) Walk(fn func(path []string, node *TrieNode)) {
	n.walk(nil, fn)
}

func (n *TrieNode) walk(path []string, fn func([]string, *TrieNode)) {
	for _, name := range n.Children() {
		child := n.children[name]
		p := append(slices.Clone(path), name)
		fn(p, child)
		child.walk(p, fn)
	}
}

// BuildRouter builds a trie holding every command of schema, nested commands
// included. Top-level names are inserted in ascending order.
func BuildRouter(schema CommandsSchema) *TrieNode {
	root := newTrieNode("")
	for _, name := range sortedKeys(schema) {
		InsertCommand(root, []string{name}, schema[name])
	}
	return root
}

// InsertCommand stores def at path, creating intermediate nodes as needed. The
// aliases of def are registered on the parent of the terminal node. Nested
// commands of def are inserted below path.
func InsertCommand(root *TrieNode, path []string, def *CommandDefinition) {
	if len(path) == 0 {
		root.Command = def
		return
	}

	parent := root
	for _, seg := range path[:len(path)-1] {
		parent = parent.childOrCreate(seg)
	}

	last := path[len(path)-1]
	node := parent.childOrCreate(last)
	node.Command = def
	if def == nil {
		return
	}

	for _, alias := range def.Aliases {
		if alias == "" || alias == last {
			continue
		}
		parent.aliases[alias] = last
	}

	for _, name := range sortedKeys(def.Commands) {
		InsertCommand(root, append(slices.Clone(path), name), def.Commands[name])
	}
}

func (n *TrieNode) childOrCreate(seg string) *TrieNode {
	child, ok := n.children[seg]
	if !ok {
		child = newTrieNode(seg)
		n.children[seg] = child
	}
	return child
}

// Match is the outcome of FindCommand. MatchedPath and Remaining always
// concatenate to the queried path.
type Match struct {
	// Command is nil when no node along the walk carried a definition.
	Command     *CommandDefinition
	MatchedPath []string
	Remaining   []string
	// Canonical is MatchedPath with aliases replaced by literal segments.
	Canonical []string
}

// Found reports whether a command matched.
func (m Match) Found() bool {
	return m.Command != nil
}

// FindCommand walks path one segment at a time and returns the deepest node
// along the walk that carries a definition. The walk stops at the first
// segment with no child; the unmatched tail is returned in Remaining. It never
// fails: a nil Command is the only signal that nothing matched.
func FindCommand(root *TrieNode, path []string) Match {
	m := Match{
		MatchedPath: []string{},
		Remaining:   slices.Clone(path),
		Canonical:   []string{},
	}
	if root == nil {
		return m
	}
	if m.Remaining == nil {
		m.Remaining = []string{}
	}

	if root.Command != nil {
		m.Command = root.Command
	}

	node := root
	var canonical []string
	for i, seg := range path {
		next := node.Resolve(seg)
		if next == nil {
			break
		}
		node = next
		canonical = append(canonical, next.Segment)
		if node.Command != nil {
			m.Command = node.Command
			m.MatchedPath = slices.Clone(path[:i+1])
			m.Remaining = slices.Clone(path[i+1:])
			m.Canonical = slices.Clone(canonical)
		}
	}
	return m
}

// FindNode returns the node reached by walking the whole of path, or nil if
// any segment does not resolve.
func FindNode(root *TrieNode, path []string) *TrieNode {
	node := root
	for _, seg := range path {
		if node == nil {
			return nil
		}
		node = node.Resolve(seg)
	}
	return node
}
