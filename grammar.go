package argot

// GrammarNode is the result of parsing one argv. It is built fresh for every
// invocation.
type GrammarNode struct {
	// Commands holds the leading words seen before any flag or "--".
	Commands []string
	Flags    Values
	// Args holds every other plain word in order.
	Args []string
}

// ParseArgv tokenizes argv and parses the tokens. See ParseTokens.
func ParseArgv(argv []string, defs map[string]FlagDefinition, shortToLong map[string]string) *GrammarNode {
	return ParseTokens(Tokenize(argv), defs, shortToLong)
}

// ParseTokens runs a single forward pass over tokens.
//
// Words seen before the first flag or "--" are command words. A flag declared
// non-boolean takes the raw text of the next token as its value, whatever that
// token is. Undeclared flags are accepted and set to true. A non-array flag
// given twice is promoted to a two-element array, further occurrences append;
// an array flag appends from its first occurrence. A flag still waiting for a
// value at the end of input stays unset.
func ParseTokens(tokens []Token, defs map[string]FlagDefinition, shortToLong map[string]string) *GrammarNode {
	node := &GrammarNode{
		Commands: []string{},
		Flags:    Values{},
		Args:     []string{},
	}

	commandPhase := true
	expectValue := ""

	for _, tok := range tokens {
		if tok.Type == TokenEnd {
			break
		}

		if tok.Type == TokenDoubleDash {
			commandPhase = false
			expectValue = ""
			continue
		}

		if expectValue != "" {
			def := defs[expectValue]
			node.set(expectValue, coerce(tok.Raw, def.Type), def.Array)
			expectValue = ""
			continue
		}

		switch tok.Type {
		case TokenFlag, TokenShortFlag:
			commandPhase = false
			name := tok.Value
			if tok.Type == TokenShortFlag {
				if long, ok := shortToLong[name]; ok {
					name = long
				}
			}

			def, declared := defs[name]
			switch {
			case !declared:
				node.set(name, true, false)
			case def.Type == Boolean:
				node.set(name, true, def.Array)
			default:
				expectValue = name
			}

		case TokenValue:
			if commandPhase {
				node.Commands = append(node.Commands, tok.Value)
			} else {
				node.Args = append(node.Args, tok.Value)
			}
		}
	}

	return node
}

// set stores a flag value. Declared arrays always append; a repeated scalar is
// promoted to an array holding the old and new values.
func (n *GrammarNode) set(name string, value any, array bool) {
	prev, seen := n.Flags[name]
	switch {
	case array:
		arr, _ := prev.([]any)
		n.Flags[name] = append(arr, value)
	case !seen:
		n.Flags[name] = value
	default:
		if arr, ok := prev.([]any); ok {
			n.Flags[name] = append(arr, value)
			return
		}
		n.Flags[name] = []any{prev, value}
	}
}
