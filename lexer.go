package argot

import "strings"

// TokenType classifies a lexed command-line word.
type TokenType int

const (
	// TokenValue is a plain word: a command name, a flag value or a positional argument.
	TokenValue TokenType = iota
	// TokenFlag is a long flag ("--name"). Value holds the name without dashes.
	TokenFlag
	// TokenShortFlag is a single short flag character ("-v", or one letter of "-lv").
	TokenShortFlag
	// TokenDoubleDash is the "--" passthrough marker.
	TokenDoubleDash
	// TokenEnd terminates every token stream.
	TokenEnd
)

func (t TokenType) String() string {
	switch t {
	case TokenValue:
		return "value"
	case TokenFlag:
		return "flag"
	case TokenShortFlag:
		return "short-flag"
	case TokenDoubleDash:
		return "double-dash"
	case TokenEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Token is one lexical unit of argv.
type Token struct {
	Type  TokenType
	Value string
	// Raw is the text the token was produced from. For the value half of
	// "--name=value" it is the value itself.
	Raw string
}

// Tokenize converts argv (program name already stripped) into tokens. The
// result always ends with exactly one TokenEnd. Every input is accepted.
//
// Short flags are split per character, so "-lv" yields l and v. Inline short
// values are not recognized: "-p3000" yields p, 3, 0, 0, 0.
func Tokenize(argv []string) []Token {
	tokens := make([]Token, 0, len(argv)+1)
	passthrough := false

	for _, arg := range argv {
		switch {
		case passthrough:
			tokens = append(tokens, Token{Type: TokenValue, Value: arg, Raw: arg})

		case arg == "--":
			tokens = append(tokens, Token{Type: TokenDoubleDash, Value: arg, Raw: arg})
			passthrough = true

		case strings.HasPrefix(arg, "--"):
			body := arg[2:]
			if name, value, ok := strings.Cut(body, "="); ok {
				tokens = append(tokens,
					Token{Type: TokenFlag, Value: name, Raw: arg},
					Token{Type: TokenValue, Value: value, Raw: value},
				)
				continue
			}
			tokens = append(tokens, Token{Type: TokenFlag, Value: body, Raw: arg})

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			for _, r := range arg[1:] {
				tokens = append(tokens, Token{Type: TokenShortFlag, Value: string(r), Raw: "-" + string(r)})
			}

		default:
			tokens = append(tokens, Token{Type: TokenValue, Value: arg, Raw: arg})
		}
	}

	return append(tokens, Token{Type: TokenEnd})
}
