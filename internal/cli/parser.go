package cli

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Parse consumes an argument vector (os.Args minus the program name)
// and produces the typed option map. Tokens are processed left to
// right; the first rule violation aborts the parse with a *ParseError.
func Parse(tokens []string) (*Args, error) {
	args := newArgs()

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		// "--" ends option parsing; everything after it is positional
		// verbatim, even tokens that look like flags.
		if tok == "--" {
			args.Positional = append(args.Positional, tokens[i+1:]...)
			break
		}

		switch {
		case strings.HasPrefix(tok, "--"):
			consumed, err := parseLong(args, tok, tokens[i+1:])
			if err != nil {
				return nil, err
			}
			i += consumed

		case strings.HasPrefix(tok, "-") && len(tok) > 1:
			if err := parseShortCluster(args, tok); err != nil {
				return nil, err
			}

		case tok == "-":
			// A bare dash matches no registered option.
			return nil, errUnknown(tok)

		default:
			args.Positional = append(args.Positional, tok)
		}
	}

	return args, nil
}

// parseLong handles a "--name" or "--name=value" token. rest is the
// remaining token vector; the return value is how many extra tokens
// were consumed as the option's value (0 or 1).
func parseLong(args *Args, tok string, rest []string) (int, error) {
	body := strings.TrimPrefix(tok, "--")
	name, inline, hasInline := strings.Cut(body, "=")

	opt, ok := Lookup(name)
	if !ok {
		return 0, errUnknown("--" + name)
	}

	if opt.Arity == Boolean {
		// Boolean options never accept "=value", so a token carrying
		// one matches nothing in the registry.
		if hasInline {
			return 0, errUnknown(tok)
		}
		args.setBool(opt.Name)
		return 0, nil
	}

	// Resolve the value: inline "=value" wins; otherwise the next token
	// is consumed, but never one that itself looks like an option.
	var val string
	var consumed int
	switch {
	case hasInline:
		val = inline
	case len(rest) > 0 && !strings.HasPrefix(rest[0], "-"):
		val = rest[0]
		consumed = 1
	default:
		if opt.Arity == Optional {
			args.setEmpty(opt.Name)
			return 0, nil
		}
		return 0, errMissingValue(opt.Name)
	}

	if val == "" {
		if opt.Arity == Optional {
			args.setEmpty(opt.Name)
			return consumed, nil
		}
		return 0, errMissingValue(opt.Name)
	}

	val, err := applyKind(opt, val)
	if err != nil {
		return 0, err
	}

	switch {
	case opt.Arity == Repeatable:
		args.appendString(opt.Name, val)
	case opt.Kind == Number:
		n, _ := strconv.Atoi(val)
		args.setNumber(opt.Name, n)
	default:
		args.setString(opt.Name, val)
	}
	return consumed, nil
}

// applyKind validates and normalizes a resolved value per the option's
// kind. Path values are made absolute against the working directory.
func applyKind(opt *OptionSpec, val string) (string, error) {
	switch opt.Kind {
	case Enum:
		for _, allowed := range opt.EnumValues {
			if val == allowed {
				return val, nil
			}
		}
		return "", errInvalidEnum(opt.Name, opt.EnumValues)

	case Number:
		if _, err := strconv.Atoi(val); err != nil {
			return "", errInvalidNumber(opt.Name)
		}
		return val, nil

	case Path:
		abs, err := filepath.Abs(val)
		if err != nil {
			// Abs only fails when the working directory is gone;
			// keep the raw value rather than inventing an error kind.
			return val, nil
		}
		return abs, nil

	default:
		return val, nil
	}
}

// parseShortCluster handles a "-xyz" token. Every letter is a short
// flag for a boolean option. The v letter is overloaded by repetition
// count within this one token: a single v sets --version, two or more
// set --verbose. The tally does not carry across tokens.
func parseShortCluster(args *Args, tok string) error {
	letters := tok[1:]

	switch strings.Count(letters, string(overloadShort)) {
	case 0:
	case 1:
		args.setBool(overloadSingleName)
	default:
		args.setBool(overloadRepeatName)
	}

	for i := 0; i < len(letters); i++ {
		if letters[i] == overloadShort {
			continue
		}
		opt, ok := LookupShort(letters[i])
		if !ok || opt.Arity != Boolean {
			return errUnknown(tok)
		}
		args.setBool(opt.Name)
	}

	return nil
}
