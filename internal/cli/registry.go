package cli

// Arity describes how many values an option consumes.
type Arity int

const (
	// Boolean options take no value; presence means true.
	Boolean Arity = iota
	// Required options consume exactly one value.
	Required
	// Optional options consume at most one value; presence without a
	// value is recorded as a distinct "present but empty" state.
	Optional
	// Repeatable options consume one value per occurrence and
	// accumulate them in order.
	Repeatable
)

// Kind describes how an option's value is interpreted.
type Kind int

const (
	String Kind = iota
	Number
	Enum
	Path
)

// OptionSpec is the immutable descriptor for one recognized option.
type OptionSpec struct {
	Name  string
	Short byte // 0 means no short flag
	Arity Arity
	Kind  Kind

	// EnumValues holds the allowed values for Enum-kind options, in
	// declaration order. Error messages list them in this order.
	EnumValues []string
}

// The -v short flag is overloaded: within a single token, exactly one v
// means --version while two or more mean --verbose. The tally resets per
// token, so "-v -v" is version twice but "-vv" is verbose.
const (
	overloadShort      = 'v'
	overloadSingleName = "version"
	overloadRepeatName = "verbose"
)

// LogLevels are the accepted values of --log, most verbose first.
var LogLevels = []string{"trace", "debug", "info", "warn", "error"}

// options is the full registry, in declaration order.
var options = []OptionSpec{
	{Name: "help", Short: 'h', Arity: Boolean},
	{Name: "version", Short: 'v', Arity: Boolean},
	{Name: "verbose", Arity: Boolean},
	{Name: "new-window", Short: 'n', Arity: Boolean},
	{Name: "reuse-window", Short: 'r', Arity: Boolean},
	{Name: "force", Short: 'f', Arity: Boolean},
	{Name: "open", Arity: Boolean},
	{Name: "list-extensions", Arity: Boolean},
	{Name: "show-versions", Arity: Boolean},
	{Name: "ignore-last-opened", Arity: Boolean},
	{Name: "disable-telemetry", Arity: Boolean},
	{Name: "disable-update-check", Arity: Boolean},

	{Name: "auth", Arity: Required, Kind: Enum, EnumValues: []string{"password", "none"}},
	{Name: "log", Arity: Required, Kind: Enum, EnumValues: LogLevels},
	{Name: "host", Arity: Required, Kind: String},
	{Name: "bind-addr", Arity: Required, Kind: String},
	{Name: "locale", Arity: Required, Kind: String},
	{Name: "port", Arity: Required, Kind: Number},
	{Name: "socket", Arity: Required, Kind: Path},
	{Name: "cert", Arity: Optional, Kind: Path},
	{Name: "cert-key", Arity: Required, Kind: Path},
	{Name: "user-data-dir", Arity: Required, Kind: Path},
	{Name: "extensions-dir", Arity: Required, Kind: Path},

	{Name: "install-extension", Arity: Repeatable, Kind: String},
	{Name: "uninstall-extension", Arity: Repeatable, Kind: String},
	{Name: "enable", Arity: Repeatable, Kind: String},
	{Name: "proxy-domain", Arity: Repeatable, Kind: String},
}

var (
	byLong  = make(map[string]*OptionSpec)
	byShort = make(map[byte]*OptionSpec)
)

func init() {
	for i := range options {
		opt := &options[i]
		if _, dup := byLong[opt.Name]; dup {
			panic("cli: duplicate option name " + opt.Name)
		}
		byLong[opt.Name] = opt

		if opt.Short == 0 {
			continue
		}
		if _, dup := byShort[opt.Short]; dup {
			panic("cli: duplicate short flag " + string(opt.Short))
		}
		byShort[opt.Short] = opt
	}
}

// Lookup returns the spec for a long option name.
func Lookup(name string) (*OptionSpec, bool) {
	opt, ok := byLong[name]
	return opt, ok
}

// LookupShort returns the spec for a short flag letter. Short flags only
// ever map to boolean options.
func LookupShort(c byte) (*OptionSpec, bool) {
	opt, ok := byShort[c]
	return opt, ok
}

// Options returns the registry in declaration order, for help output.
func Options() []OptionSpec {
	return options
}
