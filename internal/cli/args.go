package cli

type valueKind int

const (
	valueBool valueKind = iota
	valueString
	valueNumber
	valueEmpty // optional-arity flag given without a value
	valueList
)

// value is the tagged union stored per option. Absence from the map and
// a present-but-empty value are different states; the parser never
// writes defaults.
type value struct {
	kind valueKind
	str  string
	num  int
	list []string
}

// Args holds the parsed options and positional arguments. A key exists
// in the underlying map only if the corresponding flag occurred at
// least once on the command line.
type Args struct {
	values map[string]value

	// Positional arguments in original order, including every token
	// that followed a "--" terminator.
	Positional []string
}

func newArgs() *Args {
	return &Args{values: make(map[string]value)}
}

// IsSet reports whether the named option occurred at all.
func (a *Args) IsSet(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Bool reports whether a boolean option was given. Absence reads as
// false; the parser never stores an explicit false.
func (a *Args) Bool(name string) bool {
	v, ok := a.values[name]
	return ok && v.kind == valueBool
}

// String returns a scalar value and whether it was set. A
// present-but-empty optional flag returns ("", true); use Empty to
// tell that state apart from an explicit empty string.
func (a *Args) String(name string) (string, bool) {
	v, ok := a.values[name]
	if !ok || (v.kind != valueString && v.kind != valueEmpty) {
		return "", false
	}
	return v.str, true
}

// Empty reports whether an optional-arity flag was given without a
// value.
func (a *Args) Empty(name string) bool {
	v, ok := a.values[name]
	return ok && v.kind == valueEmpty
}

// Number returns a numeric value and whether it was set.
func (a *Args) Number(name string) (int, bool) {
	v, ok := a.values[name]
	if !ok || v.kind != valueNumber {
		return 0, false
	}
	return v.num, true
}

// Strings returns the accumulated values of a repeatable option in
// occurrence order, or nil if the flag never occurred.
func (a *Args) Strings(name string) []string {
	v, ok := a.values[name]
	if !ok || v.kind != valueList {
		return nil
	}
	return v.list
}

// Len reports how many options were set. Positionals do not count.
func (a *Args) Len() int {
	return len(a.values)
}

func (a *Args) setBool(name string) {
	a.values[name] = value{kind: valueBool}
}

func (a *Args) setString(name, s string) {
	a.values[name] = value{kind: valueString, str: s}
}

func (a *Args) setNumber(name string, n int) {
	a.values[name] = value{kind: valueNumber, num: n}
}

func (a *Args) setEmpty(name string) {
	a.values[name] = value{kind: valueEmpty}
}

func (a *Args) appendString(name, s string) {
	v := a.values[name]
	v.kind = valueList
	v.list = append(v.list, s)
	a.values[name] = v
}

// Named accessors for the fields the defaults resolver and instance
// router consume.

func (a *Args) Help() bool        { return a.Bool("help") }
func (a *Args) Version() bool     { return a.Bool("version") }
func (a *Args) Verbose() bool     { return a.Bool("verbose") }
func (a *Args) NewWindow() bool   { return a.Bool("new-window") }
func (a *Args) ReuseWindow() bool { return a.Bool("reuse-window") }

func (a *Args) LogLevel() (string, bool)      { return a.String("log") }
func (a *Args) Port() (int, bool)             { return a.Number("port") }
func (a *Args) UserDataDir() (string, bool)   { return a.String("user-data-dir") }
func (a *Args) ExtensionsDir() (string, bool) { return a.String("extensions-dir") }
