package interp

// builtin_string.go implements the `string` sub-dispatcher of spec.md §4.6.

func registerStringBuiltins(i *Interp) {
	i.Register("string", cmdString, nil)
}

func cmdString(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) < 2 {
		return i.SetResultErrorArity(argv[0], 2, argv)
	}
	sub := argv[1]
	args := argv[2:]
	switch sub {
	case "length":
		return stringLength(i, argv, args)
	case "toupper":
		return stringToUpper(i, argv, args)
	case "tolower":
		return stringToLower(i, argv, args)
	case "trim":
		return stringTrim(i, argv, args, trim)
	case "trimleft":
		return stringTrim(i, argv, args, trimLeft)
	case "trimright":
		return stringTrim(i, argv, args, trimRight)
	case "reverse":
		return stringReverse(i, argv, args)
	case "index":
		return stringIndex(i, argv, args)
	case "match":
		return stringMatch(i, argv, args)
	case "equal":
		return stringEqual(i, argv, args)
	case "compare":
		return stringCompare(i, argv, args, compareBytes)
	case "compare-no-case":
		return stringCompare(i, argv, args, compareFoldASCII)
	case "repeat":
		return stringRepeat(i, argv, args)
	case "first":
		return stringFirst(i, argv, args)
	case "range":
		return stringRange(i, argv, args)
	case "ordinal":
		return stringOrdinal(i, argv, args)
	case "char":
		return stringChar(i, argv, args)
	case "dec2hex":
		return stringDec2Hex(i, argv, args)
	case "hex2dec":
		return stringHex2Dec(i, argv, args)
	case "hash":
		return stringHash(i, argv, args)
	case "is":
		return stringIs(i, argv, args)
	default:
		return i.SetResultError("unknown or ambiguous subcommand \"" + sub + "\"")
	}
}

func stringLength(i *Interp, argv []string, args []string) Code {
	if len(args) != 1 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	return i.intResult(int64(len(args[0])))
}

func stringToUpper(i *Interp, argv []string, args []string) Code {
	if len(args) != 1 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	return i.ok(toUpper(args[0]))
}

func stringToLower(i *Interp, argv []string, args []string) Code {
	if len(args) != 1 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	return i.ok(toLower(args[0]))
}

func stringTrim(i *Interp, argv []string, args []string, fn func(string, string) string) Code {
	if len(args) != 1 && len(args) != 2 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	cutset := defaultTrimSet
	if len(args) == 2 {
		cutset = args[1]
	}
	return i.ok(fn(args[0], cutset))
}

func stringReverse(i *Interp, argv []string, args []string) Code {
	if len(args) != 1 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	return i.ok(reverseString(args[0]))
}

// stringIndex implements `string index s n` (spec.md §4.6): negative
// indexes count from the end, and the result is clamped into range rather
// than erroring.
func stringIndex(i *Interp, argv []string, args []string) Code {
	if len(args) != 2 {
		return i.SetResultErrorArity(argv[0], 4, argv)
	}
	s := args[0]
	n, err := parseStrictInt(args[1], 10)
	if err != nil {
		return i.SetResultError(err.Error())
	}
	if len(s) == 0 {
		return i.ok("")
	}
	if n < 0 {
		n += int64(len(s))
	}
	if n < 0 {
		n = 0
	}
	if n >= int64(len(s)) {
		n = int64(len(s)) - 1
	}
	return i.ok(string(s[n]))
}

func stringMatch(i *Interp, argv []string, args []string) Code {
	if len(args) != 2 {
		return i.SetResultErrorArity(argv[0], 4, argv)
	}
	return i.intResult(boolInt(globMatch(args[0], args[1])))
}

func stringEqual(i *Interp, argv []string, args []string) Code {
	if len(args) != 2 {
		return i.SetResultErrorArity(argv[0], 4, argv)
	}
	return i.intResult(boolInt(args[0] == args[1]))
}

func stringCompare(i *Interp, argv []string, args []string, fn func(string, string) int) Code {
	if len(args) != 2 {
		return i.SetResultErrorArity(argv[0], 4, argv)
	}
	return i.intResult(int64(fn(args[0], args[1])))
}

func stringRepeat(i *Interp, argv []string, args []string) Code {
	if len(args) != 2 {
		return i.SetResultErrorArity(argv[0], 4, argv)
	}
	n, err := parseStrictInt(args[1], 10)
	if err != nil {
		return i.SetResultError(err.Error())
	}
	if n < 0 {
		return i.SetResultError("string repeat: negative count")
	}
	out := ""
	for k := int64(0); k < n; k++ {
		out += args[0]
	}
	return i.ok(out)
}

// stringFirst implements `string first needle hay [start]` (spec.md §4.6):
// search hay for needle from the optional start offset, returning the
// match's position or -1.
func stringFirst(i *Interp, argv []string, args []string) Code {
	if len(args) != 2 && len(args) != 3 {
		return i.SetResultErrorArity(argv[0], 4, argv)
	}
	needle, hay := args[0], args[1]
	start := int64(0)
	if len(args) == 3 {
		n, err := parseStrictInt(args[2], 10)
		if err != nil {
			return i.SetResultError(err.Error())
		}
		start = n
	}
	if start < 0 {
		start = 0
	}
	if needle == "" || start > int64(len(hay)) {
		return i.intResult(-1)
	}
	for s := int(start); s+len(needle) <= len(hay); s++ {
		if hay[s:s+len(needle)] == needle {
			return i.intResult(int64(s))
		}
	}
	return i.intResult(-1)
}

func stringRange(i *Interp, argv []string, args []string) Code {
	if len(args) != 3 {
		return i.SetResultErrorArity(argv[0], 5, argv)
	}
	s := args[0]
	from, err := parseStrictInt(args[1], 10)
	if err != nil {
		return i.SetResultError(err.Error())
	}
	to, err := parseStrictInt(args[2], 10)
	if err != nil {
		return i.SetResultError(err.Error())
	}
	if from < 0 {
		from = 0
	}
	if to >= int64(len(s)) {
		to = int64(len(s)) - 1
	}
	if from > to || from >= int64(len(s)) {
		return i.ok("")
	}
	return i.ok(s[from : to+1])
}

func stringOrdinal(i *Interp, argv []string, args []string) Code {
	if len(args) != 1 || len(args[0]) == 0 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	return i.intResult(int64(args[0][0]))
}

func stringChar(i *Interp, argv []string, args []string) Code {
	if len(args) != 1 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	n, err := parseStrictInt(args[0], 10)
	if err != nil {
		return i.SetResultError(err.Error())
	}
	if n < 0 || n > 255 {
		return i.SetResultError("string char: value out of range")
	}
	return i.ok(string([]byte{byte(n)}))
}

func stringDec2Hex(i *Interp, argv []string, args []string) Code {
	if len(args) != 1 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	n, err := parseStrictInt(args[0], 10)
	if err != nil {
		return i.SetResultError(err.Error())
	}
	return i.ok(formatBase(n, 16))
}

func stringHex2Dec(i *Interp, argv []string, args []string) Code {
	if len(args) != 1 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	n, err := parseStrictInt(args[0], 16)
	if err != nil {
		return i.SetResultError(err.Error())
	}
	return i.intResult(n)
}

// stringHash implements spec.md §4.6's `string hash`, the same DJB2
// function the command table hashes names with, exposed so scripts can
// reproduce it.
func stringHash(i *Interp, argv []string, args []string) Code {
	if len(args) != 1 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	return i.intResult(int64(djb2(args[0])))
}

// stringIs implements `string is class s` (spec.md §4.6). Most classes are
// per-character ASCII ctype predicates applied to every byte of s; a few
// (false/true/boolean/integer) classify s as a whole word instead.
func stringIs(i *Interp, argv []string, args []string) Code {
	if len(args) != 2 {
		return i.SetResultErrorArity(argv[0], 4, argv)
	}
	class, s := args[0], args[1]
	switch class {
	case "false":
		return i.intResult(boolInt(isBooleanWord(s, falseWords)))
	case "true":
		return i.intResult(boolInt(isBooleanWord(s, trueWords)))
	case "boolean":
		return i.intResult(boolInt(isBooleanWord(s, trueWords) || isBooleanWord(s, falseWords)))
	case "integer":
		_, err := parseStrictInt(s, 10)
		return i.intResult(boolInt(err == nil))
	}
	pred, ok := stringIsClassPredicates[class]
	if !ok {
		return i.SetResultError("unknown class \"" + class + "\"")
	}
	if s == "" {
		return i.intResult(0)
	}
	for idx := 0; idx < len(s); idx++ {
		if !pred(s[idx]) {
			return i.intResult(0)
		}
	}
	return i.intResult(1)
}

var stringIsClassPredicates = map[string]func(byte) bool{
	"alpha":    isAlphaASCII,
	"digit":    isDigitASCII,
	"alnum":    func(c byte) bool { return isAlphaASCII(c) || isDigitASCII(c) },
	"space":    isFieldSpace,
	"upper":    func(c byte) bool { return c >= 'A' && c <= 'Z' },
	"lower":    func(c byte) bool { return c >= 'a' && c <= 'z' },
	"graph":    isGraphASCII,
	"print":    func(c byte) bool { return c >= 0x20 && c < 0x7f },
	"punct":    func(c byte) bool { return isGraphASCII(c) && !isAlphaASCII(c) && !isDigitASCII(c) },
	"xdigit":   func(c byte) bool { _, ok := hexDigit(c); return ok },
	"ascii":    func(c byte) bool { return c < 0x80 },
	"control":  func(c byte) bool { return c < 0x20 || c == 0x7f },
	"wordchar": func(c byte) bool { return isAlphaASCII(c) || isDigitASCII(c) || c == '_' },
}

func isAlphaASCII(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigitASCII(c byte) bool { return c >= '0' && c <= '9' }
func isGraphASCII(c byte) bool { return c > 0x20 && c < 0x7f }

var trueWords = []string{"1", "true", "yes", "on"}
var falseWords = []string{"0", "false", "no", "off"}

func isBooleanWord(s string, words []string) bool {
	for _, w := range words {
		if equalFoldASCII(s, w) {
			return true
		}
	}
	return false
}
