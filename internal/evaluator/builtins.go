package evaluator

import (
	"math"
	"math/rand"
	"strconv"
	"strings"

	cerrors "github.com/SlashZ6/Pseudocode-Interpreter/internal/errors"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/runtime"
)

type builtinFunc func(line int, args []runtime.Value) (runtime.Value, error)

type builtin struct {
	arities []int // accepted argument counts
	fn      builtinFunc
}

// builtins is the case-insensitive table of built-in functions, matching
// the fixed name/arity contract. Keys are lower-case.
var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		"sqrt":              {[]int{1}, builtinSqrt},
		"round":             {[]int{1}, builtinRound},
		"abs":               {[]int{1}, builtinAbs},
		"cos":               {[]int{1}, trig(math.Cos)},
		"sin":               {[]int{1}, trig(math.Sin)},
		"tan":               {[]int{1}, trig(math.Tan)},
		"power":             {[]int{2}, builtinPower},
		"random":            {[]int{2}, builtinRandom},
		"tointeger":         {[]int{1}, builtinToInteger},
		"toreal":            {[]int{1}, builtinToReal},
		"stringtointeger":   {[]int{1}, builtinStringToInteger},
		"stringtoreal":      {[]int{1}, builtinStringToReal},
		"isinteger":         {[]int{1}, builtinIsInteger},
		"isreal":            {[]int{1}, builtinIsReal},
		"currencyformat":    {[]int{1}, builtinCurrencyFormat},
		"length":            {[]int{1}, builtinLength},
		"toupper":           {[]int{1}, builtinToUpper},
		"tolower":           {[]int{1}, builtinToLower},
		"append":            {[]int{2}, builtinAppend},
		"contains":          {[]int{2}, builtinContains},
		"substring":         {[]int{2, 3}, builtinSubstring},
	}
}

func lookupBuiltin(name string) (builtin, bool) {
	b, ok := builtins[strings.ToLower(name)]
	return b, ok
}

func checkArity(name string, line int, args []runtime.Value, b builtin) error {
	for _, n := range b.arities {
		if len(args) == n {
			return nil
		}
	}
	return cerrors.New(cerrors.SemanticError, line, "%s expects %d argument(s) but got %d", name, b.arities[0], len(args))
}

func requireNumeric(name string, line int, v runtime.Value) error {
	if !v.IsNumeric() {
		return cerrors.New(cerrors.TypeError, line, "%s requires a numeric argument", name)
	}
	return nil
}

func requireString(name string, line int, v runtime.Value) error {
	if v.Kind != runtime.StringKind {
		return cerrors.New(cerrors.TypeError, line, "%s requires a string argument", name)
	}
	return nil
}

func builtinSqrt(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireNumeric("sqrt", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	return runtime.NewReal(math.Sqrt(args[0].AsFloat())), nil
}

func builtinRound(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireNumeric("round", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	// Round-half-away-from-zero, matching math.Round.
	return runtime.NewInteger(int64(math.Round(args[0].AsFloat()))), nil
}

func builtinAbs(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireNumeric("abs", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	v := args[0]
	if v.Kind == runtime.IntegerKind {
		if v.I < 0 {
			return runtime.NewInteger(-v.I), nil
		}
		return v, nil
	}
	return runtime.NewReal(math.Abs(v.R)), nil
}

func trig(fn func(float64) float64) builtinFunc {
	return func(line int, args []runtime.Value) (runtime.Value, error) {
		if err := requireNumeric("trig function", line, args[0]); err != nil {
			return runtime.Value{}, err
		}
		return runtime.NewReal(fn(args[0].AsFloat())), nil
	}
}

func builtinPower(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireNumeric("power", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	if err := requireNumeric("power", line, args[1]); err != nil {
		return runtime.Value{}, err
	}
	return runtime.NewReal(math.Pow(args[0].AsFloat(), args[1].AsFloat())), nil
}

func builtinRandom(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireNumeric("random", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	if err := requireNumeric("random", line, args[1]); err != nil {
		return runtime.Value{}, err
	}
	min := int64(args[0].AsFloat())
	max := int64(args[1].AsFloat())
	if max < min {
		return runtime.Value{}, cerrors.New(cerrors.RangeError, line, "random: min must not exceed max")
	}
	return runtime.NewInteger(min + rand.Int63n(max-min+1)), nil
}

func builtinToInteger(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireNumeric("tointeger", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	return runtime.NewInteger(int64(args[0].AsFloat())), nil
}

func builtinToReal(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireNumeric("toreal", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	return runtime.NewReal(args[0].AsFloat()), nil
}

func builtinStringToInteger(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireString("stringtointeger", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(args[0].S), 10, 64)
	if err != nil {
		return runtime.Value{}, cerrors.New(cerrors.TypeError, line, "stringtointeger: %q is not an integer", args[0].S)
	}
	return runtime.NewInteger(n), nil
}

func builtinStringToReal(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireString("stringtoreal", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(args[0].S), 64)
	if err != nil {
		return runtime.Value{}, cerrors.New(cerrors.TypeError, line, "stringtoreal: %q is not a real number", args[0].S)
	}
	return runtime.NewReal(f), nil
}

func builtinIsInteger(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireString("isinteger", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	return runtime.NewBool(integerPattern.MatchString(strings.TrimSpace(args[0].S))), nil
}

func builtinIsReal(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireString("isreal", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	return runtime.NewBool(realPattern.MatchString(strings.TrimSpace(args[0].S))), nil
}

func builtinCurrencyFormat(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireNumeric("currencyformat", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	return runtime.NewString("$" + strconv.FormatFloat(args[0].AsFloat(), 'f', 2, 64)), nil
}

func builtinLength(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireString("length", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	return runtime.NewInteger(int64(len([]rune(args[0].S)))), nil
}

func builtinToUpper(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireString("toupper", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	return runtime.NewString(strings.ToUpper(args[0].S)), nil
}

func builtinToLower(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireString("tolower", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	return runtime.NewString(strings.ToLower(args[0].S)), nil
}

func builtinAppend(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireString("append", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	if err := requireString("append", line, args[1]); err != nil {
		return runtime.Value{}, err
	}
	return runtime.NewString(args[0].S + args[1].S), nil
}

func builtinContains(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireString("contains", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	if err := requireString("contains", line, args[1]); err != nil {
		return runtime.Value{}, err
	}
	return runtime.NewBool(strings.Contains(args[0].S, args[1].S)), nil
}

func builtinSubstring(line int, args []runtime.Value) (runtime.Value, error) {
	if err := requireString("substring", line, args[0]); err != nil {
		return runtime.Value{}, err
	}
	if err := requireNumeric("substring", line, args[1]); err != nil {
		return runtime.Value{}, err
	}
	runes := []rune(args[0].S)
	start := int(args[1].AsFloat())
	end := len(runes)
	if len(args) == 3 {
		if err := requireNumeric("substring", line, args[2]); err != nil {
			return runtime.Value{}, err
		}
		end = int(args[2].AsFloat())
	}
	if start < 0 || end > len(runes) || start > end {
		return runtime.Value{}, cerrors.New(cerrors.RangeError, line, "substring bounds [%d, %d) out of range for length %d", start, end, len(runes))
	}
	return runtime.NewString(string(runes[start:end])), nil
}
