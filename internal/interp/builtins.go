package interp

import (
	"strconv"
	"strings"

	"aud/internal/ast"
	"aud/internal/diag"
)

type builtinFn func(in *interpreter, call *ast.Call, args []Value) (Value, *Fault)

var builtinTable = map[string]builtinFn{
	"print": func(in *interpreter, call *ast.Call, args []Value) (Value, *Fault) {
		if _, err := in.stdout.Write([]byte(args[0].S + "\n")); err != nil {
			return Value{}, newFault(diag.InvalidValueRuntime, call.Span, "Invalid value")
		}
		return VVoid(), nil
	},
	"input": func(in *interpreter, call *ast.Call, args []Value) (Value, *Fault) {
		if !in.stdin.Scan() {
			return VStringOf(""), nil
		}
		return VStringOf(in.stdin.Text()), nil
	},
	"btos": func(in *interpreter, call *ast.Call, args []Value) (Value, *Fault) {
		if args[0].B {
			return VStringOf("true"), nil
		}
		return VStringOf("false"), nil
	},
	"stoi": func(in *interpreter, call *ast.Call, args []Value) (Value, *Fault) {
		n, err := strconv.ParseInt(args[0].S, 10, 64)
		if err != nil {
			return Value{}, newFault(diag.TypeConversionException, call.Span, "Type conversion exception")
		}
		return VIntOf(n), nil
	},
	"itos": func(in *interpreter, call *ast.Call, args []Value) (Value, *Fault) {
		return VStringOf(strconv.FormatInt(args[0].I, 10)), nil
	},
	"stof": func(in *interpreter, call *ast.Call, args []Value) (Value, *Fault) {
		f, err := strconv.ParseFloat(args[0].S, 64)
		if err != nil {
			return Value{}, newFault(diag.TypeConversionException, call.Span, "Type conversion exception")
		}
		return VFloatOf(f), nil
	},
	"ftos": func(in *interpreter, call *ast.Call, args []Value) (Value, *Fault) {
		s := strconv.FormatFloat(args[0].F, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return VStringOf(s), nil
	},
	"itof": func(in *interpreter, call *ast.Call, args []Value) (Value, *Fault) {
		return VFloatOf(float64(args[0].I)), nil
	},
	"ftoi": func(in *interpreter, call *ast.Call, args []Value) (Value, *Fault) {
		return VIntOf(int64(args[0].F)), nil
	},
	"atof": func(in *interpreter, call *ast.Call, args []Value) (Value, *Fault) {
		return VFileOf(in.world.Atof(args[0].File)), nil
	},
	"ftoa": func(in *interpreter, call *ast.Call, args []Value) (Value, *Fault) {
		h, ok := in.world.Ftoa(args[0].File)
		if !ok {
			return VNull(), nil
		}
		return VAudioOf(h), nil
	},
}
