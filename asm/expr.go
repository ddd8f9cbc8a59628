package asm

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/abishjha/vc3600/cpu"
)

// Predefined system constants, visible to every expression.
var sysDefine = map[string]int{
	"MEMSZ":   cpu.MEMSZ,
	"ACC_MAX": cpu.ACC_MAX,
}

// isExpression returns true for a $(...) field.
func isExpression(word string) bool {
	return strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")")
}

// valueOf returns the value of a decimal field.
func valueOf(word string) (value int, err error) {
	value, err = strconv.Atoi(word)
	if err != nil {
		err = ErrParseNumber(word)
	}
	return
}

// parenEval evaluates the body of a $(...) field.
func parenEval(expr string, defines iter.Seq2[string, int]) (value int, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range defines {
		pred[key] = starlark.MakeInt(val)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value = int(st_int64)
	return
}

// evaluate returns the value of a decimal or $(...) field.
func evaluate(word string, defines iter.Seq2[string, int]) (value int, err error) {
	if isExpression(word) {
		return parenEval(word[2:len(word)-1], defines)
	}

	return valueOf(word)
}
