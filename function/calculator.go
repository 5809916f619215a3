// seehuhn.de/go/pdfpaint - gradients and transparency for PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package function

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Apply evaluates the function for the given inputs.  Inputs are clipped
// to the domain and outputs to the range.  If the program fails, all
// outputs are zero.
func (f *Type4) Apply(inputs ...float64) []float64 {
	m, n := f.Shape()
	if len(inputs) != m {
		panic(fmt.Sprintf("function: expected %d inputs, got %d", m, len(inputs)))
	}
	out, err := f.Eval(inputs...)
	if err != nil {
		out = make([]float64, n)
	}
	return out
}

// Eval is like Apply, but reports errors from the PostScript program.
func (f *Type4) Eval(inputs ...float64) ([]float64, error) {
	m, n := f.Shape()
	if len(inputs) != m {
		return nil, fmt.Errorf("function: expected %d inputs, got %d", m, len(inputs))
	}
	code, err := parseProgram(f.Program)
	if err != nil {
		return nil, err
	}

	stack := make(psStack, m, m+16)
	for i, x := range inputs {
		stack[i] = psNum(clip(x, f.Domain[2*i], f.Domain[2*i+1]))
	}
	stack, err = run(code, stack)
	if err != nil {
		return nil, err
	}
	if len(stack) < n {
		return nil, errStackUnderflow
	}

	out := make([]float64, n)
	for i, v := range stack[len(stack)-n:] {
		if v.isBool {
			return nil, errTypeCheck
		}
		out[i] = v.x
	}
	clipOutputs(out, f.Range)
	return out, nil
}

var (
	errStackUnderflow = errors.New("function: stack underflow")
	errStackOverflow  = errors.New("function: stack overflow")
	errTypeCheck      = errors.New("function: type check")
	errRangeCheck     = errors.New("function: range check")
)

// maxDepth is the operand stack limit used by PDF viewers.
const maxDepth = 100

// psValue is a number or a boolean on the operand stack.
type psValue struct {
	x      float64
	isInt  bool
	isBool bool
}

func psNum(x float64) psValue { return psValue{x: x} }
func psInt(k int) psValue     { return psValue{x: float64(k), isInt: true} }
func psBool(b bool) psValue {
	v := psValue{isBool: true}
	if b {
		v.x = 1
	}
	return v
}

type psStack []psValue

func (s *psStack) push(v psValue) error {
	if len(*s) >= maxDepth {
		return errStackOverflow
	}
	*s = append(*s, v)
	return nil
}

func (s *psStack) pop() (psValue, error) {
	k := len(*s)
	if k == 0 {
		return psValue{}, errStackUnderflow
	}
	v := (*s)[k-1]
	*s = (*s)[:k-1]
	return v, nil
}

func (s *psStack) popNum() (float64, error) {
	v, err := s.pop()
	if err == nil && v.isBool {
		err = errTypeCheck
	}
	return v.x, err
}

func (s *psStack) popInt() (int, error) {
	v, err := s.pop()
	if err == nil && !v.isInt {
		err = errTypeCheck
	}
	return int(v.x), err
}

func (s *psStack) popBool() (bool, error) {
	v, err := s.pop()
	if err == nil && !v.isBool {
		err = errTypeCheck
	}
	return v.x != 0, err
}

// psOp is one element of a parsed program: a literal, an operator, or
// a conditional with its procedure bodies.
type psOp struct {
	lit  *psValue
	name string
	then []psOp
	els  []psOp
}

// parseProgram parses the body of a calculator function.
func parseProgram(prog string) ([]psOp, error) {
	prog = strings.ReplaceAll(prog, "{", " { ")
	prog = strings.ReplaceAll(prog, "}", " } ")
	tokens := strings.Fields(prog)
	code, rest, err := parseBlock(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, errors.New("function: unexpected '}'")
	}
	return code, nil
}

// parseBlock parses tokens up to the first unmatched '}'.  The returned
// slice starts at that brace.
func parseBlock(tokens []string) ([]psOp, []string, error) {
	var code []psOp
	var procs [][]psOp
	for len(tokens) > 0 {
		tok := tokens[0]
		tokens = tokens[1:]

		switch tok {
		case "{":
			body, rest, err := parseBlock(tokens)
			if err != nil {
				return nil, nil, err
			}
			if len(rest) == 0 {
				return nil, nil, errors.New("function: missing '}'")
			}
			tokens = rest[1:]
			procs = append(procs, body)
			continue
		case "}":
			if len(procs) > 0 {
				return nil, nil, errors.New("function: unused procedure")
			}
			return code, append([]string{tok}, tokens...), nil
		case "if":
			if len(procs) != 1 {
				return nil, nil, errors.New("function: if needs one procedure")
			}
			code = append(code, psOp{name: tok, then: procs[0]})
			procs = nil
			continue
		case "ifelse":
			if len(procs) != 2 {
				return nil, nil, errors.New("function: ifelse needs two procedures")
			}
			code = append(code, psOp{name: tok, then: procs[0], els: procs[1]})
			procs = nil
			continue
		}

		if len(procs) > 0 {
			return nil, nil, errors.New("function: unused procedure")
		}
		switch {
		case tok == "true" || tok == "false":
			v := psBool(tok == "true")
			code = append(code, psOp{lit: &v})
		case strings.ContainsAny(tok[:1], "+-.0123456789"):
			v, err := parseNumber(tok)
			if err != nil {
				return nil, nil, err
			}
			code = append(code, psOp{lit: &v})
		default:
			if _, ok := psOperators[tok]; !ok {
				return nil, nil, fmt.Errorf("function: unknown operator %q", tok)
			}
			code = append(code, psOp{name: tok})
		}
	}
	if len(procs) > 0 {
		return nil, nil, errors.New("function: unused procedure")
	}
	return code, nil, nil
}

func parseNumber(tok string) (psValue, error) {
	if k, err := strconv.Atoi(tok); err == nil {
		return psInt(k), nil
	}
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return psValue{}, fmt.Errorf("function: invalid number %q", tok)
	}
	return psNum(x), nil
}

func run(code []psOp, stack psStack) (psStack, error) {
	for _, op := range code {
		var err error
		switch {
		case op.lit != nil:
			err = stack.push(*op.lit)
		case op.name == "if" || op.name == "ifelse":
			var cond bool
			cond, err = stack.popBool()
			if err != nil {
				return nil, err
			}
			body := op.els
			if cond {
				body = op.then
			}
			stack, err = run(body, stack)
		default:
			err = psOperators[op.name](&stack)
		}
		if err != nil {
			return nil, err
		}
	}
	return stack, nil
}

var psOperators map[string]func(*psStack) error

func init() {
	psOperators = map[string]func(*psStack) error{
		"add": arith(func(a, b float64) float64 { return a + b }),
		"sub": arith(func(a, b float64) float64 { return a - b }),
		"mul": arith(func(a, b float64) float64 { return a * b }),
		"div": func(s *psStack) error {
			b, err := s.popNum()
			if err != nil {
				return err
			}
			a, err := s.popNum()
			if err != nil {
				return err
			}
			if b == 0 {
				return errRangeCheck
			}
			return s.push(psNum(a / b))
		},
		"idiv": intArith(func(a, b int) (int, error) {
			if b == 0 {
				return 0, errRangeCheck
			}
			return a / b, nil
		}),
		"mod": intArith(func(a, b int) (int, error) {
			if b == 0 {
				return 0, errRangeCheck
			}
			return a % b, nil
		}),
		"abs":      unary(math.Abs, true),
		"neg":      unary(func(x float64) float64 { return -x }, true),
		"ceiling":  unary(math.Ceil, true),
		"floor":    unary(math.Floor, true),
		"round":    unary(func(x float64) float64 { return math.Floor(x + 0.5) }, true),
		"truncate": unary(math.Trunc, true),
		"sqrt":     unary(math.Sqrt, false),
		"exp": func(s *psStack) error {
			e, err := s.popNum()
			if err != nil {
				return err
			}
			b, err := s.popNum()
			if err != nil {
				return err
			}
			return s.push(psNum(math.Pow(b, e)))
		},
		"ln":  unary(math.Log, false),
		"log": unary(math.Log10, false),
		"sin": unary(func(x float64) float64 { return math.Sin(x * math.Pi / 180) }, false),
		"cos": unary(func(x float64) float64 { return math.Cos(x * math.Pi / 180) }, false),
		"atan": func(s *psStack) error {
			den, err := s.popNum()
			if err != nil {
				return err
			}
			num, err := s.popNum()
			if err != nil {
				return err
			}
			deg := math.Atan2(num, den) * 180 / math.Pi
			if deg < 0 {
				deg += 360
			}
			return s.push(psNum(deg))
		},
		"cvi": func(s *psStack) error {
			x, err := s.popNum()
			if err != nil {
				return err
			}
			return s.push(psInt(int(math.Trunc(x))))
		},
		"cvr": func(s *psStack) error {
			x, err := s.popNum()
			if err != nil {
				return err
			}
			return s.push(psNum(x))
		},

		"eq": compare(func(a, b float64) bool { return a == b }),
		"ne": compare(func(a, b float64) bool { return a != b }),
		"gt": compare(func(a, b float64) bool { return a > b }),
		"ge": compare(func(a, b float64) bool { return a >= b }),
		"lt": compare(func(a, b float64) bool { return a < b }),
		"le": compare(func(a, b float64) bool { return a <= b }),

		"and": logic(func(a, b bool) bool { return a && b }, func(a, b int) int { return a & b }),
		"or":  logic(func(a, b bool) bool { return a || b }, func(a, b int) int { return a | b }),
		"xor": logic(func(a, b bool) bool { return a != b }, func(a, b int) int { return a ^ b }),
		"not": func(s *psStack) error {
			v, err := s.pop()
			if err != nil {
				return err
			}
			switch {
			case v.isBool:
				return s.push(psBool(v.x == 0))
			case v.isInt:
				return s.push(psInt(^int(v.x)))
			}
			return errTypeCheck
		},
		"bitshift": intArith(func(a, k int) (int, error) {
			if k >= 0 {
				return a << uint(k), nil
			}
			return a >> uint(-k), nil
		}),

		"pop": func(s *psStack) error {
			_, err := s.pop()
			return err
		},
		"dup": func(s *psStack) error {
			if len(*s) == 0 {
				return errStackUnderflow
			}
			return s.push((*s)[len(*s)-1])
		},
		"exch": func(s *psStack) error {
			k := len(*s)
			if k < 2 {
				return errStackUnderflow
			}
			(*s)[k-1], (*s)[k-2] = (*s)[k-2], (*s)[k-1]
			return nil
		},
		"copy": func(s *psStack) error {
			n, err := s.popInt()
			if err != nil {
				return err
			}
			k := len(*s)
			if n < 0 || n > k {
				return errRangeCheck
			}
			if k+n > maxDepth {
				return errStackOverflow
			}
			*s = append(*s, (*s)[k-n:]...)
			return nil
		},
		"index": func(s *psStack) error {
			n, err := s.popInt()
			if err != nil {
				return err
			}
			if n < 0 || n >= len(*s) {
				return errRangeCheck
			}
			return s.push((*s)[len(*s)-1-n])
		},
		"roll": func(s *psStack) error {
			j, err := s.popInt()
			if err != nil {
				return err
			}
			n, err := s.popInt()
			if err != nil {
				return err
			}
			if n < 0 || n > len(*s) {
				return errRangeCheck
			}
			if n == 0 {
				return nil
			}
			j %= n
			if j < 0 {
				j += n
			}
			// Rolling by j moves the top j elements below the others.
			top := (*s)[len(*s)-n:]
			rolled := append(append([]psValue{}, top[n-j:]...), top[:n-j]...)
			copy(top, rolled)
			return nil
		},
	}
}

// arith returns an operator which keeps integer results integral.
func arith(fn func(a, b float64) float64) func(*psStack) error {
	return func(s *psStack) error {
		b, err := s.pop()
		if err != nil {
			return err
		}
		a, err := s.pop()
		if err != nil {
			return err
		}
		if a.isBool || b.isBool {
			return errTypeCheck
		}
		v := psNum(fn(a.x, b.x))
		v.isInt = a.isInt && b.isInt && math.Abs(v.x) < 1<<53
		return s.push(v)
	}
}

func intArith(fn func(a, b int) (int, error)) func(*psStack) error {
	return func(s *psStack) error {
		b, err := s.popInt()
		if err != nil {
			return err
		}
		a, err := s.popInt()
		if err != nil {
			return err
		}
		c, err := fn(a, b)
		if err != nil {
			return err
		}
		return s.push(psInt(c))
	}
}

// unary returns a one-argument operator.  If keepInt is set, integer
// arguments give integer results.
func unary(fn func(float64) float64, keepInt bool) func(*psStack) error {
	return func(s *psStack) error {
		v, err := s.pop()
		if err != nil {
			return err
		}
		if v.isBool {
			return errTypeCheck
		}
		res := psNum(fn(v.x))
		res.isInt = keepInt && v.isInt
		return s.push(res)
	}
}

func compare(fn func(a, b float64) bool) func(*psStack) error {
	return func(s *psStack) error {
		b, err := s.pop()
		if err != nil {
			return err
		}
		a, err := s.pop()
		if err != nil {
			return err
		}
		if a.isBool != b.isBool {
			return errTypeCheck
		}
		return s.push(psBool(fn(a.x, b.x)))
	}
}

func logic(fb func(a, b bool) bool, fi func(a, b int) int) func(*psStack) error {
	return func(s *psStack) error {
		b, err := s.pop()
		if err != nil {
			return err
		}
		a, err := s.pop()
		if err != nil {
			return err
		}
		switch {
		case a.isBool && b.isBool:
			return s.push(psBool(fb(a.x != 0, b.x != 0)))
		case a.isInt && b.isInt:
			return s.push(psInt(fi(int(a.x), int(b.x))))
		}
		return errTypeCheck
	}
}
