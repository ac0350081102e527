// Package tools implements the demo tool handlers and the registry
// that maps dotted tool names to them.
//
// Handlers are pure functions from a named-argument mapping to a
// result mapping. Every result carries an ISO-8601 timestamp. File and
// system handlers convert their own failures into status:"error"
// results; only genuine caller errors (bad arguments, divide by zero)
// surface as Go errors for the dispatcher to report.
package tools

import (
	"errors"
	"time"
)

// Handler executes one tool invocation.
type Handler func(args map[string]interface{}) (map[string]interface{}, error)

// ErrDivideByZero is returned by calculator.divide when the divisor is
// zero. The dispatcher converts it into a protocol-level error.
var ErrDivideByZero = errors.New("cannot divide by zero")

func timestamp() string {
	return time.Now().Format(time.RFC3339)
}

func calcResult(operation string, a, b, result float64) map[string]interface{} {
	return map[string]interface{}{
		"operation": operation,
		"operands":  []interface{}{a, b},
		"result":    result,
		"timestamp": timestamp(),
	}
}

// Add adds two numbers.
func Add(args map[string]interface{}) (map[string]interface{}, error) {
	a, err := floatArg(args, "a")
	if err != nil {
		return nil, err
	}
	b, err := floatArg(args, "b")
	if err != nil {
		return nil, err
	}
	return calcResult("addition", a, b, a+b), nil
}

// Subtract subtracts b from a.
func Subtract(args map[string]interface{}) (map[string]interface{}, error) {
	a, err := floatArg(args, "a")
	if err != nil {
		return nil, err
	}
	b, err := floatArg(args, "b")
	if err != nil {
		return nil, err
	}
	return calcResult("subtraction", a, b, a-b), nil
}

// Multiply multiplies two numbers.
func Multiply(args map[string]interface{}) (map[string]interface{}, error) {
	a, err := floatArg(args, "a")
	if err != nil {
		return nil, err
	}
	b, err := floatArg(args, "b")
	if err != nil {
		return nil, err
	}
	return calcResult("multiplication", a, b, a*b), nil
}

// Divide divides a by b, failing on a zero divisor.
func Divide(args map[string]interface{}) (map[string]interface{}, error) {
	a, err := floatArg(args, "a")
	if err != nil {
		return nil, err
	}
	b, err := floatArg(args, "b")
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, ErrDivideByZero
	}
	return calcResult("division", a, b, a/b), nil
}
