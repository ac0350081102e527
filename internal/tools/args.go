package tools

import "fmt"

// Argument helpers. Arguments arrive as a generic mapping decoded from
// JSON, so numbers are float64. Missing or ill-typed required
// arguments are handler errors; the dispatcher turns them into
// protocol-level internal errors.

func floatArg(args map[string]interface{}, name string) (float64, error) {
	v, ok := args[name]
	if !ok {
		return 0, fmt.Errorf("missing required argument: %s", name)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("argument %q must be a number, got %T", name, v)
	}
}

func stringArg(args map[string]interface{}, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", fmt.Errorf("missing required argument: %s", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string, got %T", name, v)
	}
	return s, nil
}

// optionalStringArg returns def when name is absent. A present value of
// the wrong type is still an error.
func optionalStringArg(args map[string]interface{}, name, def string) (string, error) {
	if _, ok := args[name]; !ok {
		return def, nil
	}
	return stringArg(args, name)
}
