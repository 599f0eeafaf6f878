// Package functions exposes color operations as named host functions that
// take and return protobuf values, e.g. for use from a template or style
// sheet compiler running in another process.
package functions

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/bep/colorstring"
	"google.golang.org/protobuf/types/known/structpb"
)

type functionProxy func([]*structpb.Value) (*structpb.Value, error)

// FunctionRegistry maps function names to Go functions.
// A FunctionRegistry is safe for concurrent use once all functions are
// registered.
type FunctionRegistry struct {
	parser     *colorstring.Parser
	functions  map[string]functionProxy
	signatures []string
}

// NewFunctionRegistry creates a registry with the given functions, keyed by
// their signature, e.g. "to-hex($color)".
func NewFunctionRegistry(stubs map[string]any) (registry *FunctionRegistry, err error) {
	registry = &FunctionRegistry{
		functions:  make(map[string]functionProxy),
		signatures: []string{},
	}
	if stubs == nil {
		return
	}
	// Sorted for stable SignatureNames.
	signatures := make([]string, 0, len(stubs))
	for signature := range stubs {
		signatures = append(signatures, signature)
	}
	sort.Strings(signatures)
	for _, signature := range signatures {
		if err = registry.Register(signature, stubs[signature]); err != nil {
			return
		}
	}
	return
}

// Register adds fn under the name in signature.
// fn must return (T, error) and take one argument per parameter in signature.
func (r *FunctionRegistry) Register(signature string, fn any) (err error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		err = fmt.Errorf("function-registry: invalid function")
		return
	}
	t := v.Type()
	if t.NumOut() != 2 || !t.Out(1).Implements(reflect.TypeOf((*error)(nil)).Elem()) {
		err = fmt.Errorf("function-registry: tuple error, expected returns: (T, error)")
		return
	}
	if t.IsVariadic() {
		err = fmt.Errorf("function-registry: variadic functions are not supported")
		return
	}
	name, params, err := parseSignature(signature)
	if err != nil {
		return
	}
	if len(params) != t.NumIn() {
		err = fmt.Errorf("function-registry: %q has %d parameters, function takes %d", signature, len(params), t.NumIn())
		return
	}
	if _, found := r.functions[name]; found {
		err = fmt.Errorf("function-registry: %q already registered", name)
		return
	}
	r.signatures = append(r.signatures, signature)
	r.functions[name] = func(inputs []*structpb.Value) (output *structpb.Value, err error) {
		if len(inputs) != t.NumIn() {
			err = fmt.Errorf("arguments length error: expected %d, got %d", t.NumIn(), len(inputs))
			return
		}
		var value reflect.Value
		var inputValues []reflect.Value
		for i := 0; i < t.NumIn(); i++ {
			value, err = unmarshalValue(r.parser, inputs[i], t.In(i))
			if err != nil {
				err = fmt.Errorf("%s: argument %s: %w", name, params[i], err)
				return
			}
			inputValues = append(inputValues, value)
		}
		outputValues := v.Call(inputValues)
		if !outputValues[1].IsNil() {
			err = outputValues[1].Interface().(error)
			return
		}
		output, err = MarshalValue(outputValues[0])
		return
	}
	return
}

// parseSignature splits "name($a, $b)" into its name and parameters.
func parseSignature(signature string) (name string, params []string, err error) {
	openParen := strings.IndexRune(signature, '(')
	if openParen == -1 {
		err = fmt.Errorf("%q is missing %q", signature, "(")
		return
	}
	if !strings.HasSuffix(signature, ")") {
		err = fmt.Errorf("%q is missing %q", signature, ")")
		return
	}
	name = strings.TrimSpace(signature[:openParen])
	if name == "" {
		err = fmt.Errorf("%q is missing a name", signature)
		return
	}
	for _, param := range strings.Split(signature[openParen+1:len(signature)-1], ",") {
		if param = strings.TrimSpace(param); param != "" {
			params = append(params, param)
		}
	}
	return
}

// Execute calls the function registered as name with args.
func (r *FunctionRegistry) Execute(name string, args []*structpb.Value) (*structpb.Value, error) {
	if r == nil {
		return nil, fmt.Errorf("custom-function disabled")
	}
	callback, ok := r.functions[name]
	if !ok {
		return nil, fmt.Errorf("%q not found", name)
	}
	return callback(args)
}

// Call is a convenience method that marshals args and unmarshals the
// result into out, which must be a pointer.
func (r *FunctionRegistry) Call(out any, name string, args ...any) error {
	inputs := make([]*structpb.Value, len(args))
	for i, arg := range args {
		v, err := MarshalValue(reflect.ValueOf(arg))
		if err != nil {
			return err
		}
		inputs[i] = v
	}
	result, err := r.Execute(name, inputs)
	if err != nil {
		return err
	}
	return decodeInto(r.parser, result, out)
}

func decodeInto(p *colorstring.Parser, v *structpb.Value, out any) error {
	if out == nil {
		return nil
	}
	ptr := reflect.ValueOf(out)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() {
		return fmt.Errorf("out must be a non-nil pointer, got %T", out)
	}
	value, err := unmarshalValue(p, v, ptr.Elem().Type())
	if err != nil {
		return err
	}
	ptr.Elem().Set(value)
	return nil
}

// SignatureNames returns the signatures of all registered functions.
func (r *FunctionRegistry) SignatureNames() []string {
	var signatures []string
	for _, signature := range r.signatures {
		signatures = append(signatures, strings.Clone(signature))
	}
	return signatures
}
