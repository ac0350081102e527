package tools

import (
	"fmt"
	"sync"

	"github.com/p-bidkar/simple-mcp/internal/logger"
	"github.com/p-bidkar/simple-mcp/internal/mcp"
)

var logRegistry = logger.New("tools:registry")

// Registration ties a dotted tool name to its handler and declared
// parameter schema. The schema is declaration only; arguments are not
// validated against it before dispatch.
type Registration struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
	Handler     Handler
}

// Registry is the name → handler table used for dispatch and listing.
// Listing preserves registration order.
type Registry struct {
	mu    sync.RWMutex
	order []string
	tools map[string]Registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Registration),
	}
}

// Register adds a tool. Names are case-sensitive and must be unique.
func (r *Registry) Register(reg Registration) error {
	if reg.Name == "" {
		return fmt.Errorf("tool name required")
	}
	if reg.Handler == nil {
		return fmt.Errorf("tool handler required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[reg.Name]; exists {
		return fmt.Errorf("tool %q already registered", reg.Name)
	}
	r.tools[reg.Name] = reg
	r.order = append(r.order, reg.Name)
	logRegistry.Printf("registered tool: %s", reg.Name)
	return nil
}

// Lookup finds a tool by exact name.
func (r *Registry) Lookup(name string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.tools[name]
	return reg, ok
}

// Call invokes a named tool with the given arguments.
func (r *Registry) Call(name string, args map[string]interface{}) (map[string]interface{}, error) {
	reg, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("Tool not found: %s", name)
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	return reg.Handler(args)
}

// List returns descriptors for all tools in registration order.
func (r *Registry) List() []mcp.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]mcp.Tool, 0, len(r.order))
	for _, name := range r.order {
		reg := r.tools[name]
		list = append(list, mcp.Tool{
			Name:        reg.Name,
			Description: reg.Description,
			InputSchema: reg.InputSchema,
		})
	}
	return list
}

// Names returns the tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// schema builders for the builtin catalog

func numberParam(description string) map[string]interface{} {
	return map[string]interface{}{"type": "number", "description": description}
}

func stringParam(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func operandSchema() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"a": numberParam("First number"),
		"b": numberParam("Second number"),
	}, "a", "b")
}

// DefaultRegistry builds the registry with the full builtin tool
// catalog in its canonical order. extraWeather extends the mock
// weather table from configuration.
func DefaultRegistry(extraWeather map[string]Conditions) *Registry {
	weather := NewWeather(extraWeather)
	r := NewRegistry()

	builtin := []Registration{
		{
			Name:        "calculator.add",
			Description: "Add two numbers",
			InputSchema: operandSchema(),
			Handler:     Add,
		},
		{
			Name:        "calculator.subtract",
			Description: "Subtract two numbers",
			InputSchema: operandSchema(),
			Handler:     Subtract,
		},
		{
			Name:        "calculator.multiply",
			Description: "Multiply two numbers",
			InputSchema: operandSchema(),
			Handler:     Multiply,
		},
		{
			Name:        "calculator.divide",
			Description: "Divide two numbers",
			InputSchema: operandSchema(),
			Handler:     Divide,
		},
		{
			Name:        "weather.get_weather",
			Description: "Get weather information for a city",
			InputSchema: objectSchema(map[string]interface{}{
				"city": stringParam("City name"),
			}, "city"),
			Handler: weather.GetWeather,
		},
		{
			Name:        "file.read_file",
			Description: "Read contents of a file",
			InputSchema: objectSchema(map[string]interface{}{
				"filepath": stringParam("Path to the file"),
			}, "filepath"),
			Handler: ReadFile,
		},
		{
			Name:        "file.write_file",
			Description: "Write content to a file",
			InputSchema: objectSchema(map[string]interface{}{
				"filepath": stringParam("Path to the file"),
				"content":  stringParam("Content to write"),
			}, "filepath", "content"),
			Handler: WriteFile,
		},
		{
			Name:        "file.list_files",
			Description: "List files in a directory",
			InputSchema: objectSchema(map[string]interface{}{
				"directory": map[string]interface{}{
					"type":        "string",
					"description": "Directory path",
					"default":     ".",
				},
			}),
			Handler: ListFiles,
		},
		{
			Name:        "system.get_system_info",
			Description: "Get basic system information",
			InputSchema: objectSchema(map[string]interface{}{}),
			Handler:     GetSystemInfo,
		},
		{
			Name:        "system.echo",
			Description: "Echo a message back",
			InputSchema: objectSchema(map[string]interface{}{
				"message": stringParam("Message to echo"),
			}, "message"),
			Handler: Echo,
		},
	}

	for _, reg := range builtin {
		if err := r.Register(reg); err != nil {
			// Builtin names are fixed at compile time, a collision here
			// is a programming error.
			panic(err)
		}
	}
	return r
}
