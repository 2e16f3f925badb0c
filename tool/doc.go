// Package tool provides tool definitions, a registry, and execution for the
// research agent.
//
// Tools implement a uniform contract: a schema (name, description, JSON
// Schema parameters) paired with a Handler that executes a ToolCall. The
// agent loop dispatches calls by name through a Registry, so new tools can
// be added without touching the loop.
//
// # Registering Tools
//
//	type WeatherArgs struct {
//	    Location string `json:"location" desc:"City name" required:"true"`
//	}
//
//	registry := tool.NewRegistry()
//	tool.MustRegisterFunc(registry, "get_weather", "Get current weather",
//	    func(ctx context.Context, args WeatherArgs) (string, error) {
//	        return fmt.Sprintf(`{"temp": 72, "location": %q}`, args.Location), nil
//	    },
//	)
//
// Or fluently:
//
//	registry := tool.NewRegistry().Add(
//	    tool.NewWebSearchTool(search.NewTavily(apiKey)),
//	)
//
// # Error Semantics
//
// A handler error is not fatal to an agent run: Execute captures it in
// ToolResult.IsError with the message as content, so the model can observe
// the failure and react.
package tool
