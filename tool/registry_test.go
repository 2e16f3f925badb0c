package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily"
)

func TestRegistry_Register(t *testing.T) {
	t.Run("registers tool successfully", func(t *testing.T) {
		r := NewRegistry()
		testTool := ai.Tool{Name: "test_tool", Description: "A test tool"}
		handler := func(ctx context.Context, call ai.ToolCall) (string, error) {
			return "result", nil
		}

		err := r.Register(testTool, handler)

		assert.NoError(t, err)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("returns error for duplicate registration", func(t *testing.T) {
		r := NewRegistry()
		testTool := ai.Tool{Name: "test_tool", Description: "A test tool"}
		handler := func(ctx context.Context, call ai.ToolCall) (string, error) {
			return "result", nil
		}

		err := r.Register(testTool, handler)
		require.NoError(t, err)

		err = r.Register(testTool, handler)
		assert.Error(t, err)
		var errAlreadyRegistered *ErrToolAlreadyRegistered
		assert.ErrorAs(t, err, &errAlreadyRegistered)
	})
}

func TestRegistry_MustRegister(t *testing.T) {
	r := NewRegistry()
	testTool := ai.Tool{Name: "test_tool"}
	handler := func(ctx context.Context, call ai.ToolCall) (string, error) {
		return "result", nil
	}

	r.MustRegister(testTool, handler)

	assert.Panics(t, func() {
		r.MustRegister(testTool, handler)
	})
}

func TestRegistry_GetAndUnregister(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(ai.Tool{Name: "test_tool"}, func(ctx context.Context, call ai.ToolCall) (string, error) {
		return "result", nil
	})

	t.Run("returns handler for registered tool", func(t *testing.T) {
		h, ok := r.Get("test_tool")
		assert.True(t, ok)
		assert.NotNil(t, h)
	})

	t.Run("returns tool definition", func(t *testing.T) {
		def, ok := r.GetTool("test_tool")
		assert.True(t, ok)
		assert.Equal(t, "test_tool", def.Name)
	})

	t.Run("returns false for unregistered tool", func(t *testing.T) {
		h, ok := r.Get("nonexistent")
		assert.False(t, ok)
		assert.Nil(t, h)
	})

	t.Run("unregister removes the tool", func(t *testing.T) {
		r.Unregister("test_tool")
		_, ok := r.Get("test_tool")
		assert.False(t, ok)
	})
}

func TestRegistry_Tools(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(ai.Tool{Name: "tool1"}, func(ctx context.Context, call ai.ToolCall) (string, error) { return "", nil })
	r.MustRegister(ai.Tool{Name: "tool2"}, func(ctx context.Context, call ai.ToolCall) (string, error) { return "", nil })

	tools := r.Tools()
	assert.Len(t, tools, 2)

	names := make(map[string]bool)
	for _, tl := range tools {
		names[tl.Name] = true
	}
	assert.True(t, names["tool1"])
	assert.True(t, names["tool2"])
}

func TestRegistry_Execute(t *testing.T) {
	t.Run("executes handler successfully", func(t *testing.T) {
		r := NewRegistry()
		r.MustRegister(
			ai.Tool{Name: "test_tool"},
			func(ctx context.Context, call ai.ToolCall) (string, error) {
				return "success: " + call.Arguments, nil
			},
		)

		result, err := r.Execute(context.Background(), ai.ToolCall{
			ID:        "call_1",
			Name:      "test_tool",
			Arguments: `{"key":"value"}`,
		})

		assert.NoError(t, err)
		assert.Equal(t, "call_1", result.ToolCallID)
		assert.Equal(t, `success: {"key":"value"}`, result.Content)
		assert.False(t, result.IsError)
	})

	t.Run("returns error result when handler fails", func(t *testing.T) {
		r := NewRegistry()
		r.MustRegister(
			ai.Tool{Name: "failing_tool"},
			func(ctx context.Context, call ai.ToolCall) (string, error) {
				return "", errors.New("provider unavailable")
			},
		)

		result, err := r.Execute(context.Background(), ai.ToolCall{
			ID:   "call_1",
			Name: "failing_tool",
		})

		// Error is captured in result, not returned as error
		assert.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, "provider unavailable", result.Content)
	})

	t.Run("returns error for unknown tool", func(t *testing.T) {
		r := NewRegistry()

		_, err := r.Execute(context.Background(), ai.ToolCall{
			ID:   "call_1",
			Name: "unknown_tool",
		})

		assert.Error(t, err)
		var errNotFound *ErrToolNotFound
		assert.ErrorAs(t, err, &errNotFound)
	})
}

func TestRegisterFunc(t *testing.T) {
	type echoArgs struct {
		Text string `json:"text" desc:"Text to echo" required:"true"`
	}

	r := NewRegistry()
	err := RegisterFunc(r, "echo", "Echo the input",
		func(ctx context.Context, args echoArgs) (string, error) {
			return args.Text, nil
		},
	)
	require.NoError(t, err)

	t.Run("schema is generated from the args struct", func(t *testing.T) {
		def, ok := r.GetTool("echo")
		require.True(t, ok)
		assert.Contains(t, string(def.Parameters), `"text"`)
		assert.Contains(t, string(def.Parameters), "Text to echo")
		assert.Contains(t, string(def.Parameters), `"required"`)
	})

	t.Run("arguments are unmarshaled into the typed handler", func(t *testing.T) {
		result, err := r.Execute(context.Background(), ai.ToolCall{
			ID:        "call_1",
			Name:      "echo",
			Arguments: `{"text":"hello"}`,
		})
		require.NoError(t, err)
		assert.Equal(t, "hello", result.Content)
	})

	t.Run("malformed arguments become an error result", func(t *testing.T) {
		result, err := r.Execute(context.Background(), ai.ToolCall{
			ID:        "call_2",
			Name:      "echo",
			Arguments: `{not json`,
		})
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, result.Content, "invalid arguments")
	})
}

func TestRegistry_Add(t *testing.T) {
	type args struct {
		Query string `json:"query" required:"true"`
	}

	r := NewRegistry().Add(
		Func("first", "First tool", func(ctx context.Context, a args) (string, error) { return "1", nil }),
		Func("second", "Second tool", func(ctx context.Context, a args) (string, error) { return "2", nil }),
	)

	assert.Equal(t, 2, r.Len())
	assert.ElementsMatch(t, []string{"first", "second"}, r.Names())
}
