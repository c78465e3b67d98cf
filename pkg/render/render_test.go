package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type command struct {
	Input string `json:"input" yaml:"input"`
}

func TestJSON(t *testing.T) {
	t.Run("Indented", func(t *testing.T) {
		assert.Equal(t, "{\n  \"input\": \"test-input\"\n}", JSON{}.Render(command{Input: "test-input"}))
	})

	t.Run("CustomIndent", func(t *testing.T) {
		assert.Equal(t, "{\n\t\"input\": \"a\"\n}", JSON{Indent: "\t"}.Render(command{Input: "a"}))
	})

	t.Run("Compact", func(t *testing.T) {
		assert.Equal(t, `{"input":"a"}`, JSON{Compact: true}.Render(command{Input: "a"}))
	})

	t.Run("Nil", func(t *testing.T) {
		assert.Equal(t, "null", JSON{}.Render(nil))
	})

	t.Run("Deterministic", func(t *testing.T) {
		v := command{Input: "x"}

		assert.Equal(t, JSON{}.Render(v), JSON{}.Render(v))
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := JSON{}.Marshal(make(chan int))
		require.Error(t, err)

		assert.True(t, Error.Has(err))
		assert.NotEmpty(t, JSON{}.Render(make(chan int)))
	})
}

func TestYAML(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		assert.Equal(t, "input: test-input", YAML{}.Render(command{Input: "test-input"}))
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := YAML{}.Marshal(func() {})
		require.Error(t, err)

		assert.NotEmpty(t, YAML{}.Render(func() {}))
	})
}

func TestFunc(t *testing.T) {
	r := Func(func(v any) string { return "rendered" })

	assert.Equal(t, "rendered", r.Render(1))
}
