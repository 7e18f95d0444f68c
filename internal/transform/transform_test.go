package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const counterSource = `package widgets

component Counter {
	state {
		Label string
	}

	reactive var Count int = 0

	//fenestra:onMount
	mount {
		c.Count.Set(0)
	}

	computed func Doubled() int {
		return c.Count.Get() * 2
	}
}
`

func TestFileTransformsComponentBlock(t *testing.T) {
	res := File(counterSource, "counter.ui")
	require.Empty(t, res.Diags, "unexpected diagnostics: %v", res.Diags)
	require.NotNil(t, res.Output)

	out := string(res.Output)
	assert.Contains(t, out, "type Counter struct")
	assert.Contains(t, out, "fenestra.BaseComponent")
	assert.Contains(t, out, "Label string")
	assert.Contains(t, out, "Count *reactive.Signal[int]")
	assert.Contains(t, out, "func (c *Counter) OnMount()")
	assert.Contains(t, out, "func (c *Counter) Doubled() int")
	assert.Contains(t, out, `"github.com/fenestra-dev/fenestra"`)
	assert.Contains(t, out, `"github.com/fenestra-dev/fenestra/pkg/reactive"`)
}

func TestFileIsDeterministic(t *testing.T) {
	a := File(counterSource, "counter.ui")
	b := File(counterSource, "counter.ui")
	require.Empty(t, a.Diags)
	require.Empty(t, b.Diags)
	assert.Equal(t, a.Output, b.Output)
}

func TestFileRejectsStyleTags(t *testing.T) {
	src := "package widgets\n\n<style>.foo{}</style>\n\ncomponent Widget {\n}\n"
	res := File(src, "widget.ui")
	require.Len(t, res.Diags, 1)
	assert.Equal(t, "LC1002", res.Diags[0].Code)
}

func TestFileReportsUnterminatedComponent(t *testing.T) {
	src := "package widgets\n\ncomponent Broken {\n\tstate {\n"
	res := File(src, "broken.ui")
	require.Len(t, res.Diags, 1)
	assert.Equal(t, "LC1001", res.Diags[0].Code)
}

func TestFileReportsUnknownDecorator(t *testing.T) {
	src := `package widgets

component Widget {
	//fenestra:onBoot
	mount {
	}
}
`
	res := File(src, "widget.ui")
	require.NotEmpty(t, res.Diags)
	found := false
	for _, d := range res.Diags {
		if d.Code == "LC1002" && strings.Contains(d.Message+d.Detail, "onBoot") {
			found = true
		}
	}
	assert.True(t, found, "expected an LC1002 diagnostic naming the unknown decorator, got %v", res.Diags)
}

func TestFileStripsShapeBlocks(t *testing.T) {
	src := `package widgets

shape CounterProps {
	Initial int
}

component Counter {
}
`
	res := File(src, "counter.ui")
	require.Empty(t, res.Diags)
	assert.NotContains(t, string(res.Output), "CounterProps")
}
