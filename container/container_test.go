package container

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	n int
}

func TestContainer_SetAndGet(t *testing.T) {
	c := New()
	c.Set("greeting", "hello")

	v, err := c.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
	assert.True(t, c.Has("greeting"))
	assert.False(t, c.Has("missing"))
}

func TestContainer_GetMemoizes(t *testing.T) {
	c := New()
	calls := 0
	c.Set("counter", func() *counter {
		calls++
		return &counter{}
	})

	first, err := c.Get("counter")
	require.NoError(t, err)
	second, err := c.Get("counter")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestContainer_GetNotFound(t *testing.T) {
	c := New()

	_, err := c.Get("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Contains(t, err.Error(), `"missing"`)

	_, err = c.GetServiceDefinition("missing")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestContainer_SetReplacesDefinition(t *testing.T) {
	c := New()
	c.Set("name", "first")
	v, err := c.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "first", v)

	c.Set("name", "second")
	v, err = c.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "second", v)
}

func TestContainer_SetWithoutValueUsesID(t *testing.T) {
	c := New()
	c.Set("plain.id", nil)

	d, err := c.GetServiceDefinition("plain.id")
	require.NoError(t, err)
	assert.Equal(t, "plain.id", d.Value())

	v, err := c.Get("plain.id")
	require.NoError(t, err)
	assert.Equal(t, "plain.id", v)
}

func TestContainer_AddServiceDefinition(t *testing.T) {
	owner := New(WithName("owner"))
	owner.Set("svc", func() *counter { return &counter{n: 7} })
	d, err := owner.GetServiceDefinition("svc")
	require.NoError(t, err)

	other := New()
	require.NoError(t, other.AddServiceDefinition("svc", d))

	err = other.AddServiceDefinition("svc", d)
	assert.ErrorIs(t, err, ErrDuplicateDefinition)

	linked, err := other.GetServiceDefinition("svc")
	require.NoError(t, err)
	assert.Same(t, d, linked)
}

func TestContainer_CircularReference(t *testing.T) {
	c := New()
	c.Set("a", func(v string) string { return v }).AddArguments(Ref("b"))
	c.Set("b", func(v string) string { return v }).AddArguments(Ref("a"))

	_, err := c.Get("a")
	assert.ErrorIs(t, err, ErrCircularReference)
}

func TestContainer_FactoryError(t *testing.T) {
	c := New()
	boom := errors.New("boom")
	c.Set("broken", func() (*counter, error) { return nil, boom })

	_, err := c.Get("broken")
	require.ErrorIs(t, err, boom)
	_, memoized := c.resolved["broken"]
	assert.False(t, memoized)

	_, err = c.Get("broken")
	assert.ErrorIs(t, err, boom, "failures are not memoized")
}

func TestContainer_IDsAndName(t *testing.T) {
	c := New(WithName("orders"))
	c.Set("b", 1)
	c.Set("a", 2)

	assert.Equal(t, "orders", c.Name())
	assert.Equal(t, []string{"a", "b"}, c.IDs())
}

func TestContainer_TypedAccess(t *testing.T) {
	c := New()
	c.Set(IDOf[*counter](), func() *counter { return &counter{n: 3} })
	c.Set("label", "x")

	got, err := Resolve[*counter](c)
	require.NoError(t, err)
	assert.Equal(t, 3, got.n)

	_, err = Get[*counter](c, "label")
	assert.ErrorIs(t, err, ErrServiceWrongType)

	assert.Equal(t, "x", MustGet[string](c, "label"))
	assert.Panics(t, func() { MustGet[int](c, "label") })
}

func TestIDOf(t *testing.T) {
	assert.Equal(t, "*github.com/GoCodeAlone/powermodule/container.counter", IDOf[*counter]())
	assert.Equal(t, "string", IDOf[string]())
	assert.Equal(t, "github.com/GoCodeAlone/powermodule/container.Getter", IDOf[Getter]())
}
