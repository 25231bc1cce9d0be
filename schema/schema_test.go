package schema_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldaccess/examples/records"
	"fieldaccess/primitive"
	"fieldaccess/schema"
)

func TestFor(t *testing.T) {
	s, err := schema.For[records.Sensor]()
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "Name", "Reading", "Scale", "Raw", "Window", "Unit", "Labels", "note"}, s.Names())
	assert.Equal(t, 9, s.Len())
	assert.False(t, s.PublicOnly)

	raw, ok := s.Lookup("Raw")
	require.True(t, ok, spew.Sdump(s.Entries))
	assert.Equal(t, 4, raw.Index)
	assert.Equal(t, primitive.KindBytes, raw.Kind)
	assert.True(t, raw.Exported)

	note, ok := s.Lookup("note")
	require.True(t, ok)
	assert.False(t, note.Exported)
	assert.Equal(t, reflect.TypeFor[string](), note.Type)

	_, ok = s.Lookup("cache")
	assert.False(t, ok)
}

func TestFor_PublicOnly(t *testing.T) {
	ledger, err := schema.For[records.Ledger]()
	require.NoError(t, err)

	assert.True(t, ledger.PublicOnly)
	assert.Equal(t, []string{"Entries", "Total"}, ledger.Names())

	entries, ok := ledger.Lookup("Entries")
	require.True(t, ok)
	assert.Equal(t, 1, entries.Index, "the blank marker keeps its position")

	// the generator directive does not apply at runtime
	account, err := schema.For[records.Account]()
	require.NoError(t, err)

	assert.False(t, account.PublicOnly)
	assert.Equal(t, []string{"Meta", "Owner", "Balance", "Limit", "secret"}, account.Names())

	meta, ok := account.Lookup("Meta")
	require.True(t, ok)
	assert.True(t, meta.Embedded)
	assert.Zero(t, meta.Kind)
}

func TestFor_Errors(t *testing.T) {
	_, err := schema.For[int]()
	assert.ErrorIs(t, err, schema.ErrNotStruct)

	_, err = schema.For[*records.Sensor]()
	assert.ErrorIs(t, err, schema.ErrNotStruct)

	type badTag struct {
		A int `fieldaccess:"public"`
	}

	_, err = schema.For[badTag]()
	var tagErr *schema.TagError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, "A", tagErr.Field)

	_, err = schema.Of(nil)
	assert.ErrorIs(t, err, schema.ErrNotStruct)
}

func TestSchema_Suggest(t *testing.T) {
	s, err := schema.For[records.Sensor]()
	require.NoError(t, err)

	suggestions := s.Suggest("Nme")
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Name", suggestions[0])

	assert.NotContains(t, s.Suggest("Name"), "Name")
	assert.LessOrEqual(t, len(s.Suggest("x")), 3)
}

func TestRegistry(t *testing.T) {
	r := schema.NewRegistry()
	assert.Zero(t, r.Count())

	first, err := r.Register(reflect.TypeFor[records.Triple]())
	require.NoError(t, err)

	second, err := r.Register(reflect.TypeFor[records.Triple]())
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, err = r.Register(reflect.TypeFor[records.Meta]())
	require.NoError(t, err)

	_, err = r.Register(reflect.TypeFor[string]())
	assert.ErrorIs(t, err, schema.ErrNotStruct)

	assert.Equal(t, 2, r.Count())

	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, reflect.TypeFor[records.Meta](), entries[0].Type)
	assert.Equal(t, reflect.TypeFor[records.Triple](), entries[1].Type)

	got, ok := r.Lookup(reflect.TypeFor[records.Triple]())
	assert.True(t, ok)
	assert.Same(t, first, got)

	r.Reset()
	assert.Zero(t, r.Count())

	_, ok = r.Lookup(reflect.TypeFor[records.Triple]())
	assert.False(t, ok)
}

func TestRegistry_Concurrent(t *testing.T) {
	r := schema.NewRegistry()
	typ := reflect.TypeFor[records.Sensor]()

	const workers = 16

	results := make([]*schema.Schema, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			s, err := r.Register(typ)
			assert.NoError(t, err)
			results[i] = s
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, r.Count())
	for _, s := range results {
		assert.Same(t, results[0], s)
	}
}
