package i18n_test

import (
	"testing"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/i18n"
	"github.com/stretchr/testify/assert"
)

func pairs(kv ...string) *domain.Document {
	doc := &domain.Document{Name: "pairs"}
	for i := 0; i+1 < len(kv); i += 2 {
		doc.Elements = append(doc.Elements, domain.Element{Tag: kv[i], Body: kv[i+1]})
	}
	return doc
}

func TestTable_Resolve(t *testing.T) {
	table := i18n.NewTable()
	table.Load(pairs("greet", "Hello, traveler", "bye", "Farewell"))

	assert.Equal(t, "Hello, traveler", table.Resolve("greet"))
	assert.Equal(t, "unknown_key", table.Resolve("unknown_key"), "unknown keys fall back to the key")
	assert.Equal(t, 2, table.Len())

	// Idempotent until overwritten
	for i := 0; i < 3; i++ {
		assert.Equal(t, "Farewell", table.Resolve("bye"))
	}
}

func TestTable_LastWriterWins(t *testing.T) {
	table := i18n.NewTable()
	table.Load(pairs("greet", "Hello"))
	table.Load(pairs("greet", "Olá"))

	assert.Equal(t, "Olá", table.Resolve("greet"))

	_, ok := table.Lookup("missing")
	assert.False(t, ok)
}

func TestTable_LoadNil(t *testing.T) {
	table := i18n.NewTable()
	table.Load(nil)
	assert.Equal(t, 0, table.Len())
}
