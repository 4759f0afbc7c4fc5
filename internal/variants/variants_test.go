package variants

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_MalformedInputFallsBack(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{name: "nil", raw: nil},
		{name: "empty string", raw: ""},
		{name: "whitespace string", raw: "   "},
		{name: "corrupt json", raw: "{enabled: tr"},
		{name: "json scalar", raw: "42"},
		{name: "empty object", raw: "{}"},
		{name: "empty array", raw: "[]"},
		{name: "options without values", raw: `{"enabled":true,"options":[{"label":"Talla","values":[]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Normalize(tt.raw)
			assert.False(t, cfg.Enabled)
			assert.Empty(t, cfg.Options)
			assert.Empty(t, cfg.Variants)
			assert.Zero(t, cfg.TotalStock)
		})
	}
}

func TestNormalize_LegacyBareOptionArray(t *testing.T) {
	cfg := Normalize(`[{"label":"Talla","values":["S","M"]}]`)

	require.Len(t, cfg.Options, 1)
	assert.Equal(t, "talla", cfg.Options[0].ID)
	assert.Equal(t, []string{"S", "M"}, cfg.Options[0].Values)
	// Legacy arrays carry no enabled flag and no combinations.
	assert.False(t, cfg.Enabled)
	assert.Empty(t, cfg.Variants)
}

func TestNormalize_OptionResolution(t *testing.T) {
	raw := `{"options":[
		{"name":"Talla","values":["S","S","M"," ","L"]},
		{"values":["Rojo","Azul"]},
		{"label":"Acabado","values":"mate, brillante, ,mate"},
		{"label":"","values":["x"]},
		{"label":"Talla","values":["36","38"]}
	]}`

	cfg := Normalize(raw)

	require.Len(t, cfg.Options, 4)

	assert.Equal(t, Option{ID: "talla", Label: "Talla", Values: []string{"S", "M", "L"}}, cfg.Options[0])

	// No label, name, or id: positional fallback label, id slugified from it.
	assert.Equal(t, "opcion-2", cfg.Options[1].ID)
	assert.Equal(t, "Opción 2", cfg.Options[1].Label)

	// Comma-joined value string splits, trims, and dedups.
	assert.Equal(t, []string{"mate", "brillante"}, cfg.Options[2].Values)

	// The second "Talla" collides and gets its 1-based position as suffix.
	assert.Equal(t, "talla-5", cfg.Options[3].ID)
	assert.Equal(t, "Talla", cfg.Options[3].Label)
}

func TestNormalize_NoDuplicateOptionIDs(t *testing.T) {
	raw := `{"options":[
		{"label":"Color","values":["Rojo"]},
		{"label":"color","values":["Azul"]},
		{"label":"COLOR!","values":["Verde"]}
	]}`

	cfg := Normalize(raw)

	require.Len(t, cfg.Options, 3)
	seen := map[string]bool{}
	for _, option := range cfg.Options {
		assert.False(t, seen[option.ID], "duplicate option id %q", option.ID)
		seen[option.ID] = true
	}
}

func TestNormalize_CombinationsAllOrNothing(t *testing.T) {
	raw := `{"enabled":true,
		"options":[
			{"id":"talla","label":"Talla","values":["S","M"]},
			{"id":"color","label":"Color","values":["Rojo","Azul"]}
		],
		"variants":[
			{"values":{"talla":"S","color":"Rojo"},"stock":3},
			{"values":{"talla":"S"},"stock":9},
			{"values":{"talla":"XL","color":"Rojo"},"stock":9},
			{"values":{"talla":"M","color":""},"stock":9}
		]}`

	cfg := Normalize(raw)

	require.Len(t, cfg.Variants, 1)
	assert.Equal(t, "talla:S|color:Rojo", cfg.Variants[0].Key)
	assert.Equal(t, int64(3), cfg.Variants[0].Stock)
	for _, variant := range cfg.Variants {
		assert.Len(t, variant.Values, len(cfg.Options))
	}
}

func TestNormalize_DuplicateCombinationsSumStock(t *testing.T) {
	raw := `{"enabled":true,
		"options":[
			{"id":"talla","label":"Talla","values":["S","M"]},
			{"id":"color","label":"Color","values":["Rojo","Azul"]}
		],
		"variants":[
			{"values":{"talla":"M","color":"Rojo"},"stock":3},
			{"values":{"talla":"M","color":"Rojo"},"stock":2}
		]}`

	cfg := Normalize(raw)

	require.Len(t, cfg.Variants, 1)
	assert.Equal(t, int64(5), cfg.Variants[0].Stock)
	assert.Equal(t, int64(5), cfg.TotalStock)
}

func TestNormalize_LabelKeyedValuesAndAliases(t *testing.T) {
	// Older rows keyed variant values by option label and used
	// quantity/attributes aliases.
	raw := `{"enabled":true,
		"options":[{"id":"talla","label":"Talla","values":["S","M"]}],
		"variants":[
			{"attributes":{"Talla":"S"},"quantity":4},
			{"options":{"talla":"M"},"available":"2"}
		]}`

	cfg := Normalize(raw)

	require.Len(t, cfg.Variants, 2)
	assert.Equal(t, int64(4), cfg.Variants[0].Stock)
	assert.Equal(t, int64(2), cfg.Variants[1].Stock)
	assert.Equal(t, int64(6), cfg.TotalStock)
}

func TestNormalize_StockCoercion(t *testing.T) {
	raw := `{"enabled":true,
		"options":[{"id":"talla","label":"Talla","values":["S","M","L"]}],
		"variants":[
			{"values":{"talla":"S"},"stock":2.9},
			{"values":{"talla":"M"},"stock":-5},
			{"values":{"talla":"L"},"stock":"oops"}
		]}`

	cfg := Normalize(raw)

	require.Len(t, cfg.Variants, 3)
	assert.Equal(t, int64(2), cfg.Variants[0].Stock)
	assert.Equal(t, int64(0), cfg.Variants[1].Stock)
	assert.Equal(t, int64(0), cfg.Variants[2].Stock)
}

func TestNormalize_EnabledRequiresVariants(t *testing.T) {
	raw := `{"enabled":true,
		"options":[{"id":"talla","label":"Talla","values":["S"]}],
		"variants":[{"values":{"talla":"XL"},"stock":4}]}`

	cfg := Normalize(raw)

	assert.False(t, cfg.Enabled, "declared options with no valid combinations stay disabled")
	assert.Zero(t, cfg.TotalStock)
	assert.Len(t, cfg.Options, 1)
}

func TestNormalize_ExampleScenario(t *testing.T) {
	raw := `{"enabled":true,
		"options":[
			{"id":"talla","label":"Talla","values":["S","M"]},
			{"id":"color","label":"Color","values":["Rojo","Azul"]}
		],
		"variants":[
			{"values":{"talla":"S","color":"Rojo"},"stock":4},
			{"values":{"talla":"S","color":"Rojo"},"stock":1},
			{"values":{"talla":"M","color":"Azul"},"stock":2}
		]}`

	cfg := Normalize(raw)

	assert.True(t, cfg.Enabled)
	require.Len(t, cfg.Variants, 2)
	assert.Equal(t, "talla:S|color:Rojo", cfg.Variants[0].Key)
	assert.Equal(t, int64(5), cfg.Variants[0].Stock)
	assert.Equal(t, "talla:M|color:Azul", cfg.Variants[1].Key)
	assert.Equal(t, int64(2), cfg.Variants[1].Stock)
	assert.Equal(t, int64(7), cfg.TotalStock)
}

func TestNormalize_RoundTrip(t *testing.T) {
	raw := `{"enabled":true,
		"options":[
			{"id":"talla","label":"Talla","values":["S","M"]},
			{"id":"color","label":"Color","values":["Rojo","Azul"]}
		],
		"variants":[
			{"values":{"talla":"S","color":"Rojo"},"stock":4},
			{"values":{"talla":"M","color":"Azul"},"stock":2}
		]}`

	first := Normalize(raw)

	serialized, err := json.Marshal(first)
	require.NoError(t, err)

	second := Normalize(string(serialized))
	assert.Equal(t, first, second)
}

func TestBuildVariantKey_DeclarationOrder(t *testing.T) {
	options := []Option{
		{ID: "color", Label: "Color", Values: []string{"Rojo"}},
		{ID: "talla", Label: "Talla", Values: []string{"S"}},
	}
	values := map[string]string{"talla": "S", "color": "Rojo"}

	key := BuildVariantKey(options, values)
	assert.Equal(t, "color:Rojo|talla:S", key)

	assert.Equal(t, "", BuildVariantKey(nil, values))
}

func TestEffectiveStock(t *testing.T) {
	enabled := Config{Enabled: true, TotalStock: 7}
	disabled := Config{Enabled: false, TotalStock: 99}

	assert.Equal(t, int64(7), EffectiveStock(enabled, 3))
	assert.Equal(t, int64(3), EffectiveStock(disabled, 3))
	assert.Equal(t, int64(0), EffectiveStock(Disabled(), 0))
}
