package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btyesteem/internal/model"
)

func TestLoadDefault(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	require.Len(t, c.Items, model.ItemCount)
	for i, it := range c.Items {
		assert.Equal(t, i, it.Index)
		assert.Equal(t, model.Sections[i/model.SectionSize], it.Section)
		assert.NotEmpty(t, it.Text)
	}

	assert.Len(t, c.Strengths, 5)
	assert.Len(t, c.ProfileThemes, 6)

	var sum float64
	for _, s := range model.Sections {
		sum += c.SectionWeights[s]
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestIsReverse(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.True(t, c.IsReverse(2))
	assert.True(t, c.IsReverse(9))
	assert.True(t, c.IsReverse(25))
	assert.False(t, c.IsReverse(0))
	assert.False(t, c.IsReverse(49))

	for _, it := range c.Items {
		assert.Equal(t, it.ReverseCoded, c.IsReverse(it.Index))
	}
}

func TestTheme(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	theme, ok := c.Theme(model.ProfileRooted)
	require.True(t, ok)
	assert.Equal(t, "Rooted", theme.Label)
	assert.NotEmpty(t, theme.Color)

	_, ok = c.Theme(model.ProfileType("unknown"))
	assert.False(t, ok)
}

func TestLoadFileOverride(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	c.Items[0].Text = "Custom wording for item zero."
	data, err := json.Marshal(c)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("CATALOG_PATH", path)

	custom, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Custom wording for item zero.", custom.Items[0].Text)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestValidateRejectsBrokenCatalogs(t *testing.T) {
	base := func(t *testing.T) *Catalog {
		c, err := Load()
		require.NoError(t, err)
		return c
	}

	t.Run("wrong item count", func(t *testing.T) {
		c := base(t)
		c.Items = c.Items[:49]
		assert.Error(t, c.validate())
	})

	t.Run("out of order index", func(t *testing.T) {
		c := base(t)
		c.Items[3].Index = 7
		assert.Error(t, c.validate())
	})

	t.Run("wrong section block", func(t *testing.T) {
		c := base(t)
		c.Items[12].Section = model.SectionSocial
		assert.Error(t, c.validate())
	})

	t.Run("weights not summing to one", func(t *testing.T) {
		c := base(t)
		c.SectionWeights[model.SectionCore] = 0.5
		assert.Error(t, c.validate())
	})

	t.Run("evidence index out of range", func(t *testing.T) {
		c := base(t)
		c.Strengths[0].EvidenceIndices = []int{50}
		assert.Error(t, c.validate())
	})

	t.Run("duplicate strength key", func(t *testing.T) {
		c := base(t)
		c.Strengths[1].Key = c.Strengths[0].Key
		assert.Error(t, c.validate())
	})
}
