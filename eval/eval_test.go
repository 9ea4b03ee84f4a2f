package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfusionMatrix(t *testing.T) {
	m := NewConfusionMatrix([]string{"slice", "whole", "box"})

	require.NoError(t, m.Add("slice", "slice"))
	require.NoError(t, m.Add("slice", "slice"))
	require.NoError(t, m.Add("slice", "box"))
	require.NoError(t, m.Add("whole", "whole"))
	require.NoError(t, m.Add("box", "slice"))

	assert.Equal(t, 5, m.Total())
	assert.Equal(t, 3, m.Correct())
	assert.InDelta(t, 0.6, m.Accuracy(), 1e-9)

	assert.Equal(t, 2, m.Count("slice", "slice"))
	assert.Equal(t, 1, m.Count("slice", "box"))
	assert.Equal(t, 0, m.Count("box", "box"))

	assert.InDelta(t, 2.0/3.0, m.ClassAccuracy("slice"), 1e-9)
	assert.InDelta(t, 1.0, m.ClassAccuracy("whole"), 1e-9)
	assert.InDelta(t, 0.0, m.ClassAccuracy("box"), 1e-9)
}

func TestConfusionMatrixUnknownClass(t *testing.T) {
	m := NewConfusionMatrix([]string{"a", "b"})

	var uc *ErrUnknownClass
	require.ErrorAs(t, m.Add("c", "a"), &uc)
	assert.Equal(t, "c", uc.Class)

	require.ErrorAs(t, m.Add("a", "c"), &uc)

	assert.Equal(t, 0, m.Total())
	assert.Equal(t, 0, m.Count("c", "a"))
}

func TestConfusionMatrixEmpty(t *testing.T) {
	m := NewConfusionMatrix([]string{"a"})
	assert.Equal(t, 0.0, m.Accuracy())
	assert.Equal(t, 0.0, m.ClassAccuracy("a"))
	assert.Equal(t, []string{"a"}, m.Classes())
}
