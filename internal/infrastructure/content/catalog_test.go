package content

import (
	"testing"
	"testing/fstest"

	"cpptutor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltInCatalogs(t *testing.T) {
	catalogs, err := Load("")
	require.NoError(t, err)

	for _, lang := range []domain.Language{domain.English, domain.Arabic} {
		c := catalogs[lang]
		require.NotNil(t, c, "language %d", lang)
		require.Len(t, c.Levels, 3)
		assert.Equal(t, 6, c.LessonCount(0))
		assert.Equal(t, 5, c.LessonCount(1))
		assert.Equal(t, 5, c.LessonCount(2))
		for _, lvl := range c.Levels {
			for i, l := range lvl.Lessons {
				assert.NotEmpty(t, l.Title(), "%s lesson %d", lvl.Name, i)
				assert.NotEmpty(t, l.Challenge, "%s lesson %d", lvl.Name, i)
				assert.NotEmpty(t, l.Solution, "%s lesson %d", lvl.Name, i)
			}
		}
	}
	assert.Equal(t, "Beginner 👶", catalogs[domain.English].Levels[0].Name)
	assert.True(t, catalogs[domain.English].Levels[1].Lessons[1].HasRelated())
}

func TestLoadReturnsIndependentCopies(t *testing.T) {
	a, err := Load("")
	require.NoError(t, err)
	b, err := Load("")
	require.NoError(t, err)

	require.NoError(t, a[domain.English].Edit(0, 0, domain.FieldCode, "changed"))
	assert.NotEqual(t, "changed", b[domain.English].Levels[0].Lessons[0].Code)
}

func TestLoadFSOverride(t *testing.T) {
	level := "levels:\n  - name: Only\n    lessons:\n      - explanation: \"Hi\\nthere\"\n        challenge: c\n        solution: s\n"
	fsys := fstest.MapFS{
		"en.yaml": {Data: []byte(level)},
		"ar.yaml": {Data: []byte(level)},
	}
	catalogs, err := LoadFS(fsys)
	require.NoError(t, err)
	assert.Equal(t, "Hi", catalogs[domain.English].Levels[0].Lessons[0].Title())
}

func TestLoadFSRejectsBadCatalogs(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{"en.yaml": {Data: []byte("levels: []\n")}, "ar.yaml": {Data: []byte("levels: []\n")}})
	assert.Error(t, err)

	_, err = LoadFS(fstest.MapFS{"en.yaml": {Data: []byte("levels: [")}, "ar.yaml": {Data: []byte("levels: [")}})
	assert.Error(t, err)

	_, err = LoadFS(fstest.MapFS{})
	assert.Error(t, err)
}
