package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/showcase/internal/state"
)

func TestInitialize_DefaultsToLight(t *testing.T) {
	c := New(state.NewMock(), nil)

	assert.Equal(t, Light, c.Initialize())
	assert.Equal(t, IconMoon, c.Icon())
	assert.Equal(t, "light", c.Attribute())
}

func TestInitialize_StoredDark(t *testing.T) {
	store := state.NewMock()
	require.NoError(t, store.SetPreference(PreferenceKey, "dark"))

	c := New(store, nil)

	assert.Equal(t, Dark, c.Initialize())
	assert.Equal(t, IconSun, c.Icon())
	assert.Equal(t, "dark", c.Attribute())
}

func TestInitialize_StoreErrorFallsBackToLight(t *testing.T) {
	store := state.NewMock()
	store.SetGetError(errors.New("disk gone"))

	c := New(store, nil)

	assert.Equal(t, Light, c.Initialize())
}

func TestInitialize_UnknownValueIsLight(t *testing.T) {
	store := state.NewMock()
	require.NoError(t, store.SetPreference(PreferenceKey, "sepia"))

	assert.Equal(t, Light, New(store, nil).Initialize())
}

func TestToggle_PersistsAndSwapsIcon(t *testing.T) {
	store := state.NewMock()
	c := New(store, nil)
	c.Initialize()

	assert.Equal(t, Dark, c.Toggle())
	assert.Equal(t, "dark", store.Preference(PreferenceKey))
	assert.Equal(t, IconSun, c.Icon())

	assert.Equal(t, Light, c.Toggle())
	assert.Equal(t, "light", store.Preference(PreferenceKey))
	assert.Equal(t, IconMoon, c.Icon())
}

func TestToggle_IsAnInvolution(t *testing.T) {
	for _, start := range []Mode{Light, Dark} {
		t.Run(string(start), func(t *testing.T) {
			store := state.NewMock()
			require.NoError(t, store.SetPreference(PreferenceKey, string(start)))
			c := New(store, nil)
			c.Initialize()

			c.Toggle()
			c.Toggle()

			assert.Equal(t, start, c.Mode())
			assert.Equal(t, string(start), store.Preference(PreferenceKey))
		})
	}
}

func TestToggle_WriteFailureStillFlips(t *testing.T) {
	store := state.NewMock()
	store.SetSetError(errors.New("read-only"))
	c := New(store, nil)
	c.Initialize()

	assert.Equal(t, Dark, c.Toggle())
	assert.Equal(t, Dark, c.Mode())
	assert.Equal(t, 1, store.SetCalls())
}

func TestToggle_WithRealStore(t *testing.T) {
	m, err := state.OpenPath(":memory:")
	require.NoError(t, err)
	defer m.Close()

	c := New(m, nil)
	c.Initialize()
	c.Toggle()

	again := New(m, nil)
	assert.Equal(t, Dark, again.Initialize())
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, Dark, ParseMode("dark"))
	assert.Equal(t, Light, ParseMode("light"))
	assert.Equal(t, Light, ParseMode(""))
	assert.Equal(t, Light, Dark.Other())
	assert.Equal(t, Dark, Light.Other())
}
