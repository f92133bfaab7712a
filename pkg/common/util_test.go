package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-03-05T22:10:00+07:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("05/03/2024")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("APAR_TEST_VALUE", " 42 ")
	assert.Equal(t, "42", EnvOrDefault("APAR_TEST_VALUE", "x"))
	assert.Equal(t, 42, EnvIntOrDefault("APAR_TEST_VALUE", 1))

	t.Setenv("APAR_TEST_VALUE", "")
	assert.Equal(t, "x", EnvOrDefault("APAR_TEST_VALUE", "x"))
	assert.Equal(t, 1, EnvIntOrDefault("APAR_TEST_VALUE", 1))
}

func TestMapperReducer(t *testing.T) {
	doubled := Mapper([]int{1, 2, 3}, func(i int) int { return i * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	set := Reducer([]string{"a", "b", "a"}, func(m map[string]int, s string) map[string]int {
		m[s]++
		return m
	}, map[string]int{})
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, set)
}
