package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want Date
		ok   bool
	}{
		{"2020-01-01", NewDate(2020, time.January, 1), true},
		{"2021-03-15T10:30:00Z", NewDate(2021, time.March, 15), true},
		{"2021-03-15T23:30:00-03:00", NewDate(2021, time.March, 15), true},
		{" 2019-12-31 ", NewDate(2019, time.December, 31), true},
		{"15/03/2021", Date{}, false},
		{"", Date{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if !tc.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got.Time), "got %s", got)
		})
	}
}

func TestDateJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Start Date  `json:"start"`
		End   *Date `json:"end"`
		Zero  Date  `json:"zero"`
	}{Start: NewDate(2020, time.January, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2020-01-01","end":null,"zero":null}`, string(b))

	var in struct {
		Start Date  `json:"start"`
		End   *Date `json:"end"`
		Blank Date  `json:"blank"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2021-06-01T08:00:00Z","end":null,"blank":""}`), &in))
	assert.Equal(t, "2021-06-01", in.Start.String())
	assert.Nil(t, in.End)
	assert.True(t, in.Blank.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"start":"junho"}`), &in))
}

func TestDateValueScan(t *testing.T) {
	v, err := NewDate(2022, time.July, 9).Value()
	require.NoError(t, err)
	assert.Equal(t, "2022-07-09", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	for _, src := range []any{
		"2022-07-09",
		[]byte("2022-07-09"),
		time.Date(2022, time.July, 9, 0, 0, 0, 0, time.UTC),
		"2022-07-09 00:00:00+00:00",
	} {
		var d Date
		require.NoError(t, d.Scan(src), "%T", src)
		assert.Equal(t, "2022-07-09", d.String())
	}

	var d Date
	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
	assert.Error(t, d.Scan(42))
}
