package tools_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/createfake/config"
	"github.com/katalvlaran/createfake/faker"
	"github.com/katalvlaran/createfake/tools"
)

type invoice struct {
	Number string
	Lines  []line
	Notes  map[string]string
	Parent *invoice
}

type line struct {
	SKU string
	Qty int
}

func TestDefault(t *testing.T) {
	a := tools.Default()
	require.Same(t, a, tools.Default())
	require.Equal(t, config.Defaults(), a.Settings)

	inv, err := tools.Create[invoice](a)
	require.NoError(t, err)

	cp := tools.Copy(a, inv)
	ok, err := a.Valuer.Equals(inv, cp)
	require.NoError(t, err)
	require.True(t, ok)

	cp.Lines[0].Qty++
	diffs, err := a.Valuer.Compare(inv, cp)
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	require.Equal(t, "Lines[0].Qty", diffs[0].Path)
}

func TestNew_Seeded(t *testing.T) {
	s := config.Defaults()
	s.Seed = 99
	a, err := tools.New(s)
	require.NoError(t, err)
	b, err := tools.New(s)
	require.NoError(t, err)

	x, err := tools.Create[invoice](a)
	require.NoError(t, err)
	y, err := tools.Create[invoice](b)
	require.NoError(t, err)

	ok, err := a.Valuer.Equals(x, y)
	require.NoError(t, err)
	require.True(t, ok)

	s.Limiter = 0
	_, err = tools.New(s)
	require.ErrorIs(t, err, config.ErrInvalidSettings)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 3\nlimiter: 1\n"), 0o600))

	tl, err := tools.FromFile(path)
	require.NoError(t, err)
	inv, err := tools.Create[invoice](tl)
	require.NoError(t, err)
	require.Nil(t, inv.Parent)

	_, err = tools.FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRecorder(t *testing.T) {
	tl := tools.Default()
	rec := tl.NewRecorder()

	inv, err := tools.Create[invoice](tl)
	require.NoError(t, err)
	require.NoError(t, rec.Record(faker.NewCall("Submit", nil, &inv)))
	inv.Number = "changed"

	n, err := rec.Count(faker.NewCall("Submit", nil, faker.Where(func(p *invoice) bool { return p.Number != "changed" })))
	require.NoError(t, err)
	require.Equal(t, 1, n, "recorded arguments are snapshots")
}
