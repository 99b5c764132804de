package migration

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_Embedded(t *testing.T) {
	src, err := Runner{}.source()
	require.NoError(t, err)

	migs, err := loadMigrations(src)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(migs), 2)
	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "create_jobs", migs[0].Name)
	for i := 1; i < len(migs); i++ {
		assert.Less(t, migs[i-1].Version, migs[i].Version)
	}
}

func TestLoadMigrations_SkipsForeignFilesAndRejectsDuplicates(t *testing.T) {
	src := fstest.MapFS{
		"V2__b.sql":  {Data: []byte("SELECT 2")},
		"V1__a.sql":  {Data: []byte("SELECT 1")},
		"README.md":  {Data: []byte("docs")},
		"V3_bad.sql": {Data: []byte("SELECT 3")},
	}
	migs, err := loadMigrations(src)
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, "a", migs[0].Name)

	src["V1__dup.sql"] = &fstest.MapFile{Data: []byte("SELECT 1")}
	_, err = loadMigrations(src)
	assert.Error(t, err)
}

func TestLoadMigrations_EmptyFile(t *testing.T) {
	src := fstest.MapFS{"V1__empty.sql": {Data: []byte("   ")}}
	_, err := loadMigrations(src)
	assert.Error(t, err)
}
