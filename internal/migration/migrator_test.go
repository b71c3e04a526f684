package migration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RacoonMediaServer/rms-gallery/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDatabase struct {
	mi      model.MetaInfo
	writes  int
	stamped int
	err     error
}

func (d *fakeDatabase) GetMetaInfo(ctx context.Context) (*model.MetaInfo, error) {
	mi := d.mi
	return &mi, nil
}

func (d *fakeDatabase) SetMetaInfo(ctx context.Context, mi model.MetaInfo) error {
	d.writes++
	d.mi = mi
	return nil
}

func (d *fakeDatabase) StampCatalogs(ctx context.Context, ts time.Time) (int64, error) {
	if d.err != nil {
		return 0, d.err
	}
	d.stamped++
	return 2, nil
}

func TestMigrator_Run(t *testing.T) {
	type testCase struct {
		before  model.MetaInfo
		after   model.MetaInfo
		stamped int
		writes  int
		isError bool
	}

	testCases := []testCase{
		{
			before:  model.MetaInfo{},
			after:   model.MetaInfo{Version: "v1.0.0", DatabaseVersion: 1},
			stamped: 1,
			writes:  2,
		},
		{
			before: model.MetaInfo{Version: "v0.9.0", DatabaseVersion: 1},
			after:  model.MetaInfo{Version: "v1.0.0", DatabaseVersion: 1},
			writes: 1,
		},
		{
			before: model.MetaInfo{Version: "v1.0.0", DatabaseVersion: 1},
			after:  model.MetaInfo{Version: "v1.0.0", DatabaseVersion: 1},
		},
		{
			before:  model.MetaInfo{Version: "v2.0.0", DatabaseVersion: 2},
			after:   model.MetaInfo{Version: "v2.0.0", DatabaseVersion: 2},
			isError: true,
		},
	}

	for i, tc := range testCases {
		db := &fakeDatabase{mi: tc.before}
		m := Migrator{CurrentVersion: "v1.0.0", DatabaseVersion: 1, Database: db}
		err := m.Run(context.Background())
		if tc.isError {
			assert.Error(t, err, "Test %d failed", i)
		} else {
			assert.NoError(t, err, "Test %d failed", i)
		}
		assert.Equal(t, tc.after, db.mi, "Test %d failed", i)
		assert.Equal(t, tc.stamped, db.stamped, "Test %d failed", i)
		assert.Equal(t, tc.writes, db.writes, "Test %d failed", i)
	}
}

func TestMigrator_Failed(t *testing.T) {
	db := &fakeDatabase{err: errors.New("connection lost")}
	m := Migrator{CurrentVersion: "v1.0.0", DatabaseVersion: 1, Database: db}
	require.Error(t, m.Run(context.Background()))
	assert.Equal(t, uint(0), db.mi.DatabaseVersion)
	assert.Equal(t, 0, db.writes)

	m = Migrator{CurrentVersion: "v1.0.0", DatabaseVersion: 3, Database: &fakeDatabase{}}
	assert.Error(t, m.Run(context.Background()))
}
