package migration

import (
	"context"
	"time"

	"go-micro.dev/v4/logger"
)

// catalogs written by hand before v1 have no modification time
func (m *Migrator) migrateDatabaseV0ToV1(ctx context.Context) error {
	updated, err := m.Database.StampCatalogs(ctx, time.Now())
	if err != nil {
		return err
	}
	logger.Infof("%d catalogs stamped", updated)
	return nil
}
