package db

import (
	"context"
	"fmt"

	"github.com/yeisme/filedrive/pkg/internal/model"
)

// Migrate 同步本服务拥有的表结构.
// user_profiles 由身份服务维护，这里不迁移.
func (c *Client) Migrate(ctx context.Context) error {
	if err := c.DB.WithContext(ctx).AutoMigrate(
		&model.File{},
		&model.Favorite{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return nil
}
