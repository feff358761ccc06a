// Package s3 处理对象存储访问，负责为已登记对象生成预签名 GET URL.
package s3

import (
	"context"
	"fmt"
	"net/url"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yeisme/filedrive/pkg/configs"
	nlog "github.com/yeisme/filedrive/pkg/log"
)

// Client 包装 MinIO 客户端.
type Client struct {
	*minio.Client

	cfg configs.S3Config
}

// New 初始化 MinIO 客户端，若 bucket 不存在则尝试创建.
func New(ctx context.Context, cfg *configs.S3Config) (*Client, error) {
	endpoint := cfg.Endpoint
	// 允许用户传完整 schema endpoint（http:// 或 https://）
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
		if u.Scheme == "https" {
			cfg.UseSSL = true
		}
	}

	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	cli.SetAppInfo(configs.AppName, configs.AppVersion)

	if cfg.Bucket != "" {
		exists, err := cli.BucketExists(ctx, cfg.Bucket)
		if err != nil {
			return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
		}

		if !exists {
			if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
				return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
			}

			nlog.Logger().Info().Str("bucket", cfg.Bucket).Msg("bucket created")
		}
	}

	nlog.Logger().Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.Bucket).Msg("s3 connected")

	return &Client{Client: cli, cfg: *cfg}, nil
}

// ResolveURL 为对象引用生成一个带有效期的预签名 GET URL.
// 对象由上传方直接写入桶内，注册表只按 storage_ref 反查访问地址.
func (c *Client) ResolveURL(ctx context.Context, storageRef string) (string, error) {
	if storageRef == "" {
		return "", fmt.Errorf("empty storage ref")
	}

	u, err := c.PresignedGetObject(ctx, c.cfg.Bucket, storageRef, c.cfg.GetPresignExpiry(), url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign object %s: %w", storageRef, err)
	}

	return u.String(), nil
}

// HealthCheck 简单的健康检查，通过列出桶来验证连接.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.ListBuckets(ctx)
	return err
}

// Close 关闭 S3 客户端连接（无实际操作，接口兼容）.
func (c *Client) Close() error {
	return nil
}

// GetConfig 返回客户端当前生效的 S3 配置.
func (c *Client) GetConfig() configs.S3Config {
	return c.cfg
}
