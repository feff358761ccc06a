package configs

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// S3Config MinIO S3存储配置.
// 文件注册表本身不写入对象字节，仅通过预签名 GET URL 对外暴露已上传对象.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	// PresignExpiry 预签名 URL 的有效期（秒）
	PresignExpiry int `mapstructure:"presign_expiry" rule:"min=60,max=604800"`
	// URLCacheTTL 已解析 URL 的缓存时长（秒），必须小于 PresignExpiry
	URLCacheTTL int `mapstructure:"url_cache_ttl" rule:"min=0"`
}

const (
	DefaultS3Endpoint        = "localhost:9000" // 默认S3端点
	DefaultS3AccessKeyID     = "minioadmin"     // 默认访问密钥ID
	DefaultS3SecretAccessKey = "minioadmin"     // 默认秘密访问密钥
	DefaultS3UseSSL          = false            // 默认是否使用SSL
	DefaultS3Bucket          = "filedrive"      // 默认存储桶名称
	DefaultS3Region          = "us-east-1"      // 默认区域
	DefaultS3PresignExpiry   = 3600             // 默认预签名有效期（1小时）
	DefaultS3URLCacheTTL     = 300              // 默认URL缓存时长（5分钟）
)

// GetEndpointURL 获取完整的端点URL.
func (c *S3Config) GetEndpointURL() string {
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s", scheme, c.Endpoint)
}

// GetPresignExpiry 返回预签名有效期作为 time.Duration.
func (c *S3Config) GetPresignExpiry() time.Duration {
	return time.Duration(c.PresignExpiry) * time.Second
}

// GetURLCacheTTL 返回URL缓存时长作为 time.Duration.
func (c *S3Config) GetURLCacheTTL() time.Duration {
	return time.Duration(c.URLCacheTTL) * time.Second
}

// setDefaults 设置 S3 配置的默认值.
func (c *S3Config) setDefaults(v *viper.Viper) {
	v.SetDefault("s3.endpoint", DefaultS3Endpoint)
	v.SetDefault("s3.access_key_id", DefaultS3AccessKeyID)
	v.SetDefault("s3.secret_access_key", DefaultS3SecretAccessKey)
	v.SetDefault("s3.use_ssl", DefaultS3UseSSL)
	v.SetDefault("s3.bucket", DefaultS3Bucket)
	v.SetDefault("s3.region", DefaultS3Region)
	v.SetDefault("s3.presign_expiry", DefaultS3PresignExpiry)
	v.SetDefault("s3.url_cache_ttl", DefaultS3URLCacheTTL)
}
