package data

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/career_advisor/app/advisor/internal/conf"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/domain"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/repo"
)

// objectGetter s3.Client 中用到的方法
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// schemeRepo 启动时加载一次的只读数据集
type schemeRepo struct {
	schemes []*domain.Scheme
}

// NewSchemeRepo 从本地文件或 s3://bucket/key 加载资助项目数据集
func NewSchemeRepo(c *conf.Data, logger log.Logger) (repo.SchemeRepo, error) {
	helper := log.NewHelper(logger)
	if c == nil || c.Schemes == nil || c.Schemes.Source == "" {
		helper.Warn("scheme dataset not configured, /filter-schemes will return no results")
		return &schemeRepo{}, nil
	}

	ctx := context.Background()
	rc, err := openSchemeSource(ctx, c.Schemes, nil)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	schemes, err := parseSchemes(rc)
	if err != nil {
		return nil, fmt.Errorf("parse scheme dataset %s: %w", c.Schemes.Source, err)
	}
	helper.Infof("loaded %d schemes from %s", len(schemes), c.Schemes.Source)
	return &schemeRepo{schemes: schemes}, nil
}

func (r *schemeRepo) ListSchemes(ctx context.Context) ([]*domain.Scheme, error) {
	return r.schemes, nil
}

// openSchemeSource client 为空时按配置构造 S3 客户端
func openSchemeSource(ctx context.Context, c *conf.Schemes, client objectGetter) (io.ReadCloser, error) {
	if !strings.HasPrefix(c.Source, "s3://") {
		f, err := os.Open(c.Source)
		if err != nil {
			return nil, fmt.Errorf("open scheme dataset: %w", err)
		}
		return f, nil
	}

	u, err := url.Parse(c.Source)
	if err != nil {
		return nil, fmt.Errorf("invalid scheme source: %w", err)
	}
	bucket, key := u.Host, strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("scheme source %q must be s3://bucket/key", c.Source)
	}

	if client == nil {
		client, err = newS3Client(ctx, c)
		if err != nil {
			return nil, err
		}
	}
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get scheme dataset from s3: %w", err)
	}
	return out.Body, nil
}

func newS3Client(ctx context.Context, c *conf.Schemes) (*s3.Client, error) {
	region := c.Region
	if region == "" {
		region = "auto"
	}
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if c.AccessKey != "" && c.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// parseSchemes 第一行为表头，其余每行一条记录
func parseSchemes(r io.Reader) ([]*domain.Scheme, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var schemes []*domain.Scheme
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		s := &domain.Scheme{Fields: make([]domain.Field, len(header))}
		for i, col := range header {
			s.Fields[i].Column = col
			if i < len(record) {
				s.Fields[i].Value = strings.TrimSpace(record[i])
			}
		}
		schemes = append(schemes, s)
	}
	return schemes, nil
}
