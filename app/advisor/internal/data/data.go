package data

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	_ "github.com/lib/pq"

	"github.com/iWorld-y/career_advisor/app/advisor/internal/conf"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/repo"
)

const defaultStoreTimeout = 10 * time.Second

// Data 只读存储句柄，db 与 rest 二者只会有一个非空
type Data struct {
	db   *sql.DB
	rest *http.Client
}

// NewData 根据 STORE_URL 的 scheme 选择后端：
// postgres:// 直连数据库，http(s):// 走 PostgREST
func NewData(sec *conf.Secrets, c *conf.Data, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)

	u, err := url.Parse(sec.StoreURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid STORE_URL: %w", err)
	}

	switch u.Scheme {
	case "postgres", "postgresql":
		db, err := sql.Open("postgres", postgresDSN(u, sec.StoreKey))
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		cleanup := func() {
			helper.Info("closing the data resources")
			db.Close()
		}
		return &Data{db: db}, cleanup, nil

	case "http", "https":
		timeout := defaultStoreTimeout
		if c != nil && c.Store != nil && c.Store.Timeout != "" {
			if d, err := time.ParseDuration(c.Store.Timeout); err == nil {
				timeout = d
			}
		}
		client, err := newRESTClient(context.Background(), sec.StoreURL, sec.StoreKey, timeout)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			helper.Info("closing the data resources")
			client.Close()
		}
		return &Data{rest: client}, cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unsupported STORE_URL scheme %q", u.Scheme)
	}
}

// postgresDSN 连接串里没有密码时使用 STORE_KEY
func postgresDSN(u *url.URL, key string) string {
	dsn := *u
	if _, ok := dsn.User.Password(); !ok {
		name := dsn.User.Username()
		if name == "" {
			name = "postgres"
		}
		dsn.User = url.UserPassword(name, key)
	}
	return dsn.String()
}

// NewCollegeRepo 创建院校仓库
func NewCollegeRepo(data *Data, logger log.Logger) repo.CollegeRepo {
	if data.db != nil {
		return &pgCollegeRepo{db: data.db, log: log.NewHelper(logger)}
	}
	return &restCollegeRepo{cc: data.rest, log: log.NewHelper(logger)}
}

// NewProfileRepo 创建测评数据仓库
func NewProfileRepo(data *Data, logger log.Logger) repo.ProfileRepo {
	if data.db != nil {
		return &pgProfileRepo{db: data.db, log: log.NewHelper(logger)}
	}
	return &restProfileRepo{cc: data.rest, log: log.NewHelper(logger)}
}
