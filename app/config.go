package main

import (
	"os"
	"strconv"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout  = 30
	defaultAddress  = ":9090"
	defaultCacheDB  = 0
	defaultLocation = "Asia/Shanghai"
)

type config struct {
	Address        string
	ContextTimeout time.Duration
	AutoMigrate    bool

	DBHost     string
	DBPort     string
	DBUser     string
	DBPass     string
	DBName     string
	DBLocation *time.Location

	CacheAddr string
	CachePass string
	CacheDB   int
}

// loadConfig 从环境变量读取配置, 解析失败时回落到默认值
func loadConfig() config {
	cfg := config{
		Address:   os.Getenv("SERVER_ADDRESS"),
		DBHost:    os.Getenv("DATABASE_HOST"),
		DBPort:    os.Getenv("DATABASE_PORT"),
		DBUser:    os.Getenv("DATABASE_USER"),
		DBPass:    os.Getenv("DATABASE_PASS"),
		DBName:    os.Getenv("DATABASE_NAME"),
		CacheAddr: os.Getenv("CACHE_HOST") + ":" + os.Getenv("CACHE_PORT"),
		CachePass: os.Getenv("CACHE_PASS"),
	}
	if cfg.Address == "" {
		cfg.Address = defaultAddress
	}

	timeout, err := strconv.Atoi(os.Getenv("CONTEXT_TIMEOUT"))
	if err != nil || timeout <= 0 {
		logrus.Warn("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	cfg.ContextTimeout = time.Duration(timeout) * time.Second

	cfg.CacheDB, err = strconv.Atoi(os.Getenv("CACHE_DB"))
	if err != nil {
		logrus.Warn("failed to parse cacheDB, using default cacheDB")
		cfg.CacheDB = defaultCacheDB
	}

	cfg.AutoMigrate, _ = strconv.ParseBool(os.Getenv("DATABASE_AUTO_MIGRATE"))

	locName := os.Getenv("DATABASE_LOC")
	if locName == "" {
		locName = defaultLocation
	}
	cfg.DBLocation, err = time.LoadLocation(locName)
	if err != nil {
		logrus.Warnf("unknown location %q, using UTC", locName)
		cfg.DBLocation = time.UTC
	}
	return cfg
}

func (c config) DSN() string {
	dsn := mysqldrv.NewConfig()
	dsn.User = c.DBUser
	dsn.Passwd = c.DBPass
	dsn.Net = "tcp"
	dsn.Addr = c.DBHost + ":" + c.DBPort
	dsn.DBName = c.DBName
	dsn.ParseTime = true
	dsn.Loc = c.DBLocation
	dsn.Params = map[string]string{"charset": "utf8mb4"}
	return dsn.FormatDSN()
}
