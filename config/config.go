package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // 不从配置文件读取，加载后计算
	} `yaml:"server"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	Catalog struct {
		Source       string `yaml:"source"`        // file 或 mysql
		Path         string `yaml:"path"`          // 目录快照JSON文件路径
		EnrichedPath string `yaml:"enriched_path"` // 类目增强映射JSON文件路径（可选）
		Table        string `yaml:"table"`         // mysql数据源的表名
	} `yaml:"catalog"`

	DB struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"`
		Charset         string `yaml:"charset"`
		ParseTime       bool   `yaml:"parse_time"`
		DSN             string `yaml:"-"`                 // 不从配置文件读取，加载后计算
		MaxOpenConns    int    `yaml:"max_open_conns"`    // 最大打开连接数
		MaxIdleConns    int    `yaml:"max_idle_conns"`    // 最大空闲连接数
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // 连接最大生命周期（分钟）
	} `yaml:"database"`

	Matching struct {
		DefaultTopN int `yaml:"default_top_n"` // 批量推荐默认返回条数
		MaxFeatures int `yaml:"max_features"`  // 词表最大特征数
	} `yaml:"matching"`

	Scheduler struct {
		ReloadHour       int `yaml:"reload_hour"`        // 每天重建目录的小时（0-23）
		ReloadMinute     int `yaml:"reload_minute"`      // 每天重建目录的分钟（0-59）
		CheckIntervalSec int `yaml:"check_interval_sec"` // 调度器检查间隔（秒）
	} `yaml:"scheduler"`
}

func Load() *Config {
	// 首先尝试加载.env文件中的环境变量
	_ = godotenv.Load() // .env不存在时忽略错误，继续使用系统环境变量

	var cfg Config

	// 尝试从config.yaml文件加载配置
	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Printf("Error loading config.yaml: %v, falling back to environment variables", err)
			return loadFromEnv()
		}
		log.Println("Loading configuration from config.yaml")
		applyEnvOverrides(&cfg)
		applyDefaults(&cfg)
		return &cfg
	}

	// 如果config.yaml不存在，则完全从环境变量加载配置
	return loadFromEnv()
}

// applyEnvOverrides 从环境变量中加载敏感信息，覆盖配置文件中的值
func applyEnvOverrides(cfg *Config) {
	if envUsername := os.Getenv("DATABASE_USERNAME"); envUsername != "" {
		cfg.DB.Username = envUsername
	}
	if envPassword := os.Getenv("DATABASE_PASSWORD"); envPassword != "" {
		cfg.DB.Password = envPassword
	}
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		cfg.Catalog.Path = path
	}
	if path := os.Getenv("CATALOG_ENRICHED_PATH"); path != "" {
		cfg.Catalog.EnrichedPath = path
	}
}

// applyDefaults 填充缺省值并计算派生字段
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = "file"
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "output_file.json"
	}
	if cfg.Catalog.EnrichedPath == "" {
		cfg.Catalog.EnrichedPath = "enhanced_categories.json"
	}
	if cfg.Catalog.Table == "" {
		cfg.Catalog.Table = "influencers"
	}

	if cfg.Matching.DefaultTopN <= 0 {
		cfg.Matching.DefaultTopN = 5
	}
	if cfg.Matching.MaxFeatures <= 0 {
		cfg.Matching.MaxFeatures = 5000
	}

	if cfg.Scheduler.CheckIntervalSec <= 0 {
		cfg.Scheduler.CheckIntervalSec = 60
	}

	// 计算 DB.DSN 字段
	if cfg.DB.DSN == "" && cfg.DB.Host != "" {
		if cfg.DB.Charset == "" {
			cfg.DB.Charset = "utf8mb4"
		}
		parseTime := ""
		if cfg.DB.ParseTime {
			parseTime = "&parseTime=true"
		}
		cfg.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s%s",
			cfg.DB.Username,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Database,
			cfg.DB.Charset,
			parseTime)
	}
}

func loadFromEnv() *Config {
	// 当config.yaml加载失败时，创建一个最小配置
	var cfg Config

	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	}
	if source := os.Getenv("CATALOG_SOURCE"); source != "" {
		cfg.Catalog.Source = source
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	log.Println("配置从环境变量加载，部分配置可能缺失")
	return &cfg
}
