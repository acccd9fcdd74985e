package conf

import (
	"fmt"
	"os"
	"strings"
)

type Bootstrap struct {
	Server *Server
	Data   *Data
	Llm    *LLM
	Log    *Log
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr    string
	Timeout string
}

type Data struct {
	Store   *Store
	Schemes *Schemes
}

// Store 外部托管的关系型存储
type Store struct {
	// Timeout 仅作用于 REST 后端的单次请求
	Timeout string
}

// Schemes 政府资助项目数据集
type Schemes struct {
	// Source 本地 CSV 路径，或 s3://bucket/key
	Source    string `json:"source"`
	Region    string `json:"region"`
	Endpoint  string `json:"endpoint"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

type LLM struct {
	// Provider 取值 openai 或 gemini，为空时不启用推荐接口
	Provider string `json:"provider"`
	BaseUrl  string `json:"base_url"`
	Model    string `json:"model"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// Secrets 从进程环境变量读取的连接凭据
type Secrets struct {
	StoreURL  string
	StoreKey  string
	LLMAPIKey string
}

// LoadSecrets 读取连接凭据，STORE_URL 与 STORE_KEY 缺一不可
func LoadSecrets() (*Secrets, error) {
	s := &Secrets{
		StoreURL:  os.Getenv("STORE_URL"),
		StoreKey:  os.Getenv("STORE_KEY"),
		LLMAPIKey: os.Getenv("LLM_API_KEY"),
	}
	if s.LLMAPIKey == "" {
		s.LLMAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	var missing []string
	if s.StoreURL == "" {
		missing = append(missing, "STORE_URL")
	}
	if s.StoreKey == "" {
		missing = append(missing, "STORE_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment: %s", strings.Join(missing, ", "))
	}
	return s, nil
}
