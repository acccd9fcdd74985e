package data

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/go-kratos/kratos/v2/log"
	"google.golang.org/genai"

	"github.com/iWorld-y/career_advisor/app/advisor/internal/conf"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/repo"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	defaultGeminiModel = "gemini-2.0-flash"
)

// NewGenerator 按配置创建文本生成模型，未配置 provider 时返回 nil
func NewGenerator(c *conf.LLM, sec *conf.Secrets, logger log.Logger) (repo.Generator, error) {
	helper := log.NewHelper(logger)
	if c == nil || c.Provider == "" {
		helper.Warn("llm provider not configured, /suggest-path is disabled")
		return nil, nil
	}
	if sec.LLMAPIKey == "" {
		return nil, fmt.Errorf("llm provider %q requires LLM_API_KEY or GEMINI_API_KEY", c.Provider)
	}

	ctx := context.Background()
	switch c.Provider {
	case ProviderOpenAI:
		cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL: c.BaseUrl,
			APIKey:  sec.LLMAPIKey,
			Model:   c.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("LLM 初始化失败: %w", err)
		}
		helper.Infof("llm provider openai, model %s", c.Model)
		return &chatGenerator{cm: cm}, nil

	case ProviderGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  sec.LLMAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("LLM 初始化失败: %w", err)
		}
		modelName := c.Model
		if modelName == "" {
			modelName = defaultGeminiModel
		}
		helper.Infof("llm provider gemini, model %s", modelName)
		return &geminiGenerator{models: client.Models, model: modelName}, nil

	default:
		return nil, fmt.Errorf("unknown llm provider: %s", c.Provider)
	}
}

// chatGenerator 基于 eino ChatModel，兼容任意 OpenAI 协议的服务
type chatGenerator struct {
	cm model.BaseChatModel
}

func (g *chatGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.cm.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// contentGenerator genai.Models 中用到的方法
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiGenerator struct {
	models contentGenerator
	model  string
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
