// Package contentstore 封装外部 Headless CMS 的 REST 接口。
//
// 约定（Directus 风格）：
//   - GET    {endpoint}/items/{collection}?fields=..&filter[f][_eq]=v&sort=-f&limit=-1
//   - POST   {endpoint}/items/{collection}
//   - PATCH  {endpoint}/items/{collection}/{id}
//
// 所有响应体形如 {"data": ...}，所有请求携带 Bearer 凭证。
// 客户端不做重试、不做缓存，非 2xx 响应统一返回 *StatusError。
package contentstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"event-awards/config"
)

// 错误响应体最多读取的字节数
const maxErrorBody = 64 << 10

const defaultTimeout = 10 * time.Second

// StatusError 内容库返回了非成功状态码
type StatusError struct {
	Method     string
	Collection string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("内容库 %s %s 返回 %d: %s", e.Method, e.Collection, e.StatusCode, e.Body)
}

// Client 内容库 HTTP 客户端，构造时校验连接配置
type Client struct {
	endpoint *url.URL
	token    string
	http     *http.Client
	logger   *zap.Logger
}

// Option 客户端可选项
type Option func(*Client)

// WithHTTPClient 替换底层 http.Client（测试中注入 httptest 客户端）
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New 创建内容库客户端；缺少 endpoint 或 token 直接返回错误
func New(cfg *config.StoreConfig, logger *zap.Logger, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("内容库配置为空")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	endpoint, err := url.Parse(strings.TrimRight(cfg.Endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("解析内容库地址失败: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		endpoint: endpoint,
		token:    cfg.Token,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	logger.Info("内容库客户端已初始化",
		zap.String("endpoint", endpoint.String()),
		zap.Duration("timeout", timeout),
	)

	return c, nil
}

// ── 查询参数 ──

// Query 列表查询条件
type Query struct {
	Fields []string
	// Filter 字段等值过滤，键可为关联路径（如 participant_nominee.team）
	Filter map[string]string
	// Sort 排序字段，"-" 前缀表示降序
	Sort []string
	// Limit 0 表示不限制（-1）
	Limit int
}

// Values 编码为 URL 查询参数
func (q Query) Values() url.Values {
	v := url.Values{}
	if len(q.Fields) > 0 {
		v.Set("fields", strings.Join(q.Fields, ","))
	}
	for field, value := range q.Filter {
		v.Set(fmt.Sprintf("filter[%s][_eq]", field), value)
	}
	if len(q.Sort) > 0 {
		v.Set("sort", strings.Join(q.Sort, ","))
	}
	if q.Limit > 0 {
		v.Set("limit", fmt.Sprintf("%d", q.Limit))
	} else {
		v.Set("limit", "-1")
	}
	return v
}

// ── 读写操作 ──

// List 读取集合，data 数组解码到 out
func (c *Client) List(ctx context.Context, collection string, q Query, out interface{}) error {
	return c.do(ctx, http.MethodGet, collection, "", q.Values(), nil, out)
}

// Create 创建条目，fields 控制返回记录的字段
func (c *Client) Create(ctx context.Context, collection string, body interface{}, fields []string, out interface{}) error {
	return c.do(ctx, http.MethodPost, collection, "", fieldsOnly(fields), body, out)
}

// Update 按 ID 局部更新条目
func (c *Client) Update(ctx context.Context, collection, id string, body interface{}, fields []string, out interface{}) error {
	if id == "" {
		return fmt.Errorf("更新 %s 缺少 ID", collection)
	}
	return c.do(ctx, http.MethodPatch, collection, id, fieldsOnly(fields), body, out)
}

func fieldsOnly(fields []string) url.Values {
	v := url.Values{}
	if len(fields) > 0 {
		v.Set("fields", strings.Join(fields, ","))
	}
	return v
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, collection, id string, query url.Values, body, out interface{}) error {
	u := *c.endpoint
	u.Path = u.Path + "/items/" + url.PathEscape(collection)
	if id != "" {
		u.Path += "/" + url.PathEscape(id)
	}
	u.RawQuery = query.Encode()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("序列化 %s 请求体失败: %w", collection, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("构造 %s %s 请求失败: %w", method, collection, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("请求内容库 %s %s 失败: %w", method, collection, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("内容库请求完成",
		zap.String("method", method),
		zap.String("collection", collection),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			Collection: collection,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(text)),
		}
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("解析内容库 %s 响应失败: %w", collection, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("解析内容库 %s 数据失败: %w", collection, err)
	}
	return nil
}
