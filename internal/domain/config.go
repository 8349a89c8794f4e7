package domain

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ConfigKey 配置文档标识
type ConfigKey string

const (
	ConfigKeyEmail   ConfigKey = "email_config"
	ConfigKeySite    ConfigKey = "site_settings"
	ConfigKeyR2      ConfigKey = "r2_config"
	ConfigKeyPayment ConfigKey = "payment_config"
)

// UpdatedAtField 每次写入都会刷新的字段，单位毫秒
const UpdatedAtField = "updatedAt"

func (k ConfigKey) String() string {
	return string(k)
}

func (k ConfigKey) IsValid() bool {
	return k != ""
}

// ConfigValue 配置文档内容，字段约定俗成，不做 schema 校验
type ConfigValue map[string]any

// Clone 深拷贝，避免调用方改动缓存里的数据
func (v ConfigValue) Clone() ConfigValue {
	if v == nil {
		return nil
	}
	res := make(ConfigValue, len(v))
	for key, val := range v {
		res[key] = cloneAny(val)
	}
	return res
}

// Merge 合并写：update 里没出现的字段保持不变，嵌套 map 递归合并
func (v ConfigValue) Merge(update ConfigValue) ConfigValue {
	res := v.Clone()
	if res == nil {
		res = make(ConfigValue, len(update))
	}
	for key, val := range update {
		src, ok1 := asMap(val)
		dst, ok2 := asMap(res[key])
		if ok1 && ok2 {
			res[key] = map[string]any(ConfigValue(dst).Merge(src))
			continue
		}
		res[key] = cloneAny(val)
	}
	return res
}

// Without 返回去掉指定字段之后的副本
func (v ConfigValue) Without(fields ...string) ConfigValue {
	res := v.Clone()
	for _, f := range fields {
		delete(res, f)
	}
	return res
}

// Decode 把文档解析到 target 上，target 里已有的值作为缺省值
func (v ConfigValue) Decode(target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(map[string]any(v))
}

// ToConfigValue 把类型化的配置转换成文档
func ToConfigValue(src any) (ConfigValue, error) {
	data, err := json.Marshal(src)
	if err != nil {
		return nil, fmt.Errorf("序列化配置失败 %w", err)
	}
	var res ConfigValue
	if err = json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("反序列化配置失败 %w", err)
	}
	return res, nil
}

func asMap(val any) (map[string]any, bool) {
	switch m := val.(type) {
	case map[string]any:
		return m, true
	case ConfigValue:
		return m, true
	default:
		return nil, false
	}
}

func cloneAny(val any) any {
	switch t := val.(type) {
	case map[string]any:
		return map[string]any(ConfigValue(t).Clone())
	case ConfigValue:
		return map[string]any(t.Clone())
	case []any:
		res := make([]any, len(t))
		for i := range t {
			res[i] = cloneAny(t[i])
		}
		return res
	default:
		return val
	}
}

// ConfigEntry 配置文档
type ConfigEntry struct {
	Key   ConfigKey
	Value ConfigValue
	Ctime int64
	Utime int64
}

// LookupState 读取结果的状态
type LookupState int

const (
	LookupFound LookupState = iota
	LookupNotFound
	LookupUnavailable
)

func (s LookupState) String() string {
	switch s {
	case LookupFound:
		return "FOUND"
	case LookupNotFound:
		return "NOT_FOUND"
	case LookupUnavailable:
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}

// ConfigLookup 区分"还没有配置"和"存储不可用"
type ConfigLookup struct {
	State LookupState
	Value ConfigValue
	// Err 只在 LookupUnavailable 时有值
	Err error
}

func (l ConfigLookup) Found() bool {
	return l.State == LookupFound
}

// EmailConfig 邮件配置
type EmailConfig struct {
	ResendAPIKey string `json:"resendApiKey"`
	SenderEmail  string `json:"senderEmail"`
	SenderName   string `json:"senderName"`
	Enabled      bool   `json:"enabled"`
}

// From 发件人，形如 "SLPPV Temple <noreply@example.org>"
func (c EmailConfig) From() string {
	if c.SenderName == "" {
		return c.SenderEmail
	}
	return fmt.Sprintf("%s <%s>", c.SenderName, c.SenderEmail)
}

// SiteSettings 站点信息
type SiteSettings struct {
	TempleName   string `json:"templeName"`
	Tagline      string `json:"tagline"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address"`
	WebsiteURL   string `json:"websiteUrl"`
}

// R2Config 对象存储配置，兼容 S3 协议
type R2Config struct {
	AccountID       string `json:"accountId"`
	AccessKeyID     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
	BucketName      string `json:"bucketName"`
	PublicURL       string `json:"publicUrl"`
	// Endpoint 为空时按 accountId 拼出 R2 的地址
	Endpoint string `json:"endpoint"`
}

func (c R2Config) IsComplete() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != "" && c.BucketName != "" &&
		(c.Endpoint != "" || c.AccountID != "")
}

func (c R2Config) ResolvedEndpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return fmt.Sprintf("%s.r2.cloudflarestorage.com", c.AccountID)
}

// PaymentConfig 支付配置
type PaymentConfig struct {
	RazorpayKeyID string `json:"razorpayKeyId"`
	Currency      string `json:"currency"`
	UPIID         string `json:"upiId"`
	Enabled       bool   `json:"enabled"`
}
