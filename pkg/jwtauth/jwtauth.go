package jwtauth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTokenType 表示 Access Token 类型
	AccessTokenType = "access"
	// RefreshTokenType 表示 Refresh Token 类型
	RefreshTokenType = "refresh"
)

var ErrEmptyToken = errors.New("empty token")

// Claims 定义 JWT 载荷结构
type Claims struct {
	Identity string `json:"identity"` // 用户ID
	Nice     string `json:"nice"`     // 用户名
	RoleKey  string `json:"rolekey"`  // 角色标识
	Type     string `json:"type"`     // token类型：access/refresh
	jwt.RegisteredClaims
}

// UserID 优先使用 identity，没有时退回标准的 sub
func (c *Claims) UserID() string {
	if c.Identity != "" {
		return c.Identity
	}
	return c.Subject
}

// Expiry 过期时间，未设置 exp 时返回零值
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Expired 判断在 now 时刻（提前 skew）是否已过期，未设置 exp 视为不过期
func (c *Claims) Expired(now time.Time, skew time.Duration) bool {
	exp := c.Expiry()
	if exp.IsZero() {
		return false
	}
	return !now.Add(skew).Before(exp)
}

var parser = jwt.NewParser()

// Inspect 解析 token 载荷但不校验签名
//
// 客户端不持有签名密钥，只用于展示用户信息和提前发现过期，真正的校验在服务端。
func Inspect(token string) (*Claims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return nil, ErrEmptyToken
	}
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse token failed: %w", err)
	}
	return claims, nil
}

// ParseExpiresIn 解析登录接口返回的 expiresIn，纯数字按秒处理，也支持 30m / 2h / 7d
func ParseExpiresIn(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if seconds, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	return parseDuration(s)
}

// parseDuration 解析时间格式字符串为time.Duration
func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, errors.New("empty duration string")
	}

	// 支持的时间单位
	units := map[string]time.Duration{
		"s": time.Second,
		"m": time.Minute,
		"h": time.Hour,
		"d": time.Hour * 24,
		"w": time.Hour * 24 * 7,
	}

	// 提取数字和单位
	numStr := ""
	unit := ""
	for _, char := range s {
		if char >= '0' && char <= '9' || char == '.' {
			numStr += string(char)
		} else {
			unit += string(char)
		}
	}

	if numStr == "" || unit == "" {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	// 解析数字
	num, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number in duration: %s", s)
	}

	// 解析单位
	dur, ok := units[strings.ToLower(unit)]
	if !ok {
		return 0, fmt.Errorf("unknown unit in duration: %s", unit)
	}

	return time.Duration(num * float64(dur)), nil
}
