package backend

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/genesis-engine/genesis-backend/core/errors"
)

// =============================================================================
// Map Serialization
// =============================================================================

// ToMap converts the configuration to a plain map. Optional values
// that are unset appear as nil so the map round-trips through JSON and
// YAML without inventing values.
func (c *Config) ToMap() map[string]any {
	m := map[string]any{
		"project_name": c.ProjectName,
		"description":  c.Description,
		"framework":    string(c.Framework),
		"version":      c.Version,
		"debug":        c.Debug,
		"features":     c.Features,
		"api_version":  c.APIVersion,
		"cors_origins": c.CORSOrigins,
	}
	if c.Database != nil {
		m["database"] = c.Database.ToMap()
	} else {
		m["database"] = nil
	}
	if c.Auth != nil {
		m["auth"] = c.Auth.ToMap()
	} else {
		m["auth"] = nil
	}
	return m
}

// ToMap converts the database configuration to a plain map.
func (c *DatabaseConfig) ToMap() map[string]any {
	m := map[string]any{
		"type":     string(c.Type),
		"host":     nilIfEmpty(c.Host),
		"port":     nilIfZero(c.Port),
		"name":     nilIfEmpty(c.Name),
		"user":     nilIfEmpty(c.User),
		"password": nilIfEmpty(c.Password),
	}
	if c.ORM != "" {
		m["orm"] = string(c.ORM)
	} else {
		m["orm"] = nil
	}
	return m
}

// ToMap converts the authentication configuration to a plain map.
// An empty provider list serializes as nil.
func (c *AuthConfig) ToMap() map[string]any {
	m := map[string]any{
		"method":                      string(c.Method),
		"secret_key":                  nilIfEmpty(c.SecretKey),
		"algorithm":                   c.Algorithm,
		"access_token_expire_minutes": c.AccessTokenExpireMinutes,
		"refresh_token_expire_days":   c.RefreshTokenExpireDays,
		"session_timeout":             nilIfZero(c.SessionTimeout),
		"cookie_secure":               c.CookieSecure,
		"cookie_httponly":             c.CookieHTTPOnly,
	}
	if len(c.OAuthProviders) > 0 {
		m["oauth_providers"] = c.OAuthProviders
	} else {
		m["oauth_providers"] = nil
	}
	return m
}

// FromMap builds a Config from a plain map, applying the standard
// defaults for absent keys and coercing enum strings. Numeric values
// may arrive as int, int64, or float64 depending on the decoder.
func FromMap(data map[string]any) (*Config, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty configuration data", errors.ErrInvalidInput)
	}

	cfg := &Config{}
	if v, ok := mapString(data, "project_name"); ok {
		cfg.ProjectName = v
	}
	if v, ok := mapString(data, "description"); ok {
		cfg.Description = v
	}
	if v, ok := mapString(data, "framework"); ok && v != "" {
		fw, err := ParseFramework(v)
		if err != nil {
			return nil, err
		}
		cfg.Framework = fw
	}
	if v, ok := mapString(data, "version"); ok {
		cfg.Version = v
	}
	if v, ok := mapBool(data, "debug"); ok {
		cfg.Debug = v
	}
	if v, ok := mapStringSlice(data, "features"); ok {
		cfg.Features = v
	}
	if v, ok := mapString(data, "api_version"); ok {
		cfg.APIVersion = v
	}
	if v, ok := mapStringSlice(data, "cors_origins"); ok {
		cfg.CORSOrigins = v
	}
	if v, ok := mapMap(data, "database"); ok {
		db, err := databaseFromMap(v)
		if err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}
		cfg.Database = db
	}
	if v, ok := mapMap(data, "auth"); ok {
		auth, err := authFromMap(v)
		if err != nil {
			return nil, fmt.Errorf("auth: %w", err)
		}
		cfg.Auth = auth
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func databaseFromMap(data map[string]any) (*DatabaseConfig, error) {
	db := &DatabaseConfig{}
	if v, ok := mapString(data, "type"); ok && v != "" {
		dt, err := ParseDatabaseType(v)
		if err != nil {
			return nil, err
		}
		db.Type = dt
	}
	if v, ok := mapString(data, "host"); ok {
		db.Host = v
	}
	if v, ok := mapInt(data, "port"); ok {
		db.Port = v
	}
	if v, ok := mapString(data, "name"); ok {
		db.Name = v
	}
	if v, ok := mapString(data, "user"); ok {
		db.User = v
	}
	if v, ok := mapString(data, "password"); ok {
		db.Password = v
	}
	if v, ok := mapString(data, "orm"); ok && v != "" {
		orm, err := ParseORM(v)
		if err != nil {
			return nil, err
		}
		db.ORM = orm
	}
	return db, nil
}

func authFromMap(data map[string]any) (*AuthConfig, error) {
	auth := &AuthConfig{
		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 30,
		RefreshTokenExpireDays:   7,
	}
	if v, ok := mapString(data, "method"); ok && v != "" {
		method, err := ParseAuthMethod(v)
		if err != nil {
			return nil, err
		}
		auth.Method = method
	}
	if v, ok := mapString(data, "secret_key"); ok {
		auth.SecretKey = v
	}
	if v, ok := mapString(data, "algorithm"); ok && v != "" {
		auth.Algorithm = v
	}
	if v, ok := mapInt(data, "access_token_expire_minutes"); ok {
		auth.AccessTokenExpireMinutes = v
	}
	if v, ok := mapInt(data, "refresh_token_expire_days"); ok {
		auth.RefreshTokenExpireDays = v
	}
	if v, ok := mapStringSlice(data, "oauth_providers"); ok {
		auth.OAuthProviders = v
	}
	if v, ok := mapInt(data, "session_timeout"); ok {
		auth.SessionTimeout = v
	}
	if v, ok := mapBool(data, "cookie_secure"); ok {
		auth.CookieSecure = v
	}
	if v, ok := mapBool(data, "cookie_httponly"); ok {
		auth.CookieHTTPOnly = v
	}
	return auth, nil
}

// =============================================================================
// YAML Serialization
// =============================================================================

// ToYAML serializes the configuration as YAML.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// FromYAML parses and validates a YAML configuration document.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// =============================================================================
// Map Helpers
// =============================================================================

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nilIfZero(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

func mapString(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func mapInt(m map[string]any, key string) (int, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func mapBool(m map[string]any, key string) (bool, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func mapStringSlice(m map[string]any, key string) ([]string, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, false
	}
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func mapMap(m map[string]any, key string) (map[string]any, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, false
	}
	switch sub := v.(type) {
	case map[string]any:
		return sub, true
	case map[any]any:
		out := make(map[string]any, len(sub))
		for k, val := range sub {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}
