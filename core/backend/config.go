// Package backend defines the project configuration model shared by the
// agents, generators, and CLI: target framework, database connection,
// and authentication settings, with derived values (implementation
// language, connection URL) and lossless map/YAML serialization.
package backend

import (
	"fmt"
	"strings"

	"github.com/genesis-engine/genesis-backend/core/errors"
)

// Framework identifies a supported backend framework.
type Framework string

const (
	FrameworkFastAPI Framework = "fastapi"
	FrameworkDjango  Framework = "django"
	FrameworkNestJS  Framework = "nestjs"
	FrameworkExpress Framework = "express"
)

var frameworks = map[Framework]bool{
	FrameworkFastAPI: true,
	FrameworkDjango:  true,
	FrameworkNestJS:  true,
	FrameworkExpress: true,
}

// ParseFramework converts a string into a Framework.
func ParseFramework(s string) (Framework, error) {
	f := Framework(strings.ToLower(s))
	if !frameworks[f] {
		return "", fmt.Errorf("unknown framework: %q", s)
	}
	return f, nil
}

func (f Framework) String() string { return string(f) }

// Language returns the implementation language for the framework.
func (f Framework) Language() string {
	switch f {
	case FrameworkNestJS:
		return "typescript"
	case FrameworkExpress:
		return "javascript"
	default:
		return "python"
	}
}

// DatabaseType identifies a supported database engine.
type DatabaseType string

const (
	DatabasePostgreSQL DatabaseType = "postgresql"
	DatabaseMySQL      DatabaseType = "mysql"
	DatabaseSQLite     DatabaseType = "sqlite"
	DatabaseMongoDB    DatabaseType = "mongodb"
	DatabaseRedis      DatabaseType = "redis"
)

var databaseTypes = map[DatabaseType]bool{
	DatabasePostgreSQL: true,
	DatabaseMySQL:      true,
	DatabaseSQLite:     true,
	DatabaseMongoDB:    true,
	DatabaseRedis:      true,
}

// ParseDatabaseType converts a string into a DatabaseType.
func ParseDatabaseType(s string) (DatabaseType, error) {
	d := DatabaseType(strings.ToLower(s))
	if !databaseTypes[d] {
		return "", fmt.Errorf("unknown database type: %q", s)
	}
	return d, nil
}

func (d DatabaseType) String() string { return string(d) }

// ORMType identifies a supported ORM.
type ORMType string

const (
	ORMSQLAlchemy ORMType = "sqlalchemy"
	ORMDjango     ORMType = "django_orm"
	ORMTypeORM    ORMType = "typeorm"
	ORMPrisma     ORMType = "prisma"
	ORMMongoose   ORMType = "mongoose"
)

var ormTypes = map[ORMType]bool{
	ORMSQLAlchemy: true,
	ORMDjango:     true,
	ORMTypeORM:    true,
	ORMPrisma:     true,
	ORMMongoose:   true,
}

// ParseORM converts a string into an ORMType.
func ParseORM(s string) (ORMType, error) {
	o := ORMType(strings.ToLower(s))
	if !ormTypes[o] {
		return "", fmt.Errorf("unknown orm: %q", s)
	}
	return o, nil
}

func (o ORMType) String() string { return string(o) }

// AuthMethod identifies a supported authentication method.
type AuthMethod string

const (
	AuthJWT     AuthMethod = "jwt"
	AuthOAuth2  AuthMethod = "oauth2"
	AuthSession AuthMethod = "session"
	AuthSocial  AuthMethod = "social"
)

var authMethods = map[AuthMethod]bool{
	AuthJWT:     true,
	AuthOAuth2:  true,
	AuthSession: true,
	AuthSocial:  true,
}

// ParseAuthMethod converts a string into an AuthMethod.
func ParseAuthMethod(s string) (AuthMethod, error) {
	m := AuthMethod(strings.ToLower(s))
	if !authMethods[m] {
		return "", fmt.Errorf("unknown auth method: %q", s)
	}
	return m, nil
}

func (m AuthMethod) String() string { return string(m) }

// DatabaseConfig describes the project's database connection.
// Zero values mean unset: Port 0 is omitted from the URL, empty Host
// falls back to localhost, empty ORM means no ORM selected.
type DatabaseConfig struct {
	Type     DatabaseType `json:"type" yaml:"type"`
	Host     string       `json:"host,omitempty" yaml:"host,omitempty"`
	Port     int          `json:"port,omitempty" yaml:"port,omitempty"`
	Name     string       `json:"name,omitempty" yaml:"name,omitempty"`
	User     string       `json:"user,omitempty" yaml:"user,omitempty"`
	Password string       `json:"password,omitempty" yaml:"password,omitempty"`
	ORM      ORMType      `json:"orm,omitempty" yaml:"orm,omitempty"`
}

// Validate checks the database configuration.
func (c *DatabaseConfig) Validate() error {
	if !databaseTypes[c.Type] {
		return fmt.Errorf("unknown database type: %q", c.Type)
	}
	if c.ORM != "" && !ormTypes[c.ORM] {
		return fmt.Errorf("unknown orm: %q", c.ORM)
	}
	return nil
}

// ConnectionURL derives the connection URL from the configured fields.
// SQLite URLs are path-only. Other engines build
// scheme://[user[:password]@]host[:port][/name] with host defaulting
// to localhost; credentials appear only when a user is set.
func (c *DatabaseConfig) ConnectionURL() string {
	if c.Type == DatabaseSQLite {
		return "sqlite:///" + c.Name
	}

	var b strings.Builder
	b.WriteString(string(c.Type))
	b.WriteString("://")

	if c.User != "" {
		b.WriteString(c.User)
		if c.Password != "" {
			b.WriteString(":")
			b.WriteString(c.Password)
		}
		b.WriteString("@")
	}

	host := c.Host
	if host == "" {
		host = "localhost"
	}
	b.WriteString(host)

	if c.Port > 0 {
		fmt.Fprintf(&b, ":%d", c.Port)
	}
	if c.Name != "" {
		b.WriteString("/")
		b.WriteString(c.Name)
	}

	return b.String()
}

// AuthConfig describes the project's authentication settings.
type AuthConfig struct {
	Method                   AuthMethod `json:"method" yaml:"method"`
	SecretKey                string     `json:"secret_key,omitempty" yaml:"secret_key,omitempty"`
	Algorithm                string     `json:"algorithm" yaml:"algorithm"`
	AccessTokenExpireMinutes int        `json:"access_token_expire_minutes" yaml:"access_token_expire_minutes"`
	RefreshTokenExpireDays   int        `json:"refresh_token_expire_days" yaml:"refresh_token_expire_days"`
	OAuthProviders           []string   `json:"oauth_providers,omitempty" yaml:"oauth_providers,omitempty"`
	SessionTimeout           int        `json:"session_timeout,omitempty" yaml:"session_timeout,omitempty"`
	CookieSecure             bool       `json:"cookie_secure" yaml:"cookie_secure"`
	CookieHTTPOnly           bool       `json:"cookie_httponly" yaml:"cookie_httponly"`
}

// NewAuthConfig returns an AuthConfig for the given method with the
// standard defaults applied (HS256, 30 minute access tokens, 7 day
// refresh tokens).
func NewAuthConfig(method AuthMethod) *AuthConfig {
	return &AuthConfig{
		Method:                   method,
		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 30,
		RefreshTokenExpireDays:   7,
	}
}

// Validate checks the authentication configuration.
func (c *AuthConfig) Validate() error {
	if !authMethods[c.Method] {
		return fmt.Errorf("unknown auth method: %q", c.Method)
	}
	return nil
}

// Config is the main backend project configuration.
type Config struct {
	ProjectName string          `json:"project_name" yaml:"project_name"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Framework   Framework       `json:"framework" yaml:"framework"`
	Version     string          `json:"version" yaml:"version"`
	Debug       bool            `json:"debug" yaml:"debug"`
	Features    []string        `json:"features,omitempty" yaml:"features,omitempty"`
	APIVersion  string          `json:"api_version" yaml:"api_version"`
	CORSOrigins []string        `json:"cors_origins,omitempty" yaml:"cors_origins,omitempty"`
	Database    *DatabaseConfig `json:"database,omitempty" yaml:"database,omitempty"`
	Auth        *AuthConfig     `json:"auth,omitempty" yaml:"auth,omitempty"`
}

// New creates a Config for the given project with defaults applied.
func New(projectName string) (*Config, error) {
	cfg := &Config{ProjectName: projectName}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Framework == "" {
		c.Framework = FrameworkFastAPI
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
	if c.APIVersion == "" {
		c.APIVersion = "v1"
	}
}

// Validate checks the configuration. An empty project name is rejected.
func (c *Config) Validate() error {
	if c.ProjectName == "" {
		return errors.ErrMissingProjectName
	}
	if c.Framework != "" && !frameworks[c.Framework] {
		return fmt.Errorf("unknown framework: %q", c.Framework)
	}
	if c.Database != nil {
		if err := c.Database.Validate(); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}
	if c.Auth != nil {
		if err := c.Auth.Validate(); err != nil {
			return fmt.Errorf("auth: %w", err)
		}
	}
	return nil
}

// Language returns the implementation language for the configured framework.
func (c *Config) Language() string {
	return c.Framework.Language()
}

// DatabaseType returns the configured database engine, or empty when
// the config carries no database section.
func (c *Config) DatabaseType() DatabaseType {
	if c.Database == nil {
		return ""
	}
	return c.Database.Type
}

// AuthMethod returns the configured authentication method, or empty
// when the config carries no auth section.
func (c *Config) AuthMethod() AuthMethod {
	if c.Auth == nil {
		return ""
	}
	return c.Auth.Method
}

// HasFeature reports whether the named feature is enabled.
func (c *Config) HasFeature(name string) bool {
	for _, f := range c.Features {
		if f == name {
			return true
		}
	}
	return false
}
