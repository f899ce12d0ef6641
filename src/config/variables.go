package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Environment variables understood by ApplyVariables.
const (
	EnvTransport  = "BILIBILI_MCP_TRANSPORT"
	EnvAddr       = "BILIBILI_MCP_ADDR"
	EnvLogLevel   = "BILIBILI_MCP_LOG_LEVEL"
	EnvLogFormat  = "BILIBILI_MCP_LOG_FORMAT"
	EnvTimeout    = "BILIBILI_TIMEOUT"
	EnvRateLimit  = "BILIBILI_RATE_LIMIT"
	EnvSessdata   = "BILIBILI_SESSDATA"
	EnvBiliJct    = "BILIBILI_BILI_JCT"
	EnvBuvid3     = "BILIBILI_BUVID3"
	EnvDedeUserID = "BILIBILI_DEDEUSERID"
)

// VariableError is returned when a variable cannot be converted.
type VariableError struct {
	Name  string
	Value string
	Err   error
}

func (e *VariableError) Error() string {
	return fmt.Sprintf("variable %s=%q: %v", e.Name, e.Value, e.Err)
}

func (e *VariableError) Unwrap() error { return e.Err }

// VariablesSource is any variable-loading strategy.
type VariablesSource interface {
	Load() (map[string]string, error)
}

// DotEnv loads variables from a .env file. A missing file yields no
// variables unless Required is set.
type DotEnv struct {
	Path     string
	Required bool
}

func NewDotEnv(path string) *DotEnv {
	return &DotEnv{Path: path}
}

func (d *DotEnv) Load() (map[string]string, error) {
	vars, err := godotenv.Read(d.Path)
	if err != nil {
		if !d.Required && errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return vars, nil
}

// ProcessEnv reads the process environment.
type ProcessEnv struct{}

func (ProcessEnv) Load() (map[string]string, error) {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars, nil
}

// ApplyVariables overrides c with the recognised variables present in vars.
// Empty values are ignored.
func (c *Config) ApplyVariables(vars map[string]string) error {
	str := func(name string, dst *string) {
		if v := strings.TrimSpace(vars[name]); v != "" {
			*dst = v
		}
	}
	str(EnvTransport, &c.Server.Transport)
	str(EnvAddr, &c.Server.Addr)
	str(EnvLogLevel, &c.Log.Level)
	str(EnvLogFormat, &c.Log.Format)
	str(EnvSessdata, &c.Bilibili.Credential.Sessdata)
	str(EnvBiliJct, &c.Bilibili.Credential.BiliJct)
	str(EnvBuvid3, &c.Bilibili.Credential.Buvid3)
	str(EnvDedeUserID, &c.Bilibili.Credential.DedeUserID)

	if v := strings.TrimSpace(vars[EnvTimeout]); v != "" {
		d, err := cast.ToDurationE(v)
		if err != nil {
			return &VariableError{Name: EnvTimeout, Value: v, Err: err}
		}
		c.Bilibili.Timeout = d
	}
	if v := strings.TrimSpace(vars[EnvRateLimit]); v != "" {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return &VariableError{Name: EnvRateLimit, Value: v, Err: err}
		}
		c.Bilibili.RateLimit = f
	}
	return nil
}
