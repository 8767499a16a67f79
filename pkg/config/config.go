// Package config resolves the options of one rtk-query generation run.
package config

import (
	"regexp"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
)

// ErrMissingImportBaseAPIFrom is returned when a run has no base api module to inject into.
var ErrMissingImportBaseAPIFrom = errors.New("config: importBaseApiFrom is required")

const (
	DefaultImportBaseAPIAlternateName = "api"
	DefaultExportAPIName              = "api"
)

var outputFileNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`([^/]+)\.(?:[a-zA-Z0-9]+)?\.generated\.ts$`),
	regexp.MustCompile(`([^/]+)\.generated\.ts$`),
	regexp.MustCompile(`([^/]+)\.ts$`),
}

// RawConfig holds the options as supplied by the caller.
// Nil fields fall back to their defaults in Resolve.
type RawConfig struct {
	ImportBaseAPIFrom          *string `yaml:"importBaseApiFrom"`
	ImportBaseAPIAlternateName *string `yaml:"importBaseApiAlternateName"`
	ExportHooks                *bool   `yaml:"exportHooks"`
	ExportAPI                  *bool   `yaml:"exportApi"`
	ExportDefaultAPI           *bool   `yaml:"exportDefaultApi"`
	ExportAPIName              *string `yaml:"exportApiName"`
	ExportDocument             *bool   `yaml:"exportDocument"`
	OverrideExisting           *string `yaml:"overrideExisting"`
	AddTransformResponse       *bool   `yaml:"addTransformResponse"`
	ImportOperationTypesFrom   *string `yaml:"importOperationTypesFrom"`
	ImportOperationTypesPath   *string `yaml:"importOperationTypesPath"`
	TypesPrefix                *string `yaml:"typesPrefix"`
	TypesSuffix                *string `yaml:"typesSuffix"`
	DedupeOperationSuffix      *bool   `yaml:"dedupeOperationSuffix"`
	OmitOperationSuffix        *bool   `yaml:"omitOperationSuffix"`
}

// Merge returns a copy of r where every field set in override replaces the value of r.
func (r RawConfig) Merge(override RawConfig) RawConfig {
	out := r
	mergeString(&out.ImportBaseAPIFrom, override.ImportBaseAPIFrom)
	mergeString(&out.ImportBaseAPIAlternateName, override.ImportBaseAPIAlternateName)
	mergeBool(&out.ExportHooks, override.ExportHooks)
	mergeBool(&out.ExportAPI, override.ExportAPI)
	mergeBool(&out.ExportDefaultAPI, override.ExportDefaultAPI)
	mergeString(&out.ExportAPIName, override.ExportAPIName)
	mergeBool(&out.ExportDocument, override.ExportDocument)
	mergeString(&out.OverrideExisting, override.OverrideExisting)
	mergeBool(&out.AddTransformResponse, override.AddTransformResponse)
	mergeString(&out.ImportOperationTypesFrom, override.ImportOperationTypesFrom)
	mergeString(&out.ImportOperationTypesPath, override.ImportOperationTypesPath)
	mergeString(&out.TypesPrefix, override.TypesPrefix)
	mergeString(&out.TypesSuffix, override.TypesSuffix)
	mergeBool(&out.DedupeOperationSuffix, override.DedupeOperationSuffix)
	mergeBool(&out.OmitOperationSuffix, override.OmitOperationSuffix)
	return out
}

func mergeString(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}

func mergeBool(dst **bool, src *bool) {
	if src != nil {
		*dst = src
	}
}

// Config is the resolved configuration of one generation run.
type Config struct {
	// ImportBaseAPIFrom is the module path of the base api object.
	ImportBaseAPIFrom string
	// ImportBaseAPIAlternateName is the local identifier bound to the imported base api.
	ImportBaseAPIAlternateName string
	// ExportHooks enables the hook export statement and the subscription hooks.
	ExportHooks bool
	// ExportAPI enables a named export of the injected api.
	ExportAPI bool
	// ExportDefaultAPI enables a default export of the injected api, it wins over ExportAPI.
	ExportDefaultAPI bool
	// ExportAPIName is the identifier of the named export, empty means "api".
	ExportAPIName string
	// ExportDocument prefixes every document constant with export.
	ExportDocument bool
	// OverrideExisting is injected verbatim as the overrideExisting setting.
	OverrideExisting string
	// AddTransformResponse adds an identity transformResponse to every endpoint.
	AddTransformResponse bool

	ImportOperationTypesFrom string
	ImportOperationTypesPath string
	TypesPrefix              string
	TypesSuffix              string
	DedupeOperationSuffix    bool
	OmitOperationSuffix      bool
}

// Default returns a Config with every optional field set to its default.
func Default() Config {
	return Config{
		ImportBaseAPIAlternateName: DefaultImportBaseAPIAlternateName,
		ExportDefaultAPI:           true,
	}
}

// Resolve applies the defaults to raw and infers the api export name from outputFile
// when none was configured. outputFile may be empty.
func Resolve(raw RawConfig, outputFile string) (Config, error) {
	cfg := Default()
	setString(&cfg.ImportBaseAPIFrom, raw.ImportBaseAPIFrom)
	setString(&cfg.ImportBaseAPIAlternateName, raw.ImportBaseAPIAlternateName)
	setBool(&cfg.ExportHooks, raw.ExportHooks)
	setBool(&cfg.ExportAPI, raw.ExportAPI)
	setBool(&cfg.ExportDefaultAPI, raw.ExportDefaultAPI)
	setString(&cfg.ExportAPIName, raw.ExportAPIName)
	setBool(&cfg.ExportDocument, raw.ExportDocument)
	setString(&cfg.OverrideExisting, raw.OverrideExisting)
	setBool(&cfg.AddTransformResponse, raw.AddTransformResponse)
	setString(&cfg.ImportOperationTypesFrom, raw.ImportOperationTypesFrom)
	setString(&cfg.ImportOperationTypesPath, raw.ImportOperationTypesPath)
	setString(&cfg.TypesPrefix, raw.TypesPrefix)
	setString(&cfg.TypesSuffix, raw.TypesSuffix)
	setBool(&cfg.DedupeOperationSuffix, raw.DedupeOperationSuffix)
	setBool(&cfg.OmitOperationSuffix, raw.OmitOperationSuffix)

	if cfg.ImportBaseAPIFrom == "" {
		return Config{}, ErrMissingImportBaseAPIFrom
	}
	if cfg.ImportBaseAPIAlternateName == "" {
		cfg.ImportBaseAPIAlternateName = DefaultImportBaseAPIAlternateName
	}
	if cfg.ExportAPIName == "" && outputFile != "" {
		cfg.ExportAPIName = InferAPIName(outputFile)
	}

	return cfg, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// InferAPIName derives the api export name from a generated file name,
// e.g. src/auth.query.generated.ts -> authApi.
func InferAPIName(outputFile string) string {
	for _, pattern := range outputFileNamePatterns {
		match := pattern.FindStringSubmatch(outputFile)
		if len(match) > 1 && match[1] != "" {
			return strcase.ToLowerCamel(match[1]) + "Api"
		}
	}
	return DefaultExportAPIName
}

// APIName is the identifier used for the named export.
func (c Config) APIName() string {
	if c.ExportAPIName == "" {
		return DefaultExportAPIName
	}
	return c.ExportAPIName
}

// String and Bool return pointers for building a RawConfig in code.
func String(s string) *string { return &s }

func Bool(b bool) *bool { return &b }
