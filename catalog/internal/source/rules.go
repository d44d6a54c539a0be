package source

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/Alturino/storefront/catalog/internal/catalog"
	catalogErrors "github.com/Alturino/storefront/catalog/internal/errors"
	"github.com/Alturino/storefront/catalog/internal/otel"
	"github.com/Alturino/storefront/internal/log"
	inOtel "github.com/Alturino/storefront/internal/otel"
)

type ruleFile struct {
	Rules []catalog.Rule `yaml:"rules"`
}

// LoadRules reads a YAML rule table. An empty path yields catalog.DefaultRules.
func LoadRules(c context.Context, path string) ([]catalog.Rule, error) {
	c, span := otel.Tracer.Start(c, "source LoadRules")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "source LoadRules").
		Str(log.KeyPath, path).
		Logger()

	if path == "" {
		logger.Trace().Msg("no rules file configured using default rules")
		return catalog.DefaultRules(), nil
	}

	logger = logger.With().Str(log.KeyProcess, "reading rules file").Logger()
	logger.Trace().Msg("reading rules file")
	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed reading rules file=%s with error=%w", path, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	logger = logger.With().Str(log.KeyProcess, "decoding rules file").Logger()
	file := ruleFile{}
	if err := yaml.Unmarshal(data, &file); err != nil {
		err = fmt.Errorf("failed decoding rules file=%s with error=%w", path, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	seen := make(map[string]int, len(file.Rules))
	for i, rule := range file.Rules {
		if rule.Name == "" {
			err = fmt.Errorf("rule at index=%d in file=%s has no name", i, path)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		if first, ok := seen[rule.ID()]; ok {
			err = fmt.Errorf(
				"rule=%s at index=%d has the same id as index=%d with error=%w",
				rule.Name, i, first, catalogErrors.ErrDuplicateRule,
			)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		seen[rule.ID()] = i
	}
	logger.Info().Int(log.KeyRuleCount, len(file.Rules)).Msg("decoded rules file")

	return file.Rules, nil
}
