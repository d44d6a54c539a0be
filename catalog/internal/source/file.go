package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/catalog/internal/catalog"
	"github.com/Alturino/storefront/catalog/internal/otel"
	"github.com/Alturino/storefront/internal/log"
	inOtel "github.com/Alturino/storefront/internal/otel"
)

type bundle struct {
	Products []catalog.Product `json:"products"`
}

// FileSource reads the bundled products_data.json file.
type FileSource struct {
	Path string
}

func NewFileSource(path string) FileSource {
	return FileSource{Path: path}
}

func (src FileSource) Name() string {
	return KindFile + ":" + src.Path
}

func (src FileSource) Load(c context.Context) ([]catalog.Product, error) {
	c, span := otel.Tracer.Start(c, "FileSource Load")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "FileSource Load").
		Str(log.KeyPath, src.Path).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "opening catalog file").Logger()
	logger.Trace().Msg("opening catalog file")
	f, err := os.Open(src.Path)
	if err != nil {
		err = fmt.Errorf("failed opening catalog file=%s with error=%w", src.Path, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	defer f.Close()
	logger.Trace().Msg("opened catalog file")

	logger = logger.With().Str(log.KeyProcess, "decoding catalog file").Logger()
	logger.Trace().Msg("decoding catalog file")
	b := bundle{}
	if err := json.NewDecoder(f).Decode(&b); err != nil {
		err = fmt.Errorf("failed decoding catalog file=%s with error=%w", src.Path, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	if err := Validate(b.Products); err != nil {
		err = fmt.Errorf("failed validating catalog file=%s with error=%w", src.Path, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Int(log.KeyProductCount, len(b.Products)).Msg("decoded catalog file")

	return b.Products, nil
}

// WriteFile stores products in the bundled file layout, replacing path atomically.
func WriteFile(c context.Context, path string, products []catalog.Product) error {
	c, span := otel.Tracer.Start(c, "source WriteFile")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "source WriteFile").
		Str(log.KeyPath, path).
		Int(log.KeyProductCount, len(products)).
		Logger()

	if products == nil {
		products = []catalog.Product{}
	}
	data, err := json.MarshalIndent(bundle{Products: products}, "", "  ")
	if err != nil {
		err = fmt.Errorf("failed encoding catalog with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	logger = logger.With().Str(log.KeyProcess, "writing catalog file").Logger()
	logger.Trace().Msg("writing catalog file")
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		err = fmt.Errorf("failed creating temporary catalog file with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		err = fmt.Errorf("failed writing catalog file with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if err := tmp.Close(); err != nil {
		err = fmt.Errorf("failed closing catalog file with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		err = fmt.Errorf("failed renaming catalog file with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("wrote catalog file")

	return nil
}
