package config

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/landmap/camellia/appenv"
)

const structTag = "koanf"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load assembles and merges the sources selected by opts and decodes the
// result into a new T.
func Load[T any](opts Options) (T, error) {
	var out T
	if err := LoadInto(&out, opts); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// LoadInto is like Load but decodes into dst, which must be a non-nil
// pointer. Fields already set on dst are kept when no source provides them.
func LoadInto(dst any, opts Options) error {
	k, err := Build(opts)
	if err != nil {
		return err
	}
	return decode(k, dst)
}

// Build merges the sources selected by opts into a fresh koanf instance
// without decoding it.
func Build(opts Options) (*koanf.Koanf, error) {
	logger := opts.logger()
	environment := appenv.Current()

	logger.Debug("assembling configuration",
		zap.String("schema", opts.schema()),
		zap.String("environment", environment),
		zap.String("dir", opts.dir()),
	)
	if environment == appenv.Production {
		logger.Debug("environment file skipped in production")
	}

	k := koanf.New(keyDelimiter)
	for _, src := range plan(opts, environment) {
		loaded, err := src.load(k)
		if err != nil {
			return nil, fmt.Errorf("load %s configuration: %w", opts.schema(), err)
		}
		if !loaded {
			logger.Debug("optional configuration source not found", zap.Stringer("source", src))
			continue
		}
		logger.Debug("configuration source merged",
			zap.Stringer("kind", src.Kind),
			zap.Stringer("source", src),
		)
	}

	return k, nil
}

func decode(k *koanf.Koanf, dst any) error {
	if err := k.UnmarshalWithConf("", dst, koanf.UnmarshalConf{Tag: structTag}); err != nil {
		return fmt.Errorf("%w: %w", ErrDeserialize, err)
	}

	target, ok := structTarget(dst)
	if !ok {
		return nil
	}
	if err := validate.Struct(target); err != nil {
		return fmt.Errorf("%w: %w", ErrDeserialize, err)
	}
	return nil
}

// structTarget returns a pointer to the struct behind dst, if there is one.
func structTarget(dst any) (any, bool) {
	v := reflect.ValueOf(dst)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct || !v.CanAddr() {
		return nil, false
	}
	return v.Addr().Interface(), true
}
