package feeders

import (
	"fmt"
	"os"
)

// AffixedEnvFeeder reads process environment variables named
// PREFIX_<env tag>_SUFFIX into struct fields tagged `env`.
type AffixedEnvFeeder struct {
	Prefix string
	Suffix string
}

func NewAffixedEnvFeeder(prefix, suffix string) AffixedEnvFeeder {
	return AffixedEnvFeeder{Prefix: prefix, Suffix: suffix}
}

func (f AffixedEnvFeeder) Feed(target any) error {
	rv, ok := structTarget(target)
	if !ok {
		return fmt.Errorf("%w, got %T", ErrEnvInvalidStructure, target)
	}
	if f.Prefix == "" && f.Suffix == "" {
		return ErrEnvEmptyPrefixAndSuffix
	}
	return fillStruct(rv, f.Prefix, f.Suffix, os.LookupEnv)
}
