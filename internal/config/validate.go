package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate 校验所有配置项，返回全部错误而不是第一个
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate config")
	}

	var result *multierror.Error
	for _, fe := range fieldErrs {
		result = multierror.Append(result, errors.Errorf("%s: failed on '%s'", fe.Namespace(), fe.Tag()))
	}
	return result.ErrorOrNil()
}
