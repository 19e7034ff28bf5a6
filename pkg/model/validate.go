package model

import "github.com/yourusername/storefront/pkg/errors"

// errValidation builds the local validation failure used by the request
// Validate methods in this package.
//
// errValidation 构建本包请求Validate方法使用的本地验证失败。
func errValidation(message string) error {
	return errors.NewValidation(message)
}
