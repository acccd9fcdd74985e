package usecase

import (
	"github.com/go-kratos/kratos/v2/errors"
)

const reasonUpstream = "UPSTREAM_UNAVAILABLE"

// upstream 将存储或模型的原始错误转换为 500，已是 kratos 错误的保持不变
func upstream(err error, op string) error {
	var se *errors.Error
	if errors.As(err, &se) {
		return err
	}
	return errors.InternalServer(reasonUpstream, "an internal server error occurred").
		WithCause(err).
		WithMetadata(map[string]string{"op": op})
}
