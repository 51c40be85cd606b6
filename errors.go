package hostaddr

import (
	"errors"

	"github.com/dep2p/go-hostaddr/pkg/types"
)

// 公共错误定义
var (
	// ErrResolution 主机无法解析为地址
	ErrResolution = types.ErrResolution

	// ErrFormat host:port 文本格式错误或超出容量
	ErrFormat = types.ErrFormat

	// ErrClosed 解析器已关闭
	ErrClosed = errors.New("resolver closed")
)
