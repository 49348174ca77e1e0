package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"foodmap/config"
)

// Uploader 文件上传收集器
// Save 接收表单文件并返回存储引用；file 为 nil 时不做任何事并返回空引用
type Uploader interface {
	Save(file *multipart.FileHeader) (string, error)
}

// ErrFileTooLarge 文件超过大小限制
var ErrFileTooLarge = errors.New("file exceeds size limit")

// LocalUploader 本地磁盘实现
// 文件落在 dir 目录下，引用为 baseURL/<文件名>
type LocalUploader struct {
	dir     string
	baseURL string
	maxSize int64
}

// NewLocalUploader 创建本地上传器（确保存储目录存在）
func NewLocalUploader(cfg config.UploadConfig) (*LocalUploader, error) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}
	return &LocalUploader{
		dir:     cfg.Dir,
		baseURL: cfg.BaseURL,
		maxSize: cfg.MaxSize,
	}, nil
}

// Save 保存上传文件并返回访问引用
func (u *LocalUploader) Save(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", nil
	}
	if u.maxSize > 0 && file.Size > u.maxSize {
		return "", ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer src.Close()

	// 用时间戳生成唯一文件名，保留原始扩展名
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("创建目标文件失败: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("写入上传文件失败: %w", err)
	}

	return u.baseURL + "/" + name, nil
}
