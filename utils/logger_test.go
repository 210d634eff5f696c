package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerWriteAndRotate(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, "app.log")
	if err != nil {
		t.Fatalf("创建日志记录器失败: %v", err)
	}

	if err := logger.Info("第一条日志"); err != nil {
		t.Fatalf("写入日志失败: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "app.log"))
	if err != nil {
		t.Fatalf("读取日志文件失败: %v", err)
	}
	if !strings.Contains(string(content), "[INFO] 第一条日志") {
		t.Errorf("日志内容缺少级别或正文: %s", content)
	}

	// 压低阈值触发轮转
	logger.maxSize = 1
	if err := logger.Error("第二条日志"); err != nil {
		t.Fatalf("写入日志失败: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "app.log.old")); err != nil {
		t.Errorf("轮转后应存在.old文件: %v", err)
	}

	content, err = os.ReadFile(filepath.Join(dir, "app.log"))
	if err != nil {
		t.Fatalf("读取日志文件失败: %v", err)
	}
	if strings.Contains(string(content), "第一条日志") {
		t.Error("轮转后新文件不应再包含旧日志")
	}
	if !strings.Contains(string(content), "[ERROR] 第二条日志") {
		t.Errorf("新文件应包含轮转后写入的日志: %s", content)
	}
}
