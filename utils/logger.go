package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// 日志级别
const (
	LogLevelInfo   = "INFO"
	LogLevelError  = "ERROR"
	LogLevelAccess = "ACCESS"
)

// 单个日志文件大小上限，写满后轮转为.old文件
const defaultMaxLogSize = 50 << 20

// Logger 日志工具结构体
type Logger struct {
	filePath string
	maxSize  int64
}

// NewLogger 创建一个新的日志记录器
func NewLogger(logDir, logFileName string) (*Logger, error) {
	// 确保日志目录存在
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("创建日志目录失败: %v", err)
	}

	// 构建完整的日志文件路径
	fullFilePath := filepath.Join(logDir, logFileName)

	return &Logger{filePath: fullFilePath, maxSize: defaultMaxLogSize}, nil
}

// rotateIfNeeded 日志文件写满后轮转，旧文件改名为.old，只保留一代
func (l *Logger) rotateIfNeeded() error {
	info, err := os.Stat(l.filePath)
	if err != nil || info.Size() < l.maxSize {
		return nil
	}
	return os.Rename(l.filePath, l.filePath+".old")
}

// WriteLog 写入日志到文件
func (l *Logger) WriteLog(level string, format string, args ...interface{}) error {
	// 获取当前时间
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	// 格式化日志内容
	logContent := fmt.Sprintf("[%s] [%s] %s\n", timestamp, level, fmt.Sprintf(format, args...))

	if err := l.rotateIfNeeded(); err != nil {
		return fmt.Errorf("轮转日志文件失败: %v", err)
	}

	// 以追加模式打开文件，文件不存在或刚轮转时自动新建
	file, err := os.OpenFile(l.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("打开日志文件失败: %v", err)
	}
	defer file.Close()

	// 写入日志
	if _, err := file.WriteString(logContent); err != nil {
		return fmt.Errorf("写入日志失败: %v", err)
	}

	return nil
}

// Info 写入信息日志
func (l *Logger) Info(format string, args ...interface{}) error {
	return l.WriteLog(LogLevelInfo, format, args...)
}

// Error 写入错误日志
func (l *Logger) Error(format string, args ...interface{}) error {
	return l.WriteLog(LogLevelError, format, args...)
}

// Access 写入访问日志
func (l *Logger) Access(format string, args ...interface{}) error {
	return l.WriteLog(LogLevelAccess, format, args...)
}
