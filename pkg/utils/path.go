package utils

import (
	"os"
	"path/filepath"
)

// GetAbsPath 把相对项目根目录的路径转换为绝对路径
//
// 从当前工作目录向上查找 go.mod 作为项目根目录，测试在子包中运行时同样适用；
// 找不到时以可执行文件所在目录为准。
func GetAbsPath(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	if root := projectRoot(); root != "" {
		return filepath.Join(root, rel)
	}
	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), rel)
	}
	return rel
}

func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
