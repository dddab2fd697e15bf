package utils

import (
	"github.com/duke-git/lancet/v2/cryptor"
	"github.com/duke-git/lancet/v2/random"
	"github.com/duke-git/lancet/v2/strutil"
)

// IsEmpty 判断字符串是否为空
func IsEmpty(s string) bool {
	return strutil.IsBlank(s)
}

// IsNotEmpty 判断字符串是否不为空
func IsNotEmpty(s string) bool {
	return !IsEmpty(s)
}

// Trim 去除字符串两端空格
func Trim(s string) string {
	return strutil.Trim(s)
}

// GenerateRandomString 生成随机字符串
func GenerateRandomString(length int) string {
	return random.RandString(length)
}

// MD5 MD5加密
func MD5(s string) string {
	return cryptor.Md5String(s)
}
