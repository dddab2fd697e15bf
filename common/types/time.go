package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	// DateTimeFormat 日期时间格式
	DateTimeFormat = "2006-01-02 15:04:05"
	// DateFormat 日期格式
	DateFormat = "2006-01-02"
)

// DateTime 自定义时间类型，JSON序列化为 "yyyy-MM-dd HH:mm:ss" 格式
type DateTime time.Time

// Now 返回当前时间的DateTime
func Now() DateTime {
	return DateTime(time.Now())
}

// NewDateTime 从time.Time创建DateTime
func NewDateTime(t time.Time) DateTime {
	return DateTime(t)
}

// Time 转换为time.Time
func (t DateTime) Time() time.Time {
	return time.Time(t)
}

// IsZero 判断是否为零值
func (t DateTime) IsZero() bool {
	return time.Time(t).IsZero()
}

// String 实现Stringer接口
func (t DateTime) String() string {
	return time.Time(t).Format(DateTimeFormat)
}

// MarshalJSON 实现json.Marshaler接口
func (t DateTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf(`"%s"`, t.String())), nil
}

// UnmarshalJSON 实现json.Unmarshaler接口
func (t *DateTime) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(data) == 0 || str == "null" || str == `""` {
		*t = DateTime{}
		return nil
	}

	// 去掉引号
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	// 尝试多种格式解析
	formats := []string{
		DateTimeFormat,
		time.RFC3339,
		DateFormat,
	}
	for _, format := range formats {
		if parsed, err := time.ParseInLocation(format, str, time.Local); err == nil {
			*t = DateTime(parsed)
			return nil
		}
	}

	return fmt.Errorf("无法解析时间: %s", str)
}

// Value 实现driver.Valuer接口
func (t DateTime) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return time.Time(t), nil
}

// Scan 实现sql.Scanner接口
func (t *DateTime) Scan(value any) error {
	if value == nil {
		*t = DateTime{}
		return nil
	}
	switch v := value.(type) {
	case time.Time:
		*t = DateTime(v)
		return nil
	case []byte:
		parsed, err := time.ParseInLocation(DateTimeFormat, string(v), time.Local)
		if err != nil {
			return err
		}
		*t = DateTime(parsed)
		return nil
	case string:
		parsed, err := time.ParseInLocation(DateTimeFormat, v, time.Local)
		if err != nil {
			return err
		}
		*t = DateTime(parsed)
		return nil
	}
	return fmt.Errorf("无法扫描时间类型: %T", value)
}
